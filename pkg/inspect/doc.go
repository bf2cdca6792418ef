// Package inspect renders arbitrary Go values into human-readable text for
// debugging and logging.
//
// An Inspector holds one Renderer chosen at construction time. The rich
// renderer prints deep Go syntax (github.com/kr/pretty) colorized for the
// terminal; the generic renderer prints indented JSON. NewFromEnv selects the
// renderer from INSPECT_RENDER_MODE ("auto", "rich" or "generic"), probing
// whether stdout is a terminal in auto mode. Rendering never fails: when the
// selected renderer errors or panics the inspector falls back to JSON and
// then to fmt formatting, and the Result reports which path produced the
// text.
package inspect
