package inspect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/kr/pretty"
)

// Path identifies how a value was rendered.
type Path string

const (
	PathRich    Path = "rich"
	PathGeneric Path = "generic"
	PathPlain   Path = "plain"
)

// Renderer converts a value into text.
type Renderer interface {
	Render(v any) (string, error)
	Path() Path
}

const (
	defaultStyle     = "monokai"
	defaultFormatter = "terminal256"
	genericIndent    = "  "
)

// richConfig dumps without a depth limit. Pointer cycles print as
// "<already shown>"; cycles through maps and slices are rejected before
// dumping.
var richConfig = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                0,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// RichRenderer dumps values at any depth and optionally colorizes the output
// with ANSI escapes. A zero Formatter disables color.
type RichRenderer struct {
	// Formatter is a chroma terminal formatter name such as "terminal256".
	Formatter string
	// Style is a chroma style name. Empty means "monokai".
	Style string
}

// Render implements Renderer.
func (r RichRenderer) Render(v any) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out, err = "", errors.Newf("inspect: rich renderer panicked: %v", rec)
		}
	}()

	if hasReferenceCycle(v) {
		return "", errors.Newf("inspect: %T contains a reference cycle", v)
	}
	text := strings.TrimRight(richConfig.Sdump(v), "\n")
	if r.Formatter == "" {
		return text, nil
	}
	style := r.Style
	if style == "" {
		style = defaultStyle
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, text, "go", r.Formatter, style); err != nil {
		return "", errors.Wrapf(err, "inspect: colorize with %s/%s", r.Formatter, style)
	}
	return buf.String(), nil
}

// Path implements Renderer.
func (RichRenderer) Path() Path { return PathRich }

// GenericRenderer prints values as JSON indented by two spaces. Struct fields
// keep their declaration order and map keys are sorted.
type GenericRenderer struct{}

// Render implements Renderer.
func (GenericRenderer) Render(v any) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out, err = "", errors.Newf("inspect: generic renderer panicked: %v", rec)
		}
	}()

	data, err := json.MarshalIndent(v, "", genericIndent)
	if err != nil {
		return "", errors.Wrapf(err, "inspect: encode %T", v)
	}
	return string(data), nil
}

// Path implements Renderer.
func (GenericRenderer) Path() Path { return PathGeneric }

// renderPlain is the last resort for values neither renderer accepts. Its
// output is depth bounded, so self-referencing maps and slices terminate.
func renderPlain(v any) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = fmt.Sprintf("%T(<unprintable: %v>)", v, rec)
		}
	}()
	if s := pretty.Sprint(v); s != "" {
		return s
	}
	return fmt.Sprintf("%T", v)
}
