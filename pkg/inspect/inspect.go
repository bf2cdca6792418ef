package inspect

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Mode selects the renderer of an Inspector.
type Mode string

const (
	ModeAuto    Mode = "auto"
	ModeRich    Mode = "rich"
	ModeGeneric Mode = "generic"
)

// ErrUnsupportedMode is returned for unknown render or color modes.
var ErrUnsupportedMode = errors.New("inspect: unsupported mode")

// ParseMode maps a case-insensitive mode name to a Mode. The empty string
// means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeRich, ModeGeneric:
		return m, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedMode, "render mode %q", s)
	}
}

// ParseColorMode maps a case-insensitive color mode name to a ColorMode. The
// empty string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch c := ColorMode(strings.ToLower(strings.TrimSpace(s))); c {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return c, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedMode, "color mode %q", s)
	}
}

// Result is the outcome of a single Render call.
type Result struct {
	Text string
	Path Path
	// Err is the first renderer error met before Path succeeded, if any.
	Err error
}

// Inspector renders values with one renderer fixed at construction. It is
// safe for concurrent use.
type Inspector struct {
	renderer Renderer
	generic  GenericRenderer
	logger   *zap.Logger
}

// New builds an Inspector for mode. ModeAuto probes the configured output
// (stdout by default): a terminal gets the rich renderer, anything else the
// generic one.
func New(mode Mode, opts ...Option) (*Inspector, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.mode = mode
	return build(cfg)
}

func build(cfg config) (*Inspector, error) {
	mode, err := ParseMode(string(cfg.mode))
	if err != nil {
		return nil, err
	}
	color, err := ParseColorMode(string(cfg.color))
	if err != nil {
		return nil, err
	}

	caps := Probe(cfg.output)
	if mode == ModeAuto {
		mode = ModeGeneric
		if caps.Terminal {
			mode = ModeRich
		}
	}

	var r Renderer = GenericRenderer{}
	if mode == ModeRich {
		r = RichRenderer{Formatter: colorFormatter(color, caps), Style: cfg.style}
	}
	cfg.logger.Debug("inspect: renderer selected",
		zap.String("path", string(r.Path())),
		zap.Bool("terminal", caps.Terminal),
		zap.String("color", string(color)))
	return &Inspector{renderer: r, logger: cfg.logger}, nil
}

// NewWithRenderer wraps a caller supplied renderer. Fallbacks still go
// through the generic renderer and plain formatting.
func NewWithRenderer(r Renderer, opts ...Option) *Inspector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if r == nil {
		r = GenericRenderer{}
	}
	return &Inspector{renderer: r, logger: cfg.logger}
}

func colorFormatter(mode ColorMode, caps Capabilities) string {
	switch mode {
	case ColorNever:
		return ""
	case ColorAlways:
		if caps.Formatter != "" {
			return caps.Formatter
		}
		return defaultFormatter
	default:
		return caps.Formatter
	}
}

// Path returns the path of the selected renderer.
func (i *Inspector) Path() Path {
	return i.renderer.Path()
}

// Render renders v and reports which path produced the text. It never
// returns empty text.
func (i *Inspector) Render(v any) Result {
	text, err := safeRender(i.renderer, v)
	if err == nil && text != "" {
		return Result{Text: text, Path: i.renderer.Path()}
	}
	first := err
	if first == nil {
		first = errors.Newf("inspect: %s renderer returned no output", i.renderer.Path())
	}

	if i.renderer.Path() != PathGeneric {
		i.logger.Debug("inspect: falling back to generic renderer",
			zap.String("from", string(i.renderer.Path())), zap.Error(first))
		if text, err := i.generic.Render(v); err == nil && text != "" {
			return Result{Text: text, Path: PathGeneric, Err: first}
		} else if err != nil {
			i.logger.Debug("inspect: generic renderer failed", zap.Error(err))
		}
	}

	i.logger.Debug("inspect: falling back to plain formatting", zap.Error(first))
	return Result{Text: renderPlain(v), Path: PathPlain, Err: first}
}

// Pretty renders v and returns only the text.
func (i *Inspector) Pretty(v any) string {
	return i.Render(v).Text
}

func safeRender(r Renderer, v any) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out, err = "", errors.Newf("inspect: %s renderer panicked: %v", r.Path(), rec)
		}
	}()
	return r.Render(v)
}
