package inspect

import (
	"os"

	"go.uber.org/zap"
)

// ColorMode controls ANSI colors on the rich path.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type config struct {
	mode   Mode
	logger *zap.Logger
	color  ColorMode
	style  string
	output *os.File
}

func defaultConfig() config {
	return config{
		mode:   ModeAuto,
		logger: zap.NewNop(),
		color:  ColorAuto,
		style:  defaultStyle,
		output: os.Stdout,
	}
}

// Option configures an Inspector.
type Option func(*config)

// WithLogger sets the logger used to report fallbacks at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMode overrides the render mode read by NewFromEnv. New ignores it in
// favor of its mode argument.
func WithMode(mode Mode) Option {
	return func(c *config) {
		c.mode = mode
	}
}

// WithColor overrides color detection for the rich renderer.
func WithColor(mode ColorMode) Option {
	return func(c *config) {
		c.color = mode
	}
}

// WithStyle selects the chroma style used for colorized output.
func WithStyle(style string) Option {
	return func(c *config) {
		if style != "" {
			c.style = style
		}
	}
}

// WithOutput sets the stream probed for terminal and color support.
// Defaults to os.Stdout.
func WithOutput(f *os.File) Option {
	return func(c *config) {
		c.output = f
	}
}
