package inspect

import (
	"os"
	"strings"
)

const (
	envRenderMode = "INSPECT_RENDER_MODE"
	envColor      = "INSPECT_COLOR"
	envStyle      = "INSPECT_STYLE"
)

// NewFromEnv builds an Inspector from INSPECT_RENDER_MODE, INSPECT_COLOR and
// INSPECT_STYLE and returns the resolved renderer path ("rich" or
// "generic"). Options passed in take precedence over the environment.
func NewFromEnv(opts ...Option) (*Inspector, Path, error) {
	cfg := defaultConfig()
	cfg.mode = Mode(os.Getenv(envRenderMode))
	cfg.color = ColorMode(os.Getenv(envColor))
	if style := strings.TrimSpace(os.Getenv(envStyle)); style != "" {
		cfg.style = style
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	insp, err := build(cfg)
	if err != nil {
		return nil, "", err
	}
	return insp, insp.Path(), nil
}
