package inspect

import "sync"

var (
	defaultMu   sync.RWMutex
	defaultOnce sync.Once
	defaultInsp *Inspector
)

// Default returns the package inspector, built from the environment on first
// use. An invalid environment yields a generic-only inspector.
func Default() *Inspector {
	defaultOnce.Do(func() {
		insp, _, err := NewFromEnv()
		if err != nil {
			insp = NewWithRenderer(GenericRenderer{})
		}
		defaultMu.Lock()
		if defaultInsp == nil {
			defaultInsp = insp
		}
		defaultMu.Unlock()
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultInsp
}

// SetDefault replaces the package inspector. A nil inspector is ignored.
func SetDefault(insp *Inspector) {
	if insp == nil {
		return
	}
	defaultOnce.Do(func() {})
	defaultMu.Lock()
	defaultInsp = insp
	defaultMu.Unlock()
}

// PrettyPrint renders v with the package inspector. It never panics and
// never returns an empty string.
func PrettyPrint(v any) string {
	return Default().Pretty(v)
}
