package label

import (
	"sort"
	"strings"
)

// Reference describes a field of a model that points at another model.
type Reference struct {
	Field  string `yaml:"field" json:"field"`
	Target string `yaml:"target" json:"target"`
}

// Link is the label derived for a single reference field.
type Link struct {
	Model  string `json:"model"`
	Field  string `json:"field"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// DeriveLinks returns one Link per reference of model, sorted by field name.
// References without a field name are skipped.
func DeriveLinks(model string, refs []Reference) []Link {
	links := make([]Link, 0, len(refs))
	for _, ref := range refs {
		if strings.TrimSpace(ref.Field) == "" {
			continue
		}
		links = append(links, Link{
			Model:  model,
			Field:  ref.Field,
			Target: ref.Target,
			Label:  Derive(ref.Field, ref.Target),
		})
	}
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Field < links[j].Field
	})
	return links
}
