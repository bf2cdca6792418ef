// Package schemafile loads YAML descriptions of models and the fields that
// reference other models, as consumed by the links command.
package schemafile

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/daveycodez/better-auth-instantdb/pkg/label"
	"gopkg.in/yaml.v3"
)

// Model is a named entity with reference fields.
type Model struct {
	Name       string            `yaml:"name"`
	References []label.Reference `yaml:"references"`
}

// Schema is the decoded content of a schema file.
type Schema struct {
	Models []Model `yaml:"models"`
}

// Load reads and validates the schema file at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "schemafile: read %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a schema document.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "schemafile: decode")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Schema) validate() error {
	seen := make(map[string]struct{}, len(s.Models))
	for i, m := range s.Models {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return errors.Newf("schemafile: model %d missing name", i)
		}
		if _, dup := seen[name]; dup {
			return errors.Newf("schemafile: duplicate model %q", name)
		}
		seen[name] = struct{}{}
		for j, ref := range m.References {
			if strings.TrimSpace(ref.Field) == "" {
				return errors.Newf("schemafile: model %q reference %d missing field", name, j)
			}
			if strings.TrimSpace(ref.Target) == "" {
				return errors.Newf("schemafile: model %q field %q missing target", name, ref.Field)
			}
		}
	}
	return nil
}

// Links derives the relationship labels of every model, in file order.
func (s *Schema) Links() []label.Link {
	var links []label.Link
	for _, m := range s.Models {
		links = append(links, label.DeriveLinks(m.Name, m.References)...)
	}
	return links
}
