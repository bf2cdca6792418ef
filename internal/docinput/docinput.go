// Package docinput decodes JSON or YAML documents into generic values for
// rendering. String values that carry an encoded JSON object or array are
// decoded in place so nested payloads print as structure instead of escaped
// text.
package docinput

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format names the encoding of an input document.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const maxUnquote = 4

// ParseFormat maps a flag value to a Format. The empty string means
// FormatAuto; "yml" is accepted as FormatYAML.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf("docinput: unsupported format %q", name)
	}
}

// Decode parses body according to format. Empty input decodes to nil.
// FormatAuto tries JSON first and falls back to YAML.
func Decode(body []byte, format Format) (any, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var (
		out any
		err error
	)
	switch format {
	case FormatJSON:
		out, err = decodeJSON(trimmed)
	case FormatYAML:
		out, err = decodeYAML(trimmed)
	case FormatAuto, "":
		if out, err = decodeJSON(trimmed); err != nil {
			out, err = decodeYAML(trimmed)
		}
	default:
		return nil, errors.Newf("docinput: unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return unwrap(out), nil
}

func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, errors.Wrap(err, "docinput: decode json")
	}
	if dec.More() {
		return nil, errors.New("docinput: decode json: trailing data after document")
	}
	return out, nil
}

func decodeYAML(body []byte) (any, error) {
	var out any
	if err := yaml.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "docinput: decode yaml")
	}
	return out, nil
}

// unwrap walks v and replaces strings holding JSON objects or arrays with
// their decoded form. YAML mappings with non-string keys are rekeyed with
// fmt.Sprint so the result stays JSON encodable.
func unwrap(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = unwrap(val)
		}
		return out
	case map[string]any:
		for k, val := range t {
			t[k] = unwrap(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = unwrap(val)
		}
		return t
	case string:
		if inner, ok := decodeEmbedded(t); ok {
			return unwrap(inner)
		}
		return t
	default:
		return v
	}
}

// decodeEmbedded reports whether s is a JSON object or array, possibly
// quoted up to maxUnquote times, and returns the decoded value.
func decodeEmbedded(s string) (any, bool) {
	decoded := strings.TrimSpace(s)
	for i := 0; i < maxUnquote; i++ {
		unquoted, err := strconv.Unquote(decoded)
		if err != nil {
			break
		}
		decoded = strings.TrimSpace(unquoted)
	}
	if decoded == "" || (decoded[0] != '{' && decoded[0] != '[') {
		return nil, false
	}
	out, err := decodeJSON([]byte(decoded))
	if err != nil {
		return nil, false
	}
	return out, true
}
