// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Schema identifies one of the closed set of JSON record shapes a jsonl
// training file may use.
type Schema int

const (
	// SchemaNone is reported for txt files and for jsonl files without records.
	SchemaNone Schema = iota
	SchemaChat
	SchemaTool
	SchemaCompletion
	SchemaText
)

// detectionOrder is the order in which shapes are tried against a line.
// Shapes are not guaranteed to be disjoint, so the order is part of the contract.
var detectionOrder = []Schema{SchemaChat, SchemaTool, SchemaText, SchemaCompletion}

// Schemas returns the supported schemas in detection priority order.
func Schemas() []Schema {
	out := make([]Schema, len(detectionOrder))
	copy(out, detectionOrder)
	return out
}

func (s Schema) String() string {
	switch s {
	case SchemaChat:
		return "chat"
	case SchemaTool:
		return "tool"
	case SchemaCompletion:
		return "completion"
	case SchemaText:
		return "text"
	default:
		return "none"
	}
}

// MarshalText lets a Schema appear by name in JSON output.
func (s Schema) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *Schema) UnmarshalText(text []byte) error {
	parsed, err := ParseSchema(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSchema returns the schema with the given name.
func ParseSchema(name string) (Schema, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "chat":
		return SchemaChat, nil
	case "tool":
		return SchemaTool, nil
	case "completion":
		return SchemaCompletion, nil
	case "text":
		return SchemaText, nil
	case "none", "":
		return SchemaNone, nil
	}
	return SchemaNone, fmt.Errorf("unknown schema %q", name)
}

// Matches reports whether line is a JSON object carrying every field the
// schema requires, with the expected types. Extra fields are ignored.
func (s Schema) Matches(line string) bool {
	_, err := s.Normalize(line)
	return err == nil
}

// Normalize decodes line with the schema's shape and renders it as a single
// training string.
func (s Schema) Normalize(line string) (string, error) {
	switch s {
	case SchemaChat:
		return normalizeChat(line)
	case SchemaTool:
		return normalizeTool(line)
	case SchemaCompletion:
		return normalizeCompletion(line)
	case SchemaText:
		return normalizeText(line)
	default:
		return "", fmt.Errorf("schema %s has no record shape", s)
	}
}

// object is a decoded JSON object. Keys are matched exactly, case included;
// struct decoding would fold "TEXT" onto "text".
type object map[string]json.RawMessage

func decodeObject(raw []byte, path string) (object, error) {
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("decode %s: %w", describe(path), err)
	}
	if o == nil {
		return nil, fmt.Errorf("%s is not an object", describe(path))
	}
	return o, nil
}

func describe(path string) string {
	if path == "" {
		return "record"
	}
	return path
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func missing(field string) error {
	return fmt.Errorf("missing required field %q", field)
}

// lookup returns the value stored under key. Absent keys and null values are
// both reported as not present.
func (o object) lookup(key string) (json.RawMessage, bool) {
	v, ok := o[key]
	if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil, false
	}
	return v, true
}

// field decodes the required field key into v.
func (o object) field(path, key string, v any) error {
	raw, ok := o.lookup(key)
	if !ok {
		return missing(join(path, key))
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("field %q: %w", join(path, key), err)
	}
	return nil
}

// optional decodes key into v when it is present.
func (o object) optional(path, key string, v any) error {
	raw, ok := o.lookup(key)
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("field %q: %w", join(path, key), err)
	}
	return nil
}

func (o object) child(path, key string) (object, error) {
	raw, ok := o.lookup(key)
	if !ok {
		return nil, missing(join(path, key))
	}
	return decodeObject(raw, join(path, key))
}

func normalizeChat(line string) (string, error) {
	rec, err := decodeObject([]byte(line), "")
	if err != nil {
		return "", err
	}
	var messages []json.RawMessage
	if err := rec.field("", "messages", &messages); err != nil {
		return "", err
	}
	turns := make([]string, 0, len(messages))
	for i, raw := range messages {
		path := fmt.Sprintf("messages[%d]", i)
		msg, err := decodeObject(raw, path)
		if err != nil {
			return "", err
		}
		var role, content string
		if err := msg.field(path, "role", &role); err != nil {
			return "", err
		}
		if err := msg.field(path, "content", &content); err != nil {
			return "", err
		}
		turns = append(turns, role+": "+content)
	}
	return strings.Join(turns, "\n"), nil
}

func normalizeTool(line string) (string, error) {
	rec, err := decodeObject([]byte(line), "")
	if err != nil {
		return "", err
	}
	if err := validateTool(rec); err != nil {
		return "", err
	}
	return line, nil
}

func validateTool(rec object) error {
	var typ, name, description string
	if err := rec.field("", "type", &typ); err != nil {
		return err
	}
	fn, err := rec.child("", "function")
	if err != nil {
		return err
	}
	if err := fn.field("function", "name", &name); err != nil {
		return err
	}
	if err := fn.field("function", "description", &description); err != nil {
		return err
	}
	params, err := fn.child("function", "parameters")
	if err != nil {
		return err
	}
	if err := params.field("function.parameters", "type", &typ); err != nil {
		return err
	}
	properties, err := params.child("function.parameters", "properties")
	if err != nil {
		return err
	}
	var required []string
	if err := params.field("function.parameters", "required", &required); err != nil {
		return err
	}

	var errs []error
	for _, key := range slices.Sorted(maps.Keys(properties)) {
		errs = append(errs, validateToolProperty(properties, "function.parameters.properties", key))
	}
	return errors.Join(errs...)
}

func validateToolProperty(properties object, path, key string) error {
	prop, err := properties.child(path, key)
	if err != nil {
		return err
	}
	path = join(path, key)
	var (
		typ, description string
		enum             []string
	)
	if err := prop.field(path, "type", &typ); err != nil {
		return err
	}
	if err := prop.optional(path, "description", &description); err != nil {
		return err
	}
	return prop.optional(path, "enum", &enum)
}

func normalizeCompletion(line string) (string, error) {
	rec, err := decodeObject([]byte(line), "")
	if err != nil {
		return "", err
	}
	var prompt, completion string
	if err := rec.field("", "prompt", &prompt); err != nil {
		return "", err
	}
	if err := rec.field("", "completion", &completion); err != nil {
		return "", err
	}
	return prompt + "\n\n" + completion, nil
}

func normalizeText(line string) (string, error) {
	rec, err := decodeObject([]byte(line), "")
	if err != nil {
		return "", err
	}
	var text string
	if err := rec.field("", "text", &text); err != nil {
		return "", err
	}
	return text, nil
}
