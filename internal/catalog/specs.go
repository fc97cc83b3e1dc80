package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// SpecRow is one label/value line of a specification sheet.
type SpecRow struct {
	Key   string
	Label string
	Value string
}

// SpecSheet is an order-preserving key/value mapping. YAML mappings decode
// into it in document order; scalar values of any type are kept as text.
type SpecSheet struct {
	rows []SpecRow
}

// NewSpecSheet builds a sheet from alternating key/value strings.
func NewSpecSheet(pairs ...string) SpecSheet {
	var s SpecSheet
	for i := 0; i+1 < len(pairs); i += 2 {
		s.rows = append(s.rows, SpecRow{
			Key:   pairs[i],
			Label: HumanizeKey(pairs[i]),
			Value: pairs[i+1],
		})
	}
	return s
}

// Rows returns the rows in their original order.
func (s SpecSheet) Rows() []SpecRow {
	return slices.Clone(s.rows)
}

// Len returns the number of rows.
func (s SpecSheet) Len() int {
	return len(s.rows)
}

// Get returns the value for key.
func (s SpecSheet) Get(key string) (string, bool) {
	for _, r := range s.rows {
		if r.Key == key {
			return r.Value, true
		}
	}
	return "", false
}

// Clone returns an independent copy.
func (s SpecSheet) Clone() SpecSheet {
	return SpecSheet{rows: slices.Clone(s.rows)}
}

// UnmarshalYAML decodes a mapping of scalars, preserving key order.
func (s *SpecSheet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: specs must be a mapping", node.Line)
	}

	rows := make([]SpecRow, 0, len(node.Content)/2)
	seen := make(map[string]bool)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: spec %q must be a scalar", val.Line, key.Value)
		}
		if seen[key.Value] {
			return fmt.Errorf("line %d: duplicate spec %q", key.Line, key.Value)
		}
		seen[key.Value] = true
		rows = append(rows, SpecRow{
			Key:   key.Value,
			Label: HumanizeKey(key.Value),
			Value: val.Value,
		})
	}
	s.rows = rows
	return nil
}

// MarshalYAML emits the sheet as a mapping in row order.
func (s SpecSheet) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, r := range s.rows {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: r.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: r.Value},
		)
	}
	return node, nil
}

// MarshalJSON emits the sheet as an object in row order.
func (s SpecSheet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range s.rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(r.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// HumanizeKey turns a camelCase or snake_case key into a display label:
// "firstFlight" becomes "First Flight", "service_entry" becomes "Service Entry".
func HumanizeKey(key string) string {
	var b strings.Builder
	prevLower := false
	for i, r := range key {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			b.WriteRune(' ')
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
