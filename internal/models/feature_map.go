package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Feature is one named signal the classifier reported for an address.
type Feature struct {
	Name  string
	Value interface{}
}

// FeatureMap is an ordered feature set. JSON decoding keeps the key order the
// backend sent, so reports list features the same way every time.
type FeatureMap []Feature

// Get returns the value stored under name.
func (f FeatureMap) Get(name string) (interface{}, bool) {
	for _, feature := range f {
		if feature.Name == name {
			return feature.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under name or appends a new entry.
func (f *FeatureMap) Set(name string, value interface{}) {
	for i := range *f {
		if (*f)[i].Name == name {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, Feature{Name: name, Value: value})
}

// Names returns feature names in iteration order.
func (f FeatureMap) Names() []string {
	names := make([]string, 0, len(f))
	for _, feature := range f {
		names = append(names, feature.Name)
	}
	return names
}

// MarshalJSON writes the features as a JSON object preserving order.
func (f FeatureMap) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, feature := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(feature.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(feature.Value)
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", feature.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object token by token so insertion order survives.
func (f *FeatureMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*f = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("features: expected object, got %v", tok)
	}

	result := FeatureMap{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("features: expected string key, got %v", keyTok)
		}

		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("feature %q: %w", key, err)
		}
		result.Set(key, normalizeNumber(raw))
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = result
	return nil
}

func normalizeNumber(v interface{}) interface{} {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if fl, err := n.Float64(); err == nil {
		return fl
	}
	return n.String()
}

// HumanizeFeatureName turns "has_ip_address" into "Has Ip Address".
func HumanizeFeatureName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// FormatFeatureValue renders a feature value as report text. Booleans become Yes/No.
func FormatFeatureValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "N/A"
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	default:
		return fmt.Sprint(val)
	}
}
