package beacon

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for wire records.
var validate = validator.New()

// Parser turns a raw payload into an ordered list of Configurations.
type Parser interface {
	// ParseConfigurations parses the payload. The returned slice preserves
	// the payload's declaration order, which is significant for condition
	// evaluation and last-alias-wins snapshot construction.
	ParseConfigurations(data []byte) ([]*Configuration, error)
}

// wireCondition is one conditional override as it appears on the wire.
type wireCondition struct {
	Match map[string]string `json:"match" yaml:"match" validate:"required,min=1"`
	Value any               `json:"value" yaml:"value"`
}

// wireConfiguration is one configuration record as it appears on the wire.
type wireConfiguration struct {
	Alias        string          `json:"alias" yaml:"alias" validate:"required"`
	Description  string          `json:"description" yaml:"description"`
	Conditions   []wireCondition `json:"conditions" yaml:"conditions" validate:"dive"`
	DefaultValue any             `json:"defaultValue" yaml:"defaultValue"`
}

// CodecParser implements Parser over a Codec. Records are validated with
// struct tags, and values are normalized into the supported kinds:
// string, bool, int, float64, []string, and map[string]string.
//
// Integer numbers normalize to int and fractional numbers to float64: a
// default written as 2 makes an int configuration, 2.0 a float one.
type CodecParser struct {
	codec Codec
}

// NewParser creates a CodecParser using the given codec.
func NewParser(codec Codec) *CodecParser {
	return &CodecParser{codec: codec}
}

// NewJSONParser creates a CodecParser for JSON payloads.
func NewJSONParser() *CodecParser {
	return &CodecParser{codec: JSONCodec{}}
}

// NewYAMLParser creates a CodecParser for YAML payloads.
func NewYAMLParser() *CodecParser {
	return &CodecParser{codec: YAMLCodec{}}
}

// ParseConfigurations decodes, validates, and normalizes the payload.
func (p *CodecParser) ParseConfigurations(data []byte) ([]*Configuration, error) {
	var records []wireConfiguration
	if err := p.codec.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode payload as %s: %w", p.codec.ContentType(), err)
	}

	configurations := make([]*Configuration, 0, len(records))
	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			return nil, fmt.Errorf("record %d is invalid: %w", i, err)
		}

		def, ok := normalizeValue(record.DefaultValue)
		if !ok {
			return nil, fmt.Errorf("record %d (%q): unsupported default value %v", i, record.Alias, record.DefaultValue)
		}
		defKind, _ := KindOf(def)

		conditions := make([]Condition, 0, len(record.Conditions))
		for j, wc := range record.Conditions {
			value, ok := normalizeValue(wc.Value)
			if !ok {
				return nil, fmt.Errorf("record %d (%q): condition %d has unsupported value %v", i, record.Alias, j, wc.Value)
			}
			// A whole-number condition value on a float configuration is
			// still a float.
			if defKind == KindFloat {
				if iv, isInt := value.(int); isInt {
					value = float64(iv)
				}
			}
			conditions = append(conditions, NewCondition(wc.Match, value))
		}

		configuration, err := NewConfiguration(record.Alias, record.Description, conditions, def)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		configurations = append(configurations, configuration)
	}
	return configurations, nil
}

// Ensure CodecParser implements Parser.
var _ Parser = (*CodecParser)(nil)

// normalizeValue maps a decoded wire value onto the supported kinds.
// Codecs produce format-specific shapes (json gives json.Number for
// numbers and []any/map[string]any for collections; yaml gives int and
// float64 natively); this flattens them into the canonical
// representations KindOf recognizes.
func normalizeValue(v any) (any, bool) {
	switch value := v.(type) {
	case string, bool, int, float64, []string, map[string]string:
		return value, true
	case int64:
		return int(value), true
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return int(i), true
		}
		f, err := value.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	case []any:
		list := make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			list = append(list, s)
		}
		return list, true
	case map[string]any:
		m := make(map[string]string, len(value))
		for k, item := range value {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			m[k] = s
		}
		return m, true
	default:
		return nil, false
	}
}
