package entity

import (
	"fmt"

	"github.com/go-leo/valueobject/value"
	"github.com/go-leo/valueobject/valueobject"
	"gopkg.in/yaml.v3"
)

type typeDocument struct {
	Name       string          `yaml:"name"`
	PrimaryKey *[]string       `yaml:"primary_key"`
	Fields     []fieldDocument `yaml:"fields"`
}

type fieldDocument struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"`
	Default   any    `yaml:"default"`
	Required  bool   `yaml:"required"`
	OmitEmpty bool   `yaml:"omitempty"`
}

// ParseType declares a type from a YAML document:
//
//	name: order_line
//	primary_key: [order_id, line]
//	fields:
//	  - name: order_id
//	    kind: int
//	  - name: line
//	    kind: int
//	  - name: note
//	    kind: string
//	    default: ""
//
// Without primary_key the type is keyed by DefaultPrimaryKeyField, an empty
// list declares a type without identity.
func ParseType(data []byte) (*Type, error) {
	var doc typeDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("entity: parse type: %w", err)
	}
	fields := make([]valueobject.Field, 0, len(doc.Fields))
	for _, fd := range doc.Fields {
		kind, err := value.ParseKind(fd.Kind)
		if err != nil {
			return nil, fmt.Errorf("entity: parse type %q, field %q: %w", doc.Name, fd.Name, err)
		}
		fields = append(fields, valueobject.Field{
			Name:      fd.Name,
			Kind:      kind,
			Default:   fd.Default,
			Required:  fd.Required,
			OmitEmpty: fd.OmitEmpty,
		})
	}
	opts := []Option{WithFields(fields...)}
	if doc.PrimaryKey != nil {
		opts = append(opts, WithPrimaryKey(*doc.PrimaryKey...))
	}
	return NewType(doc.Name, opts...)
}
