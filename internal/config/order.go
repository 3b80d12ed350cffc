package config

import (
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/hashicorp-forge/wordy/pkg/wordy"
)

// Order describes an order to place, as written in an order file:
//
//	brief         = "Please proofread"
//	language_code = "GB"
//
//	field "post_title" {
//	  type  = "shorttext"
//	  value = "Hello"
//	}
//
//	metadata = { source = "cli" }
type Order struct {
	Brief        string       `hcl:"brief,optional"`
	LanguageCode string       `hcl:"language_code,optional"`
	Fields       []OrderField `hcl:"field,block"`
	Metadata     cty.Value    `hcl:"metadata,optional"`
}

// OrderField is one field block of an order file.
type OrderField struct {
	Title string `hcl:"title,label"`
	Type  string `hcl:"type"`
	Value string `hcl:"value"`
}

// LoadOrder parses the order file at path.
func (l *Loader) LoadOrder(path string) (*Order, error) {
	if path == "" {
		return nil, fmt.Errorf("order file path is required")
	}

	var o Order
	if err := l.decode(path, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// WordyFields returns the fields in file order.
func (o *Order) WordyFields() []wordy.Field {
	fields := make([]wordy.Field, 0, len(o.Fields))
	for _, f := range o.Fields {
		fields = append(fields, wordy.Field{
			Title: f.Title,
			Type:  wordy.FieldType(f.Type),
			Value: f.Value,
		})
	}
	return fields
}

// WordyMetadata converts the metadata attribute. Numbers become float64,
// objects and tuples become maps and slices.
func (o *Order) WordyMetadata() (wordy.Metadata, error) {
	if o.Metadata.IsNull() {
		return nil, nil
	}
	if !o.Metadata.Type().IsObjectType() && !o.Metadata.Type().IsMapType() {
		return nil, fmt.Errorf("metadata must be an object, got %s", o.Metadata.Type().FriendlyName())
	}

	b, err := ctyjson.Marshal(o.Metadata, o.Metadata.Type())
	if err != nil {
		return nil, fmt.Errorf("error encoding metadata: %w", err)
	}

	var md wordy.Metadata
	if err := json.Unmarshal(b, &md); err != nil {
		return nil, fmt.Errorf("error decoding metadata: %w", err)
	}
	return md, nil
}
