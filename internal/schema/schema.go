// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package schema generates documentation for task definition types from
// their struct tags. Each task type package exposes a schema provider and
// the generator turns it into field listings, YAML examples, Markdown
// documentation and JSON schema.
package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

// Writer provides methods to write schema documentation to an io.Writer.
type Writer interface {
	// WriteJSONSchema writes JSON Schema to the writer
	WriteJSONSchema(w io.Writer) error
	// WriteYAMLExample writes YAML example schema to the writer
	WriteYAMLExample(w io.Writer) error
	// WriteMarkdownDoc writes Markdown documentation to the writer
	WriteMarkdownDoc(w io.Writer) error
}

// Provider provides methods to get schema information for task types.
type Provider interface {
	// GetSchemaFields returns the schema fields for this task type
	GetSchemaFields() []Field
	// GetTaskType returns the task type string
	GetTaskType() string
	// GetTaskDescription returns a description of what this task does
	GetTaskDescription() string
	// GetExampleDefinition returns an example definition for YAML generation
	GetExampleDefinition() interface{}
}

// Field represents a field in a task definition schema.
type Field struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	Description string           `json:"description,omitempty"`
	Required    bool             `json:"required,omitempty"`
	Properties  map[string]Field `json:"properties,omitempty"`
	Items       *Field           `json:"items,omitempty"`
	Enum        []string         `json:"enum,omitempty"`
	Default     interface{}      `json:"default,omitempty"`
}

// Schema represents a complete schema for a task type.
type Schema struct {
	Type        string           `json:"type"`
	Properties  map[string]Field `json:"properties"`
	Required    []string         `json:"required,omitempty"`
	Fields      []Field          `json:"-"` // For internal use
	Description string           `json:"description,omitempty"`
}

// Generator provides methods to generate schemas from struct definitions.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate generates a schema from a task type and definition struct.
func (g *Generator) Generate(taskType string, def interface{}) (*Schema, error) {
	fields, err := g.extractFields(reflect.TypeOf(def))
	if err != nil {
		return nil, err
	}

	sorted := g.sortFields(fields)
	properties := make(map[string]Field, len(sorted))

	var required []string

	for _, field := range sorted {
		properties[field.Name] = field

		if field.Required {
			required = append(required, field.Name)
		}
	}

	return &Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
		Fields:     sorted,
	}, nil
}

// GenerateFromDefinition generates a JSON schema object from a task definition struct.
func (g *Generator) GenerateFromDefinition(
	taskType string, def interface{}, description string,
) (map[string]interface{}, error) {
	fields, err := g.extractFields(reflect.TypeOf(def))
	if err != nil {
		return nil, err
	}

	schema := g.jsonSchemaFromFields(taskType, description, g.sortFields(fields))
	schema["additionalProperties"] = false

	return schema, nil
}

// jsonSchemaFromFields builds a JSON schema object from already-extracted
// fields. The type field is constrained to the task type being described.
func (g *Generator) jsonSchemaFromFields(
	taskType, description string, fields []Field,
) map[string]interface{} {
	properties := make(map[string]interface{}, len(fields))

	var required []string

	for _, field := range fields {
		prop := g.schemaFieldToProperty(field)

		if field.Name == "type" {
			prop["enum"] = []string{taskType}
		}

		properties[field.Name] = prop

		if field.Required {
			required = append(required, field.Name)
		}
	}

	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties":  properties,
		"required":    required,
	}
}

// GenerateJSONSchemaString generates a complete JSON schema for a taskfile,
// covering every task type exposed by the given providers.
func (g *Generator) GenerateJSONSchemaString(providers map[string]Provider) (string, error) {
	taskSchemas := g.generateTaskSchemas(providers)
	taskItems := map[string]interface{}{
		"anyOf": taskSchemas,
	}

	rootSchema := map[string]interface{}{
		"$schema":     "https://json-schema.org/draft/2020-12/schema",
		"type":        "object",
		"title":       "Snyke Taskfile Schema",
		"description": "Schema for snyke taskfile definitions",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the taskfile",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Description of what this taskfile does",
			},
			"task_groups": map[string]interface{}{
				"type":        "array",
				"description": "Named task lists referenced by serial and parallel tasks",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"name": map[string]interface{}{
							"type":        "string",
							"description": "Name of the task group",
						},
						"description": map[string]interface{}{
							"type":        "string",
							"description": "Description of the task group",
						},
						"tasks": map[string]interface{}{
							"type":  "array",
							"items": taskItems,
						},
					},
					"required": []string{"name", "tasks"},
				},
			},
			"tasks": map[string]interface{}{
				"type":        "array",
				"description": "List of tasks to execute",
				"items":       taskItems,
			},
		},
		"required": []string{"tasks"},
	}

	bytes, err := json.MarshalIndent(rootSchema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// generateTaskSchemas builds one schema per task type, ordered by type
// name so the output is stable.
func (g *Generator) generateTaskSchemas(providers map[string]Provider) []map[string]interface{} {
	taskTypes := slices.Sorted(maps.Keys(providers))

	schemas := make([]map[string]interface{}, 0, len(taskTypes))

	for _, taskType := range taskTypes {
		provider := providers[taskType]
		schemas = append(schemas, g.jsonSchemaFromFields(
			taskType,
			provider.GetTaskDescription(),
			provider.GetSchemaFields(),
		))
	}

	return schemas
}

// extractFields walks the struct's exported fields, flattening embedded
// structs such as the shared base definition.
func (g *Generator) extractFields(t reflect.Type) ([]Field, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct type, got %s", t.Kind())
	}

	var fields []Field

	for i := range t.NumField() {
		sf := t.Field(i)

		switch {
		case !sf.IsExported():
			continue
		case sf.Anonymous:
			embedded, err := g.extractFields(sf.Type)
			if err != nil {
				return nil, err
			}

			fields = append(fields, embedded...)
		default:
			if field, ok := g.fieldFromStructField(sf); ok {
				fields = append(fields, field)
			}
		}
	}

	return fields, nil
}

// fieldFromStructField builds a schema field from a struct field's yaml
// and docdesc tags. The second return is false for fields tagged yaml:"-".
func (g *Generator) fieldFromStructField(sf reflect.StructField) (Field, bool) {
	tag := sf.Tag.Get("yaml")
	if tag == "-" {
		return Field{}, false
	}

	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}

	return Field{
		Name:        strings.ToLower(name),
		Type:        g.getSchemaType(sf.Type),
		Description: sf.Tag.Get("docdesc"),
		Required:    !strings.Contains(opts, "omitempty"),
	}, true
}

// getSchemaType maps a Go type to its JSON schema type name.
func (g *Generator) getSchemaType(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		return g.getSchemaType(t.Elem())
	}

	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "string"
	}
}

// sortFields orders fields for display: type first, then name, the rest
// lexically, with tasks always last.
func (g *Generator) sortFields(fields []Field) []Field {
	rank := func(name string) int {
		switch name {
		case "type":
			return 0
		case "name":
			return 1
		case "tasks":
			return 3
		default:
			return 2
		}
	}

	sorted := slices.Clone(fields)
	slices.SortStableFunc(sorted, func(a, b Field) int {
		ra, rb := rank(a.Name), rank(b.Name)
		if ra != rb {
			return ra - rb
		}

		if ra != 2 {
			return 0
		}

		return strings.Compare(a.Name, b.Name)
	})

	return sorted
}

// schemaFieldToProperty converts a Field to a JSON schema property.
func (g *Generator) schemaFieldToProperty(field Field) map[string]interface{} {
	prop := map[string]interface{}{
		"type": field.Type,
	}

	if field.Description != "" {
		prop["description"] = field.Description
	}

	if field.Default != nil {
		prop["default"] = field.Default
	}

	if len(field.Enum) > 0 {
		prop["enum"] = field.Enum
	}

	if field.Type == "array" && field.Items != nil {
		prop["items"] = g.schemaFieldToProperty(*field.Items)
	}

	if field.Type == "object" && len(field.Properties) > 0 {
		properties := make(map[string]interface{}, len(field.Properties))
		for name, subField := range field.Properties {
			properties[name] = g.schemaFieldToProperty(subField)
		}

		prop["properties"] = properties
	}

	return prop
}

// BaseSchemaGenerator renders schema documentation for a single task type
// using the information exposed by its Provider.
type BaseSchemaGenerator struct {
	generator *Generator
	provider  Provider
}

// NewBaseSchemaGenerator creates a new BaseSchemaGenerator for the given provider.
func NewBaseSchemaGenerator(p Provider) *BaseSchemaGenerator {
	return &BaseSchemaGenerator{
		generator: NewGenerator(),
		provider:  p,
	}
}

// WriteJSONSchema writes the JSON schema for this task type to the writer.
// The schema is built from the provider's fields, so it works regardless
// of the shape of the example definition.
func (b *BaseSchemaGenerator) WriteJSONSchema(w io.Writer) error {
	schema := b.generator.jsonSchemaFromFields(
		b.provider.GetTaskType(),
		b.provider.GetTaskDescription(),
		b.provider.GetSchemaFields(),
	)
	schema["additionalProperties"] = false

	bytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(bytes)

	return err
}

// WriteYAMLExample writes a YAML example for this task type to the writer.
func (b *BaseSchemaGenerator) WriteYAMLExample(w io.Writer) error {
	yamlBytes, err := yaml.Marshal(b.provider.GetExampleDefinition())
	if err != nil {
		return fmt.Errorf("failed to marshal YAML example: %w", err)
	}

	_, err = w.Write(yamlBytes)

	return err
}

// WriteMarkdownDoc writes Markdown documentation for this task type to the writer.
func (b *BaseSchemaGenerator) WriteMarkdownDoc(w io.Writer) error {
	taskType := b.provider.GetTaskType()

	var builder strings.Builder

	title := taskType
	if title != "" {
		title = strings.ToUpper(title[:1]) + strings.ToLower(title[1:])
	}

	builder.WriteString(fmt.Sprintf("# %s Task\n\n", title))

	if desc := b.provider.GetTaskDescription(); desc != "" {
		builder.WriteString(fmt.Sprintf("%s\n\n", desc))
	}

	builder.WriteString("## Fields\n\n")
	builder.WriteString("| Field | Type | Required | Description |\n")
	builder.WriteString("|-------|------|----------|-------------|\n")

	for _, field := range b.provider.GetSchemaFields() {
		required := "No"
		if field.Required {
			required = "Yes"
		}

		builder.WriteString(fmt.Sprintf("| `%s` | %s | %s | %s |\n",
			field.Name, field.Type, required, field.Description))
	}

	builder.WriteString("\n## Example\n\n```yaml\n")

	if yamlBytes, err := yaml.Marshal(b.provider.GetExampleDefinition()); err == nil {
		builder.Write(yamlBytes)
	}

	builder.WriteString("```\n")

	_, err := io.WriteString(w, builder.String())

	return err
}
