// Copyright (c) halvfigur 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package schema

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type BaseDef struct {
	Type string `yaml:"type" docdesc:"The type of task"`
	Name string `yaml:"name" docdesc:"Descriptive name for the task"`
}

type testDefinition struct {
	BaseDef          `yaml:",inline"`
	CommandLine      string `yaml:"command_line" docdesc:"The command to execute"`
	SuccessExitCodes []int  `yaml:"success_exit_codes,omitempty" docdesc:"Exit codes that indicate success"`
	Tasks            []any  `yaml:"tasks" docdesc:"List of tasks to execute"`
	hidden           string //nolint:unused
}

type testProvider struct{}

func (p *testProvider) GetSchemaFields() []Field {
	generator := NewGenerator()

	schemaObj, err := generator.Generate("shell", &testDefinition{})
	if err != nil {
		return []Field{}
	}

	return schemaObj.Fields
}

func (p *testProvider) GetTaskType() string {
	return "shell"
}

func (p *testProvider) GetTaskDescription() string {
	return "Executes a command line via the system shell"
}

func (p *testProvider) GetExampleDefinition() interface{} {
	return map[string]any{
		"type":         "shell",
		"name":         "example-shell-task",
		"command_line": "echo 'Hello, World!'",
	}
}

func TestGenerator_Generate_FieldOrderAndRequirements(t *testing.T) {
	generator := NewGenerator()

	schemaObj, err := generator.Generate("shell", &testDefinition{})
	require.NoError(t, err)
	require.NotNil(t, schemaObj)

	names := make([]string, 0, len(schemaObj.Fields))
	for _, f := range schemaObj.Fields {
		names = append(names, f.Name)
	}

	// type first, name second, others lexically, tasks last
	assert.Equal(t, []string{"type", "name", "command_line", "success_exit_codes", "tasks"}, names)

	assert.Contains(t, schemaObj.Required, "type")
	assert.Contains(t, schemaObj.Required, "name")
	assert.Contains(t, schemaObj.Required, "command_line")
	assert.NotContains(t, schemaObj.Required, "success_exit_codes")

	assert.Equal(t, "string", schemaObj.Properties["command_line"].Type)
	assert.Equal(t, "array", schemaObj.Properties["success_exit_codes"].Type)
	assert.Equal(t, "The command to execute", schemaObj.Properties["command_line"].Description)
}

func TestGenerator_Generate_NonStruct(t *testing.T) {
	generator := NewGenerator()

	schemaObj, err := generator.Generate("shell", "not a struct")
	assert.Error(t, err)
	assert.Nil(t, schemaObj)
}

func TestGenerateJSONSchemaString_ValidJSON(t *testing.T) {
	providers := map[string]Provider{
		"shell": &testProvider{},
	}

	generator := NewGenerator()
	schemaJSON, err := generator.GenerateJSONSchemaString(providers)
	require.NoError(t, err)
	require.NotEmpty(t, schemaJSON)

	var schema map[string]interface{}
	err = json.Unmarshal([]byte(schemaJSON), &schema)
	require.NoError(t, err, "Generated schema should be valid JSON")

	assert.Contains(t, schemaJSON, "$schema")
	assert.Contains(t, schemaJSON, "Snyke Taskfile Schema")

	properties, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok, "Schema should have properties")
	assert.Contains(t, properties, "name")
	assert.Contains(t, properties, "tasks")

	tasks, ok := properties["tasks"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "array", tasks["type"])

	items, ok := tasks["items"].(map[string]interface{})
	require.True(t, ok, "tasks should have items schema")

	anyOf, ok := items["anyOf"].([]interface{})
	require.True(t, ok, "items should be an anyOf over task types")
	require.Len(t, anyOf, 1)
}

func TestGenerateFromDefinition_TypeEnumConstraint(t *testing.T) {
	generator := NewGenerator()

	schema, err := generator.GenerateFromDefinition("shell", &testDefinition{}, "test description")
	require.NoError(t, err)

	properties, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)

	typeProp, ok := properties["type"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []string{"shell"}, typeProp["enum"])

	assert.Equal(t, false, schema["additionalProperties"])
	assert.Equal(t, "test description", schema["description"])
}

func TestBaseSchemaGenerator_WriteMarkdownDoc(t *testing.T) {
	gen := NewBaseSchemaGenerator(&testProvider{})

	var buf bytes.Buffer
	require.NoError(t, gen.WriteMarkdownDoc(&buf))

	doc := buf.String()
	assert.Contains(t, doc, "# Shell Task")
	assert.Contains(t, doc, "Executes a command line via the system shell")
	assert.Contains(t, doc, "| Field | Type | Required | Description |")
	assert.Contains(t, doc, "| `command_line` | string | Yes | The command to execute |")
	assert.Contains(t, doc, "## Example")
	assert.Contains(t, doc, "```yaml")
}

func TestBaseSchemaGenerator_WriteYAMLExample(t *testing.T) {
	gen := NewBaseSchemaGenerator(&testProvider{})

	var buf bytes.Buffer
	require.NoError(t, gen.WriteYAMLExample(&buf))

	example := buf.String()
	assert.Contains(t, example, "type: shell")
	assert.Contains(t, example, "command_line:")
}

func TestBaseSchemaGenerator_WriteJSONSchema(t *testing.T) {
	gen := NewBaseSchemaGenerator(&testProvider{})

	var buf bytes.Buffer
	require.NoError(t, gen.WriteJSONSchema(&buf))

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &schema))

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, "Executes a command line via the system shell", schema["description"])
}
