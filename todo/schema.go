package todo

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// todoSchemaURL identifies the embedded schema; it is never fetched.
const todoSchemaURL = "https://schemas.amonks.dev/checklist/todo.json"

// todoSchemaJSON describes an importable todo record. Only the fields every
// version of the format has had are required; createdAt must be present and
// not an empty value, and priority, when present, must be a known name.
const todoSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "text", "completed", "createdAt"],
  "properties": {
    "id": {"type": "string"},
    "text": {"type": "string"},
    "completed": {"type": "boolean"},
    "createdAt": {"not": {"enum": [null, false, 0, ""]}},
    "priority": {"enum": ["high", "medium", "low"]}
  }
}`

var todoSchema = jsonschema.MustCompileString(todoSchemaURL, todoSchemaJSON)

// validateImportRecord checks one decoded JSON element against the record schema.
func validateImportRecord(element any) error {
	return todoSchema.Validate(element)
}
