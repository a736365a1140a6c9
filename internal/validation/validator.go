package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is a compiled JSON schema for one kind of body.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

func mustCompile(name, doc string) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %v", name, err))
	}
	return &Schema{name: name, schema: s}
}

// Compiled request and cache schemas.
var (
	CreateDefaultTrigger = mustCompile("createDefaultTrigger", createDefaultTriggerSchema)
	CreateDateTrigger    = mustCompile("createDateTrigger", createDateTriggerSchema)
	UpdateTime           = mustCompile("updateTime", updateTimeSchema)
	UpdateDateTime       = mustCompile("updateDateTime", updateDateTimeSchema)
	UpdateTemp           = mustCompile("updateTemp", updateTempSchema)
	UpdateMode           = mustCompile("updateMode", updateModeSchema)
	Snapshot             = mustCompile("snapshot", snapshotSchema)
)

// Name identifies the schema in logs.
func (s *Schema) Name() string { return s.name }

// Validate checks a raw JSON document and returns one message per problem.
// An empty result means the document is valid. Unparseable JSON is reported as a message.
func (s *Schema) Validate(body []byte) []string {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return []string{fmt.Sprintf("body is not valid JSON: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	return messages
}
