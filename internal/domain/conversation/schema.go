package conversation

import (
	"github.com/invopop/jsonschema"
)

// Schema describes the input document: an object keyed by conversation id
// whose values are ConversationRecord objects.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	record := reflector.Reflect(&ConversationRecord{})
	record.Version = ""

	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		Title:                "Conversation corpus",
		Description:          "Conversations keyed by conversation id",
		Type:                 "object",
		AdditionalProperties: record,
	}
}
