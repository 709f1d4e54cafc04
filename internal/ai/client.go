package ai

import (
	"context"
	"encoding/json"
	"fmt"
)

// InvokeRequest is a single structured-output LLM call: a natural
// language prompt plus a JSON-schema description of the response shape.
type InvokeRequest struct {
	Prompt         string
	ResponseSchema string
}

// Client is the interface for LLM providers.
type Client interface {
	// Invoke sends the prompt and returns the raw JSON the model
	// produced, with any markdown wrapping already stripped. Callers
	// unmarshal and validate against their own response types.
	Invoke(ctx context.Context, req InvokeRequest) (json.RawMessage, error)
}

// buildSystemPrompt creates the system instruction for the model.
func buildSystemPrompt(schema string) string {
	return fmt.Sprintf(`You are an expert college admissions advisor working inside an application-planning tool.

Task:
1. Answer the user's request using the information they provide. Be concrete and realistic; do not invent schools, scholarships, or scores that contradict the input.
2. Return ONLY a valid, raw JSON object matching this schema. Key names must not change:
%s
3. Do NOT wrap the JSON in markdown blocks. Output just the literal JSON starting with { or [ and nothing else.`, schema)
}
