package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptiva-io/lead-listener/pkg/logging"
)

// Unknown marks a field the model could not extract. Callers check for it
// instead of checking for key absence: a Result always carries all three
// fields.
const Unknown = ""

// Result is the normalized extraction output. Fields hold either a
// non-empty extracted string or Unknown.
type Result struct {
	FullName    string
	PhoneNumber string
	IDDocument  string
}

// Empty reports whether the result carries no extracted data at all.
func (r Result) Empty() bool {
	return r.FullName == Unknown && r.PhoneNumber == Unknown && r.IDDocument == Unknown
}

// LLMClient generates a single free-text completion for a prompt.
type LLMClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Engine extracts personal-data fields from message text via an LLM.
// Extract never fails: any model or parse problem degrades to an
// all-Unknown Result so the pipeline keeps a uniform downstream contract.
type Engine struct {
	client LLMClient
	logger *logging.Logger
}

// NewEngine creates an extraction engine backed by the given LLM client.
func NewEngine(client LLMClient, logger *logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Default()
	}
	return &Engine{client: client, logger: logger}
}

const extractionPrompt = `You are a data extraction specialist. Analyze the following message and extract ONLY these three pieces of information:

1. FULL NAME: Complete name of a person (first name + last name at minimum)
2. PHONE NUMBER: Any telephone number (with or without country code)
3. ID DOCUMENT: Any identification document number (cedula, DNI, passport, etc.)

STRICT RULES:
- You MUST respond ONLY with a valid JSON object
- If you cannot find any of the requested information, set that field to null
- Do not include any explanations, comments, or text outside the JSON
- Use exactly these field names: "full_name", "phone_number", "id_document"
- Values should be strings or null (not empty strings)

MESSAGE TO ANALYZE:
"%s"

RESPOND WITH JSON ONLY:`

// Extract runs a single-shot model call over the message and returns the
// three normalized fields.
func (e *Engine) Extract(ctx context.Context, message string) Result {
	prompt := fmt.Sprintf(extractionPrompt, message)

	reply, err := e.client.GenerateText(ctx, prompt)
	if err != nil {
		e.logger.Error("llm call failed", "error", err)
		return Result{}
	}

	reply = strings.TrimSpace(reply)
	e.logger.Debug("llm reply received", "reply", reply)

	// The model's output is advisory text: parse into a generic object
	// first, then project the expected keys one by one. A missing key is
	// not an error; a malformed envelope is.
	var fields map[string]any
	if err := json.Unmarshal([]byte(reply), &fields); err != nil {
		e.logger.Error("llm reply is not valid JSON", "error", err, "reply", reply)
		return Result{}
	}

	result := Result{
		FullName:    stringField(fields, "full_name"),
		PhoneNumber: stringField(fields, "phone_number"),
		IDDocument:  stringField(fields, "id_document"),
	}
	e.logger.Info("extraction completed",
		"has_full_name", result.FullName != Unknown,
		"has_phone_number", result.PhoneNumber != Unknown,
		"has_id_document", result.IDDocument != Unknown,
	)
	return result
}

// stringField projects one key with default-Unknown semantics. Null,
// absent, or non-string values all normalize to Unknown.
func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}
