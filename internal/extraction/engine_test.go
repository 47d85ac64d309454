package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockLLMClient returns a canned reply or error for engine tests.
type mockLLMClient struct {
	reply string
	err   error

	calls   int
	prompts []string
}

func (m *mockLLMClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  Result
	}{
		{
			name:  "all fields present",
			reply: `{"full_name":"Carlos Ruiz","phone_number":"3001234567","id_document":"12345678"}`,
			want:  Result{FullName: "Carlos Ruiz", PhoneNumber: "3001234567", IDDocument: "12345678"},
		},
		{
			name:  "explicit nulls normalize to unknown",
			reply: `{"full_name":"Jane Doe","phone_number":null,"id_document":"12345678"}`,
			want:  Result{FullName: "Jane Doe", PhoneNumber: Unknown, IDDocument: "12345678"},
		},
		{
			name:  "missing keys normalize to unknown",
			reply: `{"full_name":"Jane Doe"}`,
			want:  Result{FullName: "Jane Doe", PhoneNumber: Unknown, IDDocument: Unknown},
		},
		{
			name:  "non-string values normalize to unknown",
			reply: `{"full_name":"Jane Doe","phone_number":3001234567,"id_document":["a"]}`,
			want:  Result{FullName: "Jane Doe", PhoneNumber: Unknown, IDDocument: Unknown},
		},
		{
			name:  "extra keys are ignored",
			reply: `{"full_name":"Jane Doe","phone_number":null,"id_document":null,"confidence":0.9}`,
			want:  Result{FullName: "Jane Doe", PhoneNumber: Unknown, IDDocument: Unknown},
		},
		{
			name:  "non-json reply degrades to all unknown",
			reply: "I cannot help with that",
			want:  Result{},
		},
		{
			name:  "surrounding whitespace is trimmed before parsing",
			reply: "\n  {\"full_name\":\"Jane Doe\",\"phone_number\":null,\"id_document\":null}  \n",
			want:  Result{FullName: "Jane Doe", PhoneNumber: Unknown, IDDocument: Unknown},
		},
		{
			name: "client failure degrades to all unknown",
			err:  errors.New("connection refused"),
			want: Result{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockLLMClient{reply: tt.reply, err: tt.err}
			engine := NewEngine(client, nil)

			got := engine.Extract(context.Background(), "My name is Jane Doe")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, client.calls, "expected exactly one model call, no retry")
		})
	}
}

func TestExtractEmbedsMessageInPrompt(t *testing.T) {
	client := &mockLLMClient{reply: `{"full_name":null,"phone_number":null,"id_document":null}`}
	engine := NewEngine(client, nil)

	engine.Extract(context.Background(), "My name is Carlos Ruiz, phone 3001234567")

	if assert.Len(t, client.prompts, 1) {
		assert.Contains(t, client.prompts[0], `"My name is Carlos Ruiz, phone 3001234567"`)
		assert.Contains(t, client.prompts[0], `"full_name", "phone_number", "id_document"`)
	}
}

func TestExtractEmptyMessageStillCallsModel(t *testing.T) {
	client := &mockLLMClient{reply: `{"full_name":null,"phone_number":null,"id_document":null}`}
	engine := NewEngine(client, nil)

	got := engine.Extract(context.Background(), "")

	assert.True(t, got.Empty())
	assert.Equal(t, 1, client.calls)
}

func TestResultEmpty(t *testing.T) {
	assert.True(t, Result{}.Empty())
	assert.False(t, Result{PhoneNumber: "3001234567"}.Empty())
	assert.False(t, Result{FullName: "Jane Doe", PhoneNumber: "3001234567", IDDocument: "1"}.Empty())
}
