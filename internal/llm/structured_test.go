package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type msg struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func TestExtractJSON_Plain(t *testing.T) {
	out, err := ExtractJSON[msg](`{"title": "Go", "message": "Begin."}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "Go", out.Title)
}

func TestExtractJSON_CodeFenceAndProse(t *testing.T) {
	raw := "Sure, here is the message:\n```json\n{\"title\": \"Go\", \"message\": \"Begin.\"}\n```\nHope that helps!"
	out, err := ExtractJSON[msg](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Begin.", out.Message)
}

func TestExtractJSON_NestedBracesInStrings(t *testing.T) {
	raw := `{"title": "a {weird} title", "message": "ok"}`
	out, err := ExtractJSON[msg](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "a {weird} title", out.Title)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[msg]("no json here", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	_, err := ExtractJSON[msg](`{"title": ""}`, func(m msg) error {
		if m.Title == "" {
			return errors.New("title required")
		}
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
