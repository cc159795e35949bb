package data

import (
	"errors"
	"strings"
	"testing"

	"github.com/aescanero/hbs/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestReadStdin(t *testing.T) {
	got, err := ReadStdin(strings.NewReader(`{"title": "Home", "nav": {"items": [1, 2]}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"title": "Home",
		"nav":   map[string]any{"items": []any{1.0, 2.0}},
	}, got)
}

func TestReadStdinErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "not json", input: "title: Home", want: "invalid character"},
		{name: "empty", input: "", want: "unexpected end of JSON input"},
		{name: "array", input: "[1, 2]", want: "expected a JSON object, got array"},
		{name: "null", input: "null", want: "got null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadStdin(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrStdinNotJSON)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadStdinReadFailure(t *testing.T) {
	_, err := ReadStdin(failingReader{})
	assert.ErrorIs(t, err, errs.ErrFileIO)
}
