package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLastWriterWins(t *testing.T) {
	s := NewSet()
	s.RegisterPartial("nav", "<nav>old</nav>")
	s.RegisterPartial("nav", "<nav>new</nav>")
	s.RegisterHelper("greet", func() string { return "hi" })
	s.RegisterHelper("greet", func() string { return "hello" })

	p, ok := s.Partial("nav")
	require.True(t, ok)
	assert.Equal(t, "<nav>new</nav>", p)

	h, ok := s.Helper("greet")
	require.True(t, ok)
	assert.Equal(t, "hello", h.(func() string)())

	_, ok = s.Helper("missing")
	assert.False(t, ok)
}

func TestSetCopies(t *testing.T) {
	s := NewSet()
	s.RegisterPartial("a", "A")

	partials := s.Partials()
	partials["b"] = "B"

	_, ok := s.Partial("b")
	assert.False(t, ok)
	assert.Len(t, s.Helpers(), 0)
}

func TestSetImplementsRegistry(t *testing.T) {
	var register RegisterFunc = func(r Registry) {
		r.RegisterHelper("x", func() string { return "x" })
	}

	s := NewSet()
	register(s)

	_, ok := s.Helper("x")
	assert.True(t, ok)
}

func TestValidateHelper(t *testing.T) {
	tests := []struct {
		name    string
		helper  string
		fn      any
		wantErr bool
	}{
		{name: "valid", helper: "a", fn: func(s string) string { return s }},
		{name: "interface return", helper: "a", fn: func() any { return nil }},
		{name: "empty name", helper: "", fn: func() string { return "" }, wantErr: true},
		{name: "nil", helper: "a", fn: nil, wantErr: true},
		{name: "not a function", helper: "a", fn: "text", wantErr: true},
		{name: "no return", helper: "a", fn: func() {}, wantErr: true},
		{name: "two returns", helper: "a", fn: func() (string, error) { return "", nil }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHelper(tt.helper, tt.fn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
