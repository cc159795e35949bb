package errs

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	err := Wrap(ErrFileIO, "a.hbs", fs.ErrNotExist)

	assert.ErrorIs(t, err, ErrFileIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrJSONParse)
	assert.Equal(t, "file i/o error: a.hbs: file does not exist", err.Error())

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, "a.hbs", e.Source)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "kind only",
			err:  Wrap(ErrStdinNotJSON, "", nil),
			want: "stdin is not json",
		},
		{
			name: "kind and source",
			err:  Wrap(ErrModuleLoad, "helpers/a.so", nil),
			want: "module load error: helpers/a.so",
		},
		{
			name: "kind and cause",
			err:  Wrap(ErrInvalidArgumentType, "", errors.New("given int")),
			want: "invalid argument type: given int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
