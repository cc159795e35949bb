package partials

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aescanero/hbs/internal/errs"
	"github.com/aescanero/hbs/internal/eval/template"
	"github.com/aescanero/hbs/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestName(t *testing.T) {
	tests := map[string]string{
		"nav.hbs":                "nav",
		"partials/footer.hbs":    "footer",
		"/abs/layout.handlebars": "layout",
		"noext":                  "noext",
		"two.dots.hbs":           "two.dots",
	}
	for file, want := range tests {
		assert.Equal(t, want, Name(file), file)
	}
}

func TestLoadRendersPartialInline(t *testing.T) {
	dir := t.TempDir()
	nav := writeFile(t, filepath.Join(dir, "nav.hbs"), "<nav></nav>")

	set := registry.NewSet()
	require.NoError(t, NewLoader(nil).Load(context.Background(), []string{nav}, set))

	got, err := template.NewEngine(set).Render("<body>{{> nav}}</body>", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "<body><nav></nav></body>", got)
}

func TestLoadLastInListWins(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, filepath.Join(dir, "a", "card.hbs"), "first")
	second := writeFile(t, filepath.Join(dir, "b", "card.hbs"), "second")

	set := registry.NewSet()
	require.NoError(t, NewLoader(nil).Load(context.Background(), []string{first, second}, set))

	p, ok := set.Partial("card")
	require.True(t, ok)
	assert.Equal(t, "second", p)

	set = registry.NewSet()
	require.NoError(t, NewLoader(nil).Load(context.Background(), []string{second, first}, set))

	p, _ = set.Partial("card")
	assert.Equal(t, "first", p)
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, filepath.Join(dir, "ok.hbs"), "ok")

	set := registry.NewSet()
	err := NewLoader(nil).Load(context.Background(), []string{ok, filepath.Join(dir, "missing.hbs")}, set)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrFileIO)
	assert.Empty(t, set.Partials(), "nothing is registered when a read fails")
}
