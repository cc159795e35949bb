package cel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateContext(t *testing.T) {
	e := NewEvaluator()
	ctx := context.Background()
	data := map[string]any{
		"priority": "high",
		"score":    0.9,
		"tags":     []any{"a", "b"},
		"user":     map[string]any{"name": "ada"},
	}

	tests := []struct {
		name string
		expr string
		want any
	}{
		{name: "string equality", expr: "this.priority == 'high'", want: true},
		{name: "double comparison", expr: "this.score > 0.8", want: true},
		{name: "double against int literal", expr: "this.score < 1", want: true},
		{name: "nested field", expr: "this.user.name", want: "ada"},
		{name: "list size", expr: "size(this.tags)", want: int64(2)},
		{name: "membership", expr: "'b' in this.tags", want: true},
		{name: "has macro", expr: "has(this.missing)", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.EvaluateContext(ctx, tt.expr, data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	e := NewEvaluator()
	ctx := context.Background()

	_, err := e.EvaluateContext(ctx, "this.score >", map[string]any{})
	assert.ErrorContains(t, err, "failed to compile expression")

	_, err = e.EvaluateContext(ctx, "this.missing.field", map[string]any{})
	assert.ErrorContains(t, err, "evaluation failed")
}

func TestProgramCache(t *testing.T) {
	e := NewEvaluator()

	_, err := e.EvaluateContext(context.Background(), "1 + 1", nil)
	require.NoError(t, err)
	_, err = e.EvaluateContext(context.Background(), "1 + 1", nil)
	require.NoError(t, err)

	assert.Len(t, e.cache, 1)
}

func TestValidateExpression(t *testing.T) {
	e := NewEvaluator()

	assert.NoError(t, e.ValidateExpression("this.a == 1"))
	assert.Error(t, e.ValidateExpression("this.a =="))
}
