package patch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Has(domain.OpLiteral))
	assert.Empty(t, r.Kinds())

	_, err := r.Build(domain.OpLiteral, nil)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedKind))

	r.Register(domain.OpLiteral, func(cfg map[string]any) (domain.Operation, error) {
		return domain.LiteralReplace("custom", "a", "b"), nil
	})
	assert.True(t, r.Has(domain.OpLiteral))

	op, err := r.Build(domain.OpLiteral, nil)
	require.NoError(t, err)
	assert.Equal(t, "custom", op.Label)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []domain.OpKind{
		domain.OpInsert,
		domain.OpLiteral,
		domain.OpRegex,
		domain.OpTemplate,
	}, r.Kinds())
}

func TestDefaultBuilders(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name string
		kind domain.OpKind
		cfg  map[string]any
		want domain.Operation
	}{
		{
			name: "literal",
			kind: domain.OpLiteral,
			cfg:  map[string]any{"label": "l", "find": "a", "replace": "b"},
			want: domain.LiteralReplace("l", "a", "b"),
		},
		{
			name: "literal delete",
			kind: domain.OpLiteral,
			cfg:  map[string]any{"find": "a"},
			want: domain.LiteralReplace("", "a", ""),
		},
		{
			name: "regex",
			kind: domain.OpRegex,
			cfg:  map[string]any{"label": "r", "pattern": `\d+`, "replace": "N"},
			want: domain.RegexReplace("r", `\d+`, "N"),
		},
		{
			name: "template",
			kind: domain.OpTemplate,
			cfg:  map[string]any{"label": "t", "pattern": `(a)`, "template": "$1$1"},
			want: domain.RegexTemplateReplace("t", `(a)`, "$1$1"),
		},
		{
			name: "insert required",
			kind: domain.OpInsert,
			cfg:  map[string]any{"label": "i", "anchor": "A", "inserted": "\nX", "severity": "require"},
			want: domain.InsertAfterAnchor("i", "A", "\nX").Required(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := r.Build(tt.kind, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}
}

func TestDefaultBuilders_Errors(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name string
		kind domain.OpKind
		cfg  map[string]any
	}{
		{"literal without find", domain.OpLiteral, map[string]any{"replace": "x"}},
		{"regex without pattern", domain.OpRegex, map[string]any{}},
		{"template without pattern", domain.OpTemplate, map[string]any{"template": "$1"}},
		{"insert without anchor", domain.OpInsert, map[string]any{"inserted": "x"}},
		{"wrong type", domain.OpLiteral, map[string]any{"find": 42}},
		{"bad severity", domain.OpLiteral, map[string]any{"find": "a", "severity": "fatal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Build(tt.kind, tt.cfg)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), "got %v", err)
		})
	}
}
