package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlan_Len(t *testing.T) {
	var nilPlan *Plan
	assert.Equal(t, 0, nilPlan.Len())

	p := &Plan{Name: "p", Operations: []Operation{LiteralReplace("a", "a", "b")}}
	assert.Equal(t, 1, p.Len())
}

func TestPlan_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := &Plan{Name: "p", Operations: []Operation{
			LiteralReplace("a", "a", "b"),
			InsertAfterAnchor("b", "A", "\nX"),
		}}
		assert.NoError(t, p.Validate())
	})

	t.Run("empty plan is valid", func(t *testing.T) {
		assert.NoError(t, (&Plan{Name: "p"}).Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		err := (&Plan{}).Validate()
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("bad operation", func(t *testing.T) {
		p := &Plan{Name: "p", Operations: []Operation{
			LiteralReplace("ok", "a", "b"),
			{Label: "bad", Kind: "shell", Find: "x"},
		}}
		err := p.Validate()

		var patchErr *PatchError
		assert.True(t, errors.As(err, &patchErr))
		assert.Equal(t, 1, patchErr.Index)
		assert.True(t, errors.Is(err, ErrUnsupportedKind))
	})
}
