package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpKind_IsValid(t *testing.T) {
	for _, k := range []OpKind{OpLiteral, OpRegex, OpTemplate, OpInsert} {
		assert.True(t, k.IsValid(), "kind %s", k)
	}
	assert.False(t, OpKind("").IsValid())
	assert.False(t, OpKind("delete").IsValid())
}

func TestOpKind_IsRegex(t *testing.T) {
	assert.True(t, OpRegex.IsRegex())
	assert.True(t, OpTemplate.IsRegex())
	assert.False(t, OpLiteral.IsRegex())
	assert.False(t, OpInsert.IsRegex())
}

func TestOpKind_Description(t *testing.T) {
	assert.Equal(t, "Literal replace", OpLiteral.Description())
	assert.Equal(t, "Insert after anchor", OpInsert.Description())
	assert.Equal(t, "Unknown", OpKind("bogus").Description())
}

func TestConstructors(t *testing.T) {
	lit := LiteralReplace("status", "Draft", "Final")
	assert.Equal(t, OpLiteral, lit.Kind)
	assert.Equal(t, "Draft", lit.Target())
	assert.Equal(t, "Final", lit.Replace)

	re := RegexReplace("date", `\d+`, "N")
	assert.Equal(t, OpRegex, re.Kind)
	assert.Equal(t, `\d+`, re.Target())

	tmpl := RegexTemplateReplace("swap", `(a)(b)`, "$2$1")
	assert.Equal(t, OpTemplate, tmpl.Kind)
	assert.Equal(t, "$2$1", tmpl.Template)

	ins := InsertAfterAnchor("note", "A", "\nX")
	assert.Equal(t, OpInsert, ins.Kind)
	assert.Equal(t, "A", ins.Target())
	assert.Equal(t, "\nX", ins.Inserted)
}

func TestOperation_Required(t *testing.T) {
	op := LiteralReplace("x", "a", "b")
	assert.False(t, op.IsRequired())

	req := op.Required()
	assert.True(t, req.IsRequired())
	assert.False(t, op.IsRequired(), "Required must not mutate the receiver")
}

func TestOperation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		op      Operation
		wantErr error
	}{
		{"valid literal", LiteralReplace("a", "x", ""), nil},
		{"valid insert", InsertAfterAnchor("a", "x", "y"), nil},
		{"empty find", LiteralReplace("a", "", "y"), ErrInvalidInput},
		{"empty pattern", RegexReplace("a", "", "y"), ErrInvalidInput},
		{"empty anchor", InsertAfterAnchor("a", "", "y"), ErrInvalidInput},
		{"unknown kind", Operation{Kind: "delete", Find: "x"}, ErrUnsupportedKind},
		{"unknown severity", Operation{Kind: OpLiteral, Find: "x", Severity: "fatal"}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
