package domain

import "fmt"

const unknownDescription = "Unknown"

// OpKind identifies the variant of a patch operation.
type OpKind string

// Available operation kinds.
const (
	// OpLiteral replaces every exact occurrence of a substring.
	OpLiteral OpKind = "literal"

	// OpRegex replaces every regex match with literal text.
	OpRegex OpKind = "regex"

	// OpTemplate replaces every regex match with an expanded template.
	OpTemplate OpKind = "template"

	// OpInsert splices text after the first occurrence of an anchor.
	OpInsert OpKind = "insert"
)

// IsValid returns true if the kind is recognised.
func (k OpKind) IsValid() bool {
	switch k {
	case OpLiteral, OpRegex, OpTemplate, OpInsert:
		return true
	default:
		return false
	}
}

// IsRegex returns true if the kind compiles a pattern.
func (k OpKind) IsRegex() bool {
	return k == OpRegex || k == OpTemplate
}

// String returns the string representation.
func (k OpKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k OpKind) Description() string {
	switch k {
	case OpLiteral:
		return "Literal replace"
	case OpRegex:
		return "Regex replace"
	case OpTemplate:
		return "Regex template replace"
	case OpInsert:
		return "Insert after anchor"
	default:
		return unknownDescription
	}
}

// Severity controls how a zero-effect operation is treated.
type Severity string

// Available severities.
const (
	// SeverityWarn surfaces zero effect in the report only.
	SeverityWarn Severity = "warn"

	// SeverityRequire fails the run when the operation has zero effect.
	SeverityRequire Severity = "require"
)

// IsValid returns true if the severity is recognised.
// The empty severity is valid and means SeverityWarn.
func (s Severity) IsValid() bool {
	switch s {
	case "", SeverityWarn, SeverityRequire:
		return true
	default:
		return false
	}
}

// Operation is one atomic text-transformation instruction.
// Only the fields belonging to Kind are meaningful.
type Operation struct {
	// Label identifies the operation in diagnostics.
	Label string

	// Kind selects the variant.
	Kind OpKind

	// Find is the literal substring for OpLiteral.
	Find string

	// Replace is the literal replacement for OpLiteral and OpRegex.
	Replace string

	// Pattern is the regular expression for OpRegex and OpTemplate.
	Pattern string

	// Template is the per-match replacement for OpTemplate.
	// $0, $1, ${1}, $name, ${name} reference groups; $$ is a literal dollar.
	Template string

	// Anchor is the literal substring located by OpInsert.
	Anchor string

	// Inserted is the text spliced after Anchor by OpInsert.
	Inserted string

	// Severity controls zero-effect handling. Empty means SeverityWarn.
	Severity Severity
}

// LiteralReplace builds an OpLiteral operation.
func LiteralReplace(label, find, replace string) Operation {
	return Operation{Label: label, Kind: OpLiteral, Find: find, Replace: replace}
}

// RegexReplace builds an OpRegex operation.
func RegexReplace(label, pattern, replacement string) Operation {
	return Operation{Label: label, Kind: OpRegex, Pattern: pattern, Replace: replacement}
}

// RegexTemplateReplace builds an OpTemplate operation.
func RegexTemplateReplace(label, pattern, template string) Operation {
	return Operation{Label: label, Kind: OpTemplate, Pattern: pattern, Template: template}
}

// InsertAfterAnchor builds an OpInsert operation.
func InsertAfterAnchor(label, anchor, inserted string) Operation {
	return Operation{Label: label, Kind: OpInsert, Anchor: anchor, Inserted: inserted}
}

// Required returns a copy of the operation with SeverityRequire.
func (o Operation) Required() Operation {
	o.Severity = SeverityRequire
	return o
}

// IsRequired returns true if zero effect must fail the run.
func (o Operation) IsRequired() bool {
	return o.Severity == SeverityRequire
}

// Target returns the literal, pattern or anchor the operation searches for.
func (o Operation) Target() string {
	switch o.Kind {
	case OpLiteral:
		return o.Find
	case OpRegex, OpTemplate:
		return o.Pattern
	case OpInsert:
		return o.Anchor
	default:
		return ""
	}
}

// Validate checks the operation is structurally complete.
// It does not compile patterns; that is the engine's job.
func (o Operation) Validate() error {
	if !o.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedKind, o.Kind)
	}
	if !o.Severity.IsValid() {
		return fmt.Errorf("%w: unknown severity %q", ErrInvalidInput, o.Severity)
	}
	if o.Target() == "" {
		return fmt.Errorf("%w: %s operation has an empty target", ErrInvalidInput, o.Kind)
	}
	return nil
}
