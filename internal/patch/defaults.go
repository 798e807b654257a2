package patch

import (
	"fmt"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

// RegisterDefaults registers the four built-in operation kinds.
func RegisterDefaults(r *Registry) {
	r.Register(domain.OpLiteral, buildLiteral)
	r.Register(domain.OpRegex, buildRegex)
	r.Register(domain.OpTemplate, buildTemplate)
	r.Register(domain.OpInsert, buildInsert)
}

// buildLiteral supports: label, find, replace, severity.
func buildLiteral(cfg map[string]any) (domain.Operation, error) {
	find, err := requireString(cfg, "find")
	if err != nil {
		return domain.Operation{}, err
	}
	op := domain.LiteralReplace(getString(cfg, "label"), find, getString(cfg, "replace"))
	return withSeverity(op, cfg)
}

// buildRegex supports: label, pattern, replace, severity.
func buildRegex(cfg map[string]any) (domain.Operation, error) {
	pattern, err := requireString(cfg, "pattern")
	if err != nil {
		return domain.Operation{}, err
	}
	op := domain.RegexReplace(getString(cfg, "label"), pattern, getString(cfg, "replace"))
	return withSeverity(op, cfg)
}

// buildTemplate supports: label, pattern, template, severity.
func buildTemplate(cfg map[string]any) (domain.Operation, error) {
	pattern, err := requireString(cfg, "pattern")
	if err != nil {
		return domain.Operation{}, err
	}
	op := domain.RegexTemplateReplace(getString(cfg, "label"), pattern, getString(cfg, "template"))
	return withSeverity(op, cfg)
}

// buildInsert supports: label, anchor, inserted, severity.
func buildInsert(cfg map[string]any) (domain.Operation, error) {
	anchor, err := requireString(cfg, "anchor")
	if err != nil {
		return domain.Operation{}, err
	}
	op := domain.InsertAfterAnchor(getString(cfg, "label"), anchor, getString(cfg, "inserted"))
	return withSeverity(op, cfg)
}

func withSeverity(op domain.Operation, cfg map[string]any) (domain.Operation, error) {
	op.Severity = domain.Severity(getString(cfg, "severity"))
	if err := op.Validate(); err != nil {
		return domain.Operation{}, err
	}
	return op, nil
}

// requireString extracts a non-empty string field.
func requireString(cfg map[string]any, key string) (string, error) {
	s := getString(cfg, key)
	if s == "" {
		return "", fmt.Errorf("%w: missing %q", domain.ErrInvalidInput, key)
	}
	return s, nil
}

// getString safely extracts a string from a generic config map.
func getString(cfg map[string]any, key string) string {
	val, ok := cfg[key]
	if !ok {
		return ""
	}
	s, ok := val.(string)
	if !ok {
		return ""
	}
	return s
}
