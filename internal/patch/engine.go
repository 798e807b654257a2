// Package patch applies ordered lists of text patch operations.
package patch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

// Engine replays patch operations against a text buffer.
// It holds no state between calls and is safe for concurrent use.
type Engine struct {
	longest bool
}

// Option configures the engine.
type Option func(*Engine)

// WithLongestMatch makes regex operations prefer leftmost-longest
// matches instead of leftmost-first.
func WithLongestMatch() Option {
	return func(e *Engine) {
		e.longest = true
	}
}

// New creates an engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stage is the buffer after one operation ran.
type Stage struct {
	Result domain.Result
	Text   string
}

// Apply runs ops in order against text and returns the final text and
// one result per operation. Every pattern is compiled before the buffer
// is touched, so a malformed operation yields no output at all.
func (e *Engine) Apply(text string, ops []domain.Operation) (string, []domain.Result, error) {
	results := make([]domain.Result, 0, len(ops))
	out, err := e.run(text, ops, func(res domain.Result, _ string) {
		results = append(results, res)
	})
	if err != nil {
		return "", nil, err
	}
	return out, results, nil
}

// Stages is like Apply but also returns the buffer after every operation.
func (e *Engine) Stages(text string, ops []domain.Operation) ([]Stage, error) {
	stages := make([]Stage, 0, len(ops))
	_, err := e.run(text, ops, func(res domain.Result, buf string) {
		stages = append(stages, Stage{Result: res, Text: buf})
	})
	if err != nil {
		return nil, err
	}
	return stages, nil
}

// Compile checks every operation without applying anything.
func (e *Engine) Compile(ops []domain.Operation) error {
	_, err := e.compile(ops)
	return err
}

func (e *Engine) run(text string, ops []domain.Operation, observe func(domain.Result, string)) (string, error) {
	steps, err := e.compile(ops)
	if err != nil {
		return "", err
	}

	buf := text
	for _, s := range steps {
		var res domain.Result
		buf, res = s.apply(buf)
		if res.NoEffect() && !res.AlreadyApplied && s.op.IsRequired() {
			return "", &domain.PatchError{Index: s.index, Label: s.op.Label, Err: domain.ErrRequiredNoEffect}
		}
		observe(res, buf)
	}
	return buf, nil
}

func (e *Engine) compile(ops []domain.Operation) ([]step, error) {
	steps := make([]step, 0, len(ops))
	for i, op := range ops {
		s, err := e.compileOne(i, op)
		if err != nil {
			return nil, &domain.PatchError{Index: i, Label: op.Label, Err: err}
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func (e *Engine) compileOne(index int, op domain.Operation) (step, error) {
	if err := op.Validate(); err != nil {
		return step{}, err
	}

	s := step{index: index, op: op}
	if !op.Kind.IsRegex() {
		return s, nil
	}

	re, err := regexp.Compile(op.Pattern)
	if err != nil {
		return step{}, fmt.Errorf("%w: %v", domain.ErrInvalidPattern, err)
	}
	if e.longest {
		re.Longest()
	}
	s.re = re

	if op.Kind == domain.OpTemplate {
		names := re.SubexpNames()
		if len(names) == 0 {
			names = []string{""}
		}
		tmpl, err := parseTemplate(op.Template, names)
		if err != nil {
			return step{}, fmt.Errorf("%w: %v", domain.ErrInvalidPattern, err)
		}
		s.tmpl = tmpl
	}
	return s, nil
}

// step is an operation ready to run.
type step struct {
	index int
	op    domain.Operation
	re    *regexp.Regexp
	tmpl  template
}

func (s step) apply(buf string) (string, domain.Result) {
	res := domain.Result{Index: s.index, Label: s.op.Label, Kind: s.op.Kind}

	switch s.op.Kind {
	case domain.OpLiteral:
		return applyLiteral(buf, s.op.Find, s.op.Replace, res)
	case domain.OpRegex:
		locs := matches(s.re.FindAllStringIndex(buf, -1))
		return splice(buf, locs, res, func(_ []int, b *strings.Builder) {
			b.WriteString(s.op.Replace)
		})
	case domain.OpTemplate:
		locs := matches(s.re.FindAllStringSubmatchIndex(buf, -1))
		return splice(buf, locs, res, func(m []int, b *strings.Builder) {
			s.tmpl.expand(b, buf, m)
		})
	case domain.OpInsert:
		return applyInsert(buf, s.op.Anchor, s.op.Inserted, res)
	}
	return buf, res
}

func applyLiteral(buf, find, replace string, res domain.Result) (string, domain.Result) {
	n := strings.Count(buf, find)
	if n == 0 {
		return buf, res
	}
	res.Found = true
	res.Count = n
	return strings.ReplaceAll(buf, find, replace), res
}

func applyInsert(buf, anchor, inserted string, res domain.Result) (string, domain.Result) {
	idx := strings.Index(buf, anchor)
	if idx < 0 {
		return buf, res
	}
	res.Found = true

	at := idx + len(anchor)
	if strings.HasPrefix(buf[at:], inserted) {
		res.AlreadyApplied = true
		return buf, res
	}

	res.Count = 1
	return buf[:at] + inserted + buf[at:], res
}

// matches drops empty matches that abut the previous match,
// the same rule the standard library applies when replacing.
func matches(locs [][]int) [][]int {
	out := locs[:0]
	prevEnd := -1
	for _, m := range locs {
		if len(m) < 2 {
			continue
		}
		if m[0] == m[1] && m[0] == prevEnd {
			continue
		}
		out = append(out, m)
		prevEnd = m[1]
	}
	return out
}

func splice(buf string, locs [][]int, res domain.Result, write func([]int, *strings.Builder)) (string, domain.Result) {
	if len(locs) == 0 {
		return buf, res
	}
	res.Found = true
	res.Count = len(locs)

	var b strings.Builder
	b.Grow(len(buf))
	last := 0
	for _, m := range locs {
		b.WriteString(buf[last:m[0]])
		write(m, &b)
		last = m[1]
	}
	b.WriteString(buf[last:])
	return b.String(), res
}

// defaultEngine backs the package-level Apply.
var defaultEngine = New()

// Apply runs ops against text with a default engine.
func Apply(text string, ops []domain.Operation) (string, []domain.Result, error) {
	return defaultEngine.Apply(text, ops)
}
