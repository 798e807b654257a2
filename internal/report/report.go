// Package report renders patch run results for humans.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

// Options controls rendering.
type Options struct {
	// Styled enables colours. Set it only when writing to a terminal.
	Styled bool

	// Operations lists every operation, not only those without effect.
	Operations bool

	// Styles overrides the default styles when Styled is set.
	Styles *Styles
}

// Summary returns the plain-text summary of a report.
func Summary(r *domain.Report) string {
	var b strings.Builder
	_ = Render(&b, r, Options{})
	return b.String()
}

// Render writes the summary of r to w.
//
// The summary has the number of operations executed and applied, the
// operations that had no effect (candidates for staleness), the total
// replacements, and the original and corrected line counts with their
// signed delta.
func Render(w io.Writer, r *domain.Report, opts Options) error {
	p := newPainter(opts)
	noEffect := r.NoEffect()

	lines := []string{
		fmt.Sprintf("%s %d executed, %d applied, %d without effect",
			p.paint(p.styles.Label, "Operations:"), r.Executed(), len(r.Applied()), len(noEffect)),
		fmt.Sprintf("%s %d", p.paint(p.styles.Label, "Replacements:"), r.Replacements()),
	}

	if opts.Operations {
		lines = append(lines, p.paint(p.styles.Title, "Per operation:"))
		for _, res := range r.Results {
			lines = append(lines, "  "+p.result(res))
		}
	} else if len(noEffect) > 0 {
		lines = append(lines, p.paint(p.styles.Warning, "Without effect (review for staleness):"))
		for _, res := range noEffect {
			lines = append(lines, "  "+p.result(res))
		}
	}

	lines = append(lines,
		fmt.Sprintf("%s %d lines", p.paint(p.styles.Label, "Original: "), r.InputLines),
		fmt.Sprintf("%s %d lines", p.paint(p.styles.Label, "Corrected:"), r.OutputLines),
		fmt.Sprintf("%s %s lines", p.paint(p.styles.Label, "Diff:     "), p.delta(r.Delta())),
	)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// painter applies styles only when styling is on.
type painter struct {
	styled bool
	styles *Styles
}

func newPainter(opts Options) painter {
	styles := opts.Styles
	if styles == nil {
		styles = DefaultStyles()
	}
	return painter{styled: opts.Styled, styles: styles}
}

func (p painter) paint(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

func (p painter) result(res domain.Result) string {
	name := fmt.Sprintf("#%d %s (%s)", res.Index+1, res.Label, res.Kind)
	switch {
	case res.AlreadyApplied:
		return p.paint(p.styles.Label, "[=] "+name+" already applied")
	case res.NoEffect():
		return p.paint(p.styles.Warning, "[!] "+name+" no match")
	default:
		return p.paint(p.styles.Success, "[+] "+name) + fmt.Sprintf(" x%d", res.Count)
	}
}

func (p painter) delta(d int) string {
	s := fmt.Sprintf("%+d", d)
	switch {
	case d > 0:
		return p.paint(p.styles.Success, s)
	case d < 0:
		return p.paint(p.styles.Error, s)
	default:
		return s
	}
}
