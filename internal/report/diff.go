package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines kept around each change.
const contextLines = 3

// lineOp is one line of a line-level diff.
type lineOp struct {
	kind  byte // ' ', '-' or '+'
	text  string
	oldAt int // zero-based line in the old text before this op
	newAt int // zero-based line in the new text before this op
}

// Diff returns a unified-style line diff between two texts.
// Identical texts produce an empty string.
func Diff(oldText, newText string) string {
	var b strings.Builder
	_ = writeDiff(&b, lineOps(oldText, newText), painter{styles: DefaultStyles()})
	return b.String()
}

// RenderDiff writes the diff of path between two texts to w,
// with file headers. Nothing is written when the texts are equal.
func RenderDiff(w io.Writer, path, oldText, newText string, opts Options) error {
	ops := lineOps(oldText, newText)
	if !hasChanges(ops) {
		return nil
	}
	p := newPainter(opts)
	if _, err := fmt.Fprintf(w, "%s\n%s\n",
		p.paint(p.styles.Title, "--- a/"+path),
		p.paint(p.styles.Title, "+++ b/"+path)); err != nil {
		return err
	}
	return writeDiff(w, ops, p)
}

func lineOps(oldText, newText string) []lineOp {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var ops []lineOp
	oldLine, newLine := 0, 0
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			op := lineOp{text: line, oldAt: oldLine, newAt: newLine}
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				op.kind = ' '
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				op.kind = '-'
				oldLine++
			case diffmatchpatch.DiffInsert:
				op.kind = '+'
				newLine++
			}
			ops = append(ops, op)
		}
	}
	return ops
}

// splitLines splits text into lines without their terminators.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\n")
	}
	return lines
}

func hasChanges(ops []lineOp) bool {
	for _, op := range ops {
		if op.kind != ' ' {
			return true
		}
	}
	return false
}

// hunks groups changes with their surrounding context. Changes closer
// than twice the context share a hunk.
func hunks(ops []lineOp) [][]lineOp {
	var out [][]lineOp
	for i := 0; i < len(ops); {
		if ops[i].kind == ' ' {
			i++
			continue
		}
		start := max(0, i-contextLines)
		last := i
		for j := i + 1; j < len(ops) && j <= last+2*contextLines; j++ {
			if ops[j].kind != ' ' {
				last = j
			}
		}
		end := min(len(ops), last+contextLines+1)
		out = append(out, ops[start:end])
		i = end
	}
	return out
}

func writeDiff(w io.Writer, ops []lineOp, p painter) error {
	for _, h := range hunks(ops) {
		oldCount, newCount := 0, 0
		for _, op := range h {
			if op.kind != '+' {
				oldCount++
			}
			if op.kind != '-' {
				newCount++
			}
		}
		header := fmt.Sprintf("@@ -%s +%s @@",
			hunkRange(h[0].oldAt, oldCount), hunkRange(h[0].newAt, newCount))
		if _, err := fmt.Fprintln(w, p.paint(p.styles.Hunk, header)); err != nil {
			return err
		}

		for _, op := range h {
			line := string(op.kind) + op.text
			switch op.kind {
			case '+':
				line = p.paint(p.styles.Success, line)
			case '-':
				line = p.paint(p.styles.Error, line)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// hunkRange formats a unified diff range. An empty range names the
// line before it.
func hunkRange(start, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", start)
	}
	return fmt.Sprintf("%d,%d", start+1, count)
}
