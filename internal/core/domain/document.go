package domain

// Document is a loaded text and its corrected copy.
// Original is never mutated; Corrected is derived by applying a plan.
type Document struct {
	// Path is where the document was read from.
	Path string

	// Original is the content as read.
	Original string

	// Corrected is the content after the plan ran.
	Corrected string
}

// Changed returns true if the corrected text differs from the original.
func (d *Document) Changed() bool {
	return d.Original != d.Corrected
}

// LineCount returns the number of lines in text.
// A trailing line break does not start a new line, so "a\n" and "a"
// both count as one line and the empty string counts as zero.
// \n, \r\n and \r are all treated as line breaks.
func LineCount(text string) int {
	if text == "" {
		return 0
	}

	lines := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines++
		case '\r':
			lines++
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		}
	}

	last := text[len(text)-1]
	if last != '\n' && last != '\r' {
		lines++
	}
	return lines
}
