package domain

// Result records what a single operation did to the buffer.
type Result struct {
	// Index is the zero-based position of the operation in the plan.
	Index int

	// Label is the operation's diagnostic label.
	Label string

	// Kind is the operation variant.
	Kind OpKind

	// Found is true if the target occurred in the pre-operation buffer.
	Found bool

	// Count is the number of replacements or insertions made.
	Count int

	// AlreadyApplied is true when an insertion was skipped because the
	// inserted text already follows the anchor.
	AlreadyApplied bool
}

// NoEffect returns true if the operation changed nothing.
// This is the NoEffectWarning: a staleness candidate, not an error.
func (r Result) NoEffect() bool {
	return r.Count == 0
}

// Report is the ordered outcome of applying a plan to one document.
type Report struct {
	// Results holds one entry per operation, in plan order.
	Results []Result

	// InputLines is the line count of the original text.
	InputLines int

	// OutputLines is the line count of the corrected text.
	OutputLines int
}

// NewReport builds a report from results and the two texts.
func NewReport(results []Result, input, output string) *Report {
	return &Report{
		Results:     results,
		InputLines:  LineCount(input),
		OutputLines: LineCount(output),
	}
}

// Delta returns the signed line-count change.
func (r *Report) Delta() int {
	return r.OutputLines - r.InputLines
}

// Executed returns the number of operations run.
func (r *Report) Executed() int {
	return len(r.Results)
}

// Applied returns the results that changed the buffer.
func (r *Report) Applied() []Result {
	var applied []Result
	for _, res := range r.Results {
		if !res.NoEffect() {
			applied = append(applied, res)
		}
	}
	return applied
}

// NoEffect returns the results that changed nothing.
func (r *Report) NoEffect() []Result {
	var stale []Result
	for _, res := range r.Results {
		if res.NoEffect() {
			stale = append(stale, res)
		}
	}
	return stale
}

// Replacements returns the total number of replacements and insertions.
func (r *Report) Replacements() int {
	total := 0
	for _, res := range r.Results {
		total += res.Count
	}
	return total
}

// Changed returns true if any operation had an effect.
func (r *Report) Changed() bool {
	return r.Replacements() > 0
}
