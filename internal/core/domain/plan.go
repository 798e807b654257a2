package domain

import "fmt"

// Plan is a named, ordered list of operations.
// Order is significant: each operation sees the output of the ones before it.
type Plan struct {
	// Name identifies the plan in reports and history.
	Name string

	// Description is a one-line summary for listings.
	Description string

	// Operations are applied in order.
	Operations []Operation
}

// Len returns the number of operations in the plan.
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Operations)
}

// Validate checks the plan is named and every operation is well-formed.
// Pattern compilation is left to the engine.
func (p *Plan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: plan has no name", ErrInvalidInput)
	}
	for i, op := range p.Operations {
		if err := op.Validate(); err != nil {
			return &PatchError{Index: i, Label: op.Label, Err: err}
		}
	}
	return nil
}
