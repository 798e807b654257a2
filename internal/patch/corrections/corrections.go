// Package corrections embeds the built-in correction plan for
// CHARACTER-BUILDER-ANALYSIS.md.
package corrections

import (
	_ "embed"
	"fmt"

	"github.com/custodia-labs/docpatch/internal/core/domain"
	"github.com/custodia-labs/docpatch/internal/patch"
)

//go:embed corrections.toml
var planTOML []byte

// Name is the name of the built-in plan.
const Name = "character-builder-corrections"

// Plan decodes the embedded plan with the default registry.
func Plan() (*domain.Plan, error) {
	plan, err := patch.ParsePlan(planTOML, patch.DefaultRegistry())
	if err != nil {
		return nil, fmt.Errorf("loading built-in plan: %w", err)
	}
	return plan, nil
}

// MustPlan is like Plan but panics on error.
// The plan is compiled into the binary, so a failure is a build defect.
func MustPlan() *domain.Plan {
	plan, err := Plan()
	if err != nil {
		panic(err)
	}
	return plan
}
