package patch

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

// planFile is the TOML shape of a plan.
type planFile struct {
	Name        string           `toml:"name"`
	Description string           `toml:"description"`
	Operation   []map[string]any `toml:"operation"`
}

// ParsePlan decodes a TOML plan and builds each [[operation]] table
// through the registry. Order in the file is the order of application.
func ParsePlan(data []byte, r *Registry) (*domain.Plan, error) {
	var f planFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	if f.Name == "" {
		return nil, fmt.Errorf("%w: plan has no name", domain.ErrInvalidInput)
	}

	plan := &domain.Plan{
		Name:        f.Name,
		Description: f.Description,
		Operations:  make([]domain.Operation, 0, len(f.Operation)),
	}
	for i, cfg := range f.Operation {
		kind := domain.OpKind(getString(cfg, "kind"))
		op, err := r.Build(kind, cfg)
		if err != nil {
			return nil, fmt.Errorf("plan %s operation %d: %w", f.Name, i, err)
		}
		if op.Label == "" {
			op.Label = fmt.Sprintf("%s-%d", kind, i+1)
		}
		plan.Operations = append(plan.Operations, op)
	}
	return plan, nil
}
