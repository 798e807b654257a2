package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docpatch/internal/core/domain"
)

var planFile string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "List the operations of the correction plan",
	Long: `Lists the operations of the plan in the order they are applied.

Operations marked "required" fail the run when they change nothing.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planFile, "plan", "", "Show a TOML plan file instead of the built-in plan")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	var plan *domain.Plan
	switch {
	case planFile != "":
		p, err := loadPlanFile(planFile)
		if err != nil {
			return err
		}
		plan = p
	case patchService != nil:
		plan = patchService.Plan()
	default:
		return errors.New("patch service not configured")
	}

	if err := plan.Validate(); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Plan: %s (%d operations)\n", plan.Name, plan.Len())
	if plan.Description != "" {
		fmt.Fprintln(out, strings.TrimSpace(plan.Description))
	}
	fmt.Fprintln(out)

	for i, op := range plan.Operations {
		line := fmt.Sprintf("%2d. %s [%s]", i+1, op.Label, op.Kind.Description())
		if op.IsRequired() {
			line += " required"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
