package cmd

import (
	"errors"
	"fmt"

	"github.com/abdul-hamid-achik/toolbox/packages/builtin"
	"github.com/abdul-hamid-achik/toolbox/packages/checks"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory...>",
	Short: "Validate check files without evaluating them",
	Long: `Validate check files against the check-file schema and make sure
every expression parses and names a registered function. Nothing is
evaluated.

Examples:
  toolbox validate smoke.checks.yaml
  toolbox validate ./checks/`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	files, err := checks.CollectFiles(args)
	if err != nil {
		return withExitCode(ExitUsageError, err)
	}

	if len(files) == 0 {
		return withExitCode(ExitUsageError, fmt.Errorf("no .checks.yaml files found"))
	}

	hasErrors := false
	for _, file := range files {
		f, err := checks.LoadFile(file)
		if err == nil {
			err = validateExpressions(f)
		}
		if err != nil {
			var schemaErr *checks.SchemaError
			if errors.As(err, &schemaErr) {
				fmt.Fprintf(cmd.OutOrStderr(), "Error in %s:\n", file)
				for _, problem := range schemaErr.Problems {
					fmt.Fprintf(cmd.OutOrStderr(), "  - %s\n", problem)
				}
			} else {
				fmt.Fprintf(cmd.OutOrStderr(), "Error in %s: %v\n", file, err)
			}
			hasErrors = true
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s (%d checks)\n", file, len(f.Checks))
	}

	if hasErrors {
		cmd.SilenceErrors = true
		return withExitCode(ExitCheckFailure, fmt.Errorf("validation failed"))
	}

	return nil
}

// validateExpressions parses every expression in f and resolves its
// function name.
func validateExpressions(f *checks.File) error {
	var errs []error
	for _, c := range f.Checks {
		name, _, err := builtin.ParseCall(c.Expr)
		if err != nil {
			errs = append(errs, fmt.Errorf("check %q: %w", c.Name, err))
			continue
		}
		if _, ok := registry.Lookup(name); !ok {
			errs = append(errs, fmt.Errorf("check %q: %w: %s", c.Name, builtin.ErrUnknownFunction, name))
		}
	}
	return errors.Join(errs...)
}
