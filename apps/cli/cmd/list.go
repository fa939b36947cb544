package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var namespaces = []string{"timestamps", "numbers", "colors"}

var listCmd = &cobra.Command{
	Use:   "list [namespace]",
	Short: "List the available functions",
	Long: `List every registered function with its signature.

Examples:
  toolbox list
  toolbox list colors
  toolbox list --output json`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: namespaces,
	RunE:      listCommand,
}

type listedFunction struct {
	Name        string `json:"name"`
	Signature   string `json:"signature"`
	Description string `json:"description"`
}

func listCommand(cmd *cobra.Command, args []string) error {
	selected := namespaces
	if len(args) == 1 {
		if !contains(namespaces, args[0]) {
			return withExitCode(ExitUsageError, fmt.Errorf("unknown namespace %q", args[0]))
		}
		selected = args[:1]
	}

	if settings.Output == "json" {
		var out []listedFunction
		for _, ns := range selected {
			for _, fn := range registry.Functions(ns) {
				out = append(out, listedFunction{Name: fn.Name, Signature: fn.Signature, Description: fn.Description})
			}
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	if settings.GetNoColor() {
		color.NoColor = true
	}
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	for _, ns := range selected {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", bold(ns))
		for _, fn := range registry.Functions(ns) {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", fn.Signature)
			if fn.Description != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", faint(fn.Description))
			}
		}
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
