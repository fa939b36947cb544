package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/toolbox/packages/core/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new toolbox project",
	Long: `Initialize a new toolbox project in the current directory.

This creates:
  - .toolbox.yaml        - Configuration file with the default settings
  - example.checks.yaml  - Example check file

Examples:
  toolbox init
  toolbox init --force`,
	PersistentPreRunE: skipRuntime,
	RunE:              initCommand,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite existing files")
}

const exampleChecks = `name: example
checks:
  - name: greatest common divisor
    expr: numbers.gdc(12, 18)
    expect: 6
  - name: least common multiple of a list
    expr: numbers.lcmArray([4, 6, 10])
    expect: 60
  - expr: numbers.isPrime(97)
    expect: true
  - expr: numbers.average(1, 2, 3, 4)
    expect: 2.5
  - name: rgb to hex
    expr: colors.rgbToHex(255, 136, 0)
    expect: "#ff8800"
  - name: hex to rgb
    expr: colors.hexToRgb("#ff8800")
    expect: {r: 255, g: 136, b: 0}
  - expr: colors.hslToHex(0, 100, 50)
    expect: "#ff0000"
  - name: relative timestamp token
    expr: timestamps.fromDate(1620000000000, "RELATIVE")
    expect: "<t:1620000000:R>"
  - name: dates must be numbers
    expr: timestamps.fromDate("soon")
    expectError: invalid_argument
  - expr: numbers.nope(1)
    expectError: unknown_function
  - name: random values only need to evaluate
    expr: colors.randomHsl()
`

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, ".toolbox.yaml")
	exampleFile := filepath.Join(cwd, "example.checks.yaml")

	if !forceInit {
		for _, f := range []string{configFile, exampleFile} {
			if _, err := os.Stat(f); err == nil {
				return withExitCode(ExitUsageError, fmt.Errorf("file already exists: %s (use --force to overwrite)", f))
			}
		}
	}

	if err := config.DefaultConfig().SaveConfig(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	if err := os.WriteFile(exampleFile, []byte(exampleChecks), 0644); err != nil {
		return fmt.Errorf("failed to create example file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", exampleFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\ntoolbox project initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'toolbox check example.checks.yaml' to execute the example checks.\n")

	return nil
}
