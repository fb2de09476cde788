package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/essay-grader/internal/schemas"
	schemafiles "github.com/jonathan/essay-grader/schemas"
)

var (
	validateReportIn     string
	validateReportSchema string
)

var validateReportCmd = &cobra.Command{
	Use:   "validate-report",
	Short: "Validate a stored report against the essay report schema",
	Long: `Validates a report JSON file against the bundled essay report schema.

--schema validates against a schema file instead, resolved from the working
directory or up to two parent directories.`,
	RunE:  runValidateReport,
}

func init() {
	validateReportCmd.Flags().StringVarP(&validateReportIn, "in", "i", "", "Path to the report JSON file (required)")
	validateReportCmd.Flags().StringVar(&validateReportSchema, "schema", "", "Validate against this schema file instead of the bundled one")
	if err := validateReportCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark 'in' flag as required: %v", err))
	}
	rootCmd.AddCommand(validateReportCmd)
}

func runValidateReport(cmd *cobra.Command, _ []string) error {
	err := validateReportFile(validateReportIn, validateReportSchema)
	var validationErr *schemas.ValidationError
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", validateReportIn)
		return nil
	case errors.As(err, &validationErr):
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation failed: %s\n%s", validateReportIn, validationErr.Error())
		return fmt.Errorf("report does not match schema")
	default:
		return err
	}
}

// validateReportFile checks path against schemaPath, or the bundled report schema
// when schemaPath is empty.
func validateReportFile(path, schemaPath string) error {
	if schemaPath != "" {
		if resolved := schemas.ResolveSchemaPath(schemaPath); resolved != "" {
			schemaPath = resolved
		}
		return schemas.ValidateJSON(schemaPath, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}
	return schemas.ValidateEmbedded(schemafiles.EssayReport, data)
}
