package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <result.json>",
	Short: "Validate a saved match result against the result schema",
	Long:  "Validate a match result JSON file (as written by 'score --out') against the embedded match result schema.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := schemas.ValidateResultFile(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid match result\n", args[0])
	return nil
}
