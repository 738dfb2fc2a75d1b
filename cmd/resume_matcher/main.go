// Package main provides the entry point for the Resume Matcher CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume Matcher scoring engine",
	Long:  "Resume Matcher scores resumes against job descriptions: section segmentation, keyword matching, five-aspect scoring and hiring recommendations, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
