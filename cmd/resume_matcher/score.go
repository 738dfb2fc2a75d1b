package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/engine"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long: `Score a resume text file against a job description and print the match
result as JSON: composite score, per-aspect breakdown, matched and missing
keywords, and hiring recommendations.

The job description comes from a local file (--job) or is fetched from a
URL (--job-url). Configuration can be loaded from a JSON file using
--config; command-line arguments override config file values.`,
	RunE: runScore,
}

var (
	scoreConfigPath  string
	scoreResume      string
	scoreJob         string
	scoreJobURL      string
	scoreProfile     string
	scoreWeights     []string
	scoreAPIKey      string
	scoreUseBrowser  bool
	scoreVerbose     bool
	scoreDatabaseURL string
	scoreStore       bool
	scoreOutputFile  string
)

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume text file")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	scoreCmd.Flags().StringVar(&scoreProfile, "profile", "", "Weight profile: standard or legacy (default standard)")
	scoreCmd.Flags().StringArrayVar(&scoreWeights, "weight", nil, "Aspect weight override as aspect=value (repeatable, e.g. --weight skills=0.5)")
	scoreCmd.Flags().BoolVar(&scoreUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detected sections, keywords and the full breakdown")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Write the result JSON to a file instead of stdout")
	scoreCmd.Flags().BoolVar(&scoreStore, "store", false, "Persist the result to the database")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API Key for embedding similarity (optional, defaults to GEMINI_API_KEY env var; omit for lexical similarity)")

	// Database URL for result persistence
	scoreCmd.Flags().StringVar(&scoreDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var; required with --store)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if scoreConfigPath != "" {
		loadedCfg, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if scoreVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", scoreConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = scoreResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = scoreJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = scoreJobURL
	}
	if cmd.Flags().Changed("profile") {
		cfg.WeightProfile = scoreProfile
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = scoreAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = scoreUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scoreVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = scoreDatabaseURL
	}
	if len(scoreWeights) > 0 {
		overrides, err := parseWeightFlags(scoreWeights)
		if err != nil {
			return err
		}
		if cfg.Weights == nil {
			cfg.Weights = overrides
		} else {
			for aspect, weight := range overrides {
				cfg.Weights[aspect] = weight
			}
		}
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{WeightProfile: "standard"})

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 5: API key handling (optional; empty selects lexical similarity)
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	// Step 6: Gather input texts
	resumeBytes, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	resumeText := string(resumeBytes)

	var jobText string
	if cfg.Job != "" {
		jobBytes, err := os.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		jobText = string(jobBytes)
	} else {
		fetcher := fetch.NewCachedFetcher(nil)
		jobText, err = fetcher.JobText(ctx, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to fetch job description: %w", err)
		}
	}

	// Step 7: Build the engine
	profile, err := scoring.ProfileByName(cfg.WeightProfile)
	if err != nil {
		return err
	}

	var sim embedding.Similarity
	if cfg.APIKey != "" {
		provider := embedding.NewProvider(cfg.APIKey)
		defer func() { _ = provider.Close() }()
		sim = provider
	}

	v := vocab.Default()
	eng := engine.New(v, engine.Options{Similarity: sim, Profile: profile})

	result, err := eng.Score(ctx, resumeText, jobText, cfg.Weights)
	if err != nil {
		return err
	}

	// Step 8: Output
	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintSections(eng.Sections(resumeText), v.CanonicalSections)
		printer.PrintKeywords(eng.Keywords(resumeText), eng.Keywords(jobText))
		printer.PrintMatchResult(result)
		printer.PrintRecommendations(result.Recommendations)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if scoreOutputFile != "" {
		if err := os.WriteFile(scoreOutputFile, append(output, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		fmt.Println(string(output))
	}

	// Step 9: Optional persistence
	if scoreStore {
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("--store requires DATABASE_URL environment variable or --db-url flag")
		}

		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		jobID, err := database.SaveJobDescription(ctx, jobText)
		if err != nil {
			return err
		}
		id, err := database.SaveAnalysisResult(ctx, uuid.New(), jobID, *result)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Stored result %s\n", id)
	}

	return nil
}

// parseWeightFlags parses repeated aspect=value flag values.
func parseWeightFlags(flags []string) (map[string]float64, error) {
	weights := make(map[string]float64, len(flags))
	for _, flag := range flags {
		aspect, value, ok := strings.Cut(flag, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --weight %q: expected aspect=value", flag)
		}
		weight, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --weight %q: %w", flag, err)
		}
		weights[strings.TrimSpace(aspect)] = weight
	}
	return weights, nil
}
