// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/skylineg/skylineg/internal/calendar"
	"github.com/skylineg/skylineg/internal/config"
	"github.com/skylineg/skylineg/internal/github"
	"github.com/skylineg/skylineg/internal/output"
	"github.com/spf13/cobra"
)

// fetchOptions holds the flags of the fetch command
type fetchOptions struct {
	user       string
	year       int
	configPath string
	envFile    string
	outputFile string
	format     string
	verbose    bool
}

func newFetchCommand() *cobra.Command {
	var opts fetchOptions

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the contribution calendar of a GitHub user",
		Long: `Fetch the contribution calendar of a GitHub user for one year.

The year must be between 2008 and the year before the current one.

Authentication is required via a GitHub API token read from the
environment variable named in the config (GITHUB_API_TOKEN by default).
A .env file in the working directory is loaded first if present.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.user, "user", "u", "", "GitHub login to fetch")
	cmd.Flags().IntVarP(&opts.year, "year", "y", 0, "Calendar year to fetch")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file (default: .skylineg.yaml or ~/.skylineg/config.yaml)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "Dotenv file to load before reading the token")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "Write contribution records as NDJSON to this file")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: summary or ndjson (overrides config)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

// run loads configuration and credentials, then fetches with a GraphQL client
func run(ctx context.Context, opts fetchOptions, stdout, stderr io.Writer) error {
	if err := config.LoadEnvFile(opts.envFile); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.outputFile != "" {
		cfg.Output.Path = opts.outputFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	token, err := cfg.Token()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Log.Level, opts.verbose, stderr)
	if err != nil {
		return err
	}

	client := github.NewGraphQLClient(token, cfg.GitHub.GraphQLEndpoint, github.ClientOptions{
		Timeout:   cfg.HTTP.Timeout,
		UserAgent: cfg.GitHub.UserAgent,
		Logger:    log,
	})

	return runFetch(ctx, client, cfg, opts, stdout, stderr, log)
}

// runFetch looks up the user, fetches the calendar and writes the results
func runFetch(ctx context.Context, client github.Client, cfg *config.Config, opts fetchOptions, stdout, stderr io.Writer, log logrus.FieldLogger) error {
	// Reject the year before any request goes out
	if _, err := calendar.YearRange(opts.year); err != nil {
		return err
	}

	log = log.WithFields(logrus.Fields{"user": opts.user, "year": opts.year})

	identity, err := client.LookupUser(ctx, opts.user)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	var userID *string
	if identity != nil {
		userID = &identity.ID
	} else {
		log.Debug("no user identity returned")
	}

	records, err := client.FetchContributions(ctx, opts.user, opts.year)
	if err != nil {
		return fmt.Errorf("failed to fetch contributions: %w", err)
	}
	log.WithField("records", len(records)).Info("fetched contribution calendar")

	summaryOut := stdout
	if cfg.Output.Format == config.FormatNDJSON || cfg.Output.Path != "" {
		// NDJSON on stdout leaves the summary to stderr
		if cfg.Output.Path == "" {
			summaryOut = stderr
		}
		if err := writeRecords(records, cfg.Output.Path, stdout, log); err != nil {
			return err
		}
	}

	return output.Summary(summaryOut, userID, len(records))
}

// writeRecords streams records as NDJSON to path, or to stdout when path is empty
func writeRecords(records []calendar.Contribution, path string, stdout io.Writer, log logrus.FieldLogger) error {
	var writer output.RecordWriter
	if path == "" {
		writer = output.NewWriter(stdout)
	} else {
		fileWriter, err := output.NewFileWriter(path)
		if err != nil {
			return err
		}
		writer = fileWriter
	}
	defer writer.Close()

	if err := writer.WriteAll(records); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	log.WithFields(logrus.Fields{"written": writer.Count(), "path": path}).Debug("wrote contribution records")
	return nil
}

// newLogger builds the stderr logger; verbose forces debug level
func newLogger(level string, verbose bool, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if verbose {
		lvl = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	return log, nil
}
