package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/handlekit"
	"github.com/dmitrymomot/handlekit/pkg/config"
	"github.com/dmitrymomot/handlekit/pkg/handle"
	"github.com/dmitrymomot/handlekit/pkg/logger"
	"github.com/dmitrymomot/handlekit/pkg/sanitizer"
	"github.com/dmitrymomot/handlekit/pkg/validator"
)

// Process exit codes. Usage and config problems are distinguished from a run
// that completed but produced nothing.
const (
	exitOK        = 0
	exitError     = 1
	exitNoResults = 2
)

// envConfig supplies flag defaults from HANDLEKIT_* environment variables,
// including ones loaded from an optional .env file.
type envConfig struct {
	Mode        string   `env:"HANDLEKIT_MODE" envDefault:"usernames"`
	Domains     []string `env:"HANDLEKIT_DOMAIN" envSeparator:","`
	Case        string   `env:"HANDLEKIT_CASE" envDefault:"lower"`
	Profile     string   `env:"HANDLEKIT_PROFILE" envDefault:"common"`
	FoldASCII   bool     `env:"HANDLEKIT_ASCII_FOLD" envDefault:"false"`
	MaxPerName  int      `env:"HANDLEKIT_MAX_PER_NAME" envDefault:"0"`
	MaxLength   int      `env:"HANDLEKIT_MAX_LENGTH" envDefault:"0"`
	SuffixRange string   `env:"HANDLEKIT_SUFFIX_RANGE"`
	Format      string   `env:"HANDLEKIT_FORMAT" envDefault:"txt"`
	Output      string   `env:"HANDLEKIT_OUTPUT"`
	Concurrency int      `env:"HANDLEKIT_CONCURRENCY" envDefault:"0"`
	Quiet       bool     `env:"HANDLEKIT_QUIET" envDefault:"false"`
	LogJSON     bool     `env:"HANDLEKIT_LOG_JSON" envDefault:"false"`
}

// options holds the resolved flag values for one invocation.
type options struct {
	name        string
	namesFile   string
	mode        string
	domains     []string
	caseMode    string
	profile     string
	foldASCII   bool
	maxPerName  int
	maxLength   int
	suffixRange string
	format      string
	output      string
	concurrency int
	quiet       bool
	logJSON     bool
}

// NewRootCmd builds the handlekit command. Flag defaults come from the
// environment via pkg/config; explicit flags always win.
func NewRootCmd() *cobra.Command {
	var opts options

	var defaults envConfig
	envErr := config.Load(&defaults)

	cmd := &cobra.Command{
		Use:   "handlekit",
		Short: "Generate plausible usernames and email addresses from full names",
		Long: `handlekit derives plausible account handles (usernames and email
addresses) from people's full names, for IT provisioning checks and
authorized account reconnaissance.

Names come from --name or --names-file. Results are written to a file in
the working directory by default; pass --output - to write to stdout.
Progress and skipped names are logged to stderr.`,
		Example: `  handlekit --name "John Doe"
  handlekit --names-file targets.txt --mode emails --domain example.com
  handlekit --name "Ana María López" --ascii-fold --format csv --output -`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Full name to process")
	cmd.Flags().StringVar(&opts.namesFile, "names-file", "", "File with one full name per line; blank lines and # comments are skipped")
	cmd.Flags().StringVar(&opts.mode, "mode", defaults.Mode, "What to generate: usernames, emails or both")
	cmd.Flags().StringArrayVar(&opts.domains, "domain", defaults.Domains, "Email domain, repeatable")
	cmd.Flags().StringVar(&opts.caseMode, "case", defaults.Case, "Case of generated values: lower, original or upper")
	cmd.Flags().StringVar(&opts.profile, "profile", defaults.Profile, "Pattern profile: minimal, common or wide")
	cmd.Flags().BoolVar(&opts.foldASCII, "ascii-fold", defaults.FoldASCII, "Transliterate accented characters to ASCII")
	cmd.Flags().IntVar(&opts.maxPerName, "max-per-name", defaults.MaxPerName, "Maximum values per name (0 = unlimited)")
	cmd.Flags().IntVar(&opts.maxLength, "max-length", defaults.MaxLength, "Maximum value length (0 = unlimited)")
	cmd.Flags().StringVar(&opts.suffixRange, "suffix-range", defaults.SuffixRange, "Append numeric suffixes, N or N-M")
	cmd.Flags().StringVar(&opts.format, "format", defaults.Format, "Output format: txt or csv")
	cmd.Flags().StringVar(&opts.output, "output", defaults.Output, "Output path, - for stdout (default handlekit_<mode>_<timestamp>.<format>)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", defaults.Concurrency, "Process up to N names in parallel (0 = sequential)")
	cmd.Flags().BoolVar(&opts.quiet, "quiet", defaults.Quiet, "Only log warnings and errors")
	cmd.Flags().BoolVar(&opts.logJSON, "log-json", defaults.LogJSON, "Log in JSON format")

	cmd.MarkFlagsOneRequired("name", "names-file")
	cmd.MarkFlagsMutuallyExclusive("name", "names-file")

	return cmd
}

// Execute runs the root command and maps errors to process exit codes.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		if errors.Is(err, handlekit.ErrNoResults) {
			return exitNoResults
		}
		return exitError
	}
	return exitOK
}

func run(cmd *cobra.Command, opts options) error {
	if err := validateOptions(&opts); err != nil {
		return err
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	names := []string{opts.name}
	if opts.namesFile != "" {
		names, err = ReadNamesFile(opts.namesFile)
		if err != nil {
			return err
		}
	}

	log := newLogger(opts)

	runnerOpts := []handlekit.RunnerOption{
		handlekit.WithMode(handlekit.Mode(opts.mode)),
		handlekit.WithLogger(log),
	}
	if len(opts.domains) > 0 {
		runnerOpts = append(runnerOpts, handlekit.WithDomains(opts.domains...))
	}
	if opts.concurrency > 1 {
		runnerOpts = append(runnerOpts, handlekit.WithConcurrency(opts.concurrency))
	}

	runner, err := handlekit.NewRunner(cfg, runnerOpts...)
	if err != nil {
		return err
	}

	results, err := runner.Run(cmd.Context(), names)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return handlekit.ErrNoResults
	}

	return writeResults(cmd, opts, results, log)
}

// validateOptions normalizes enum flags, cleans the domain list and checks
// all flag values before any work happens.
func validateOptions(opts *options) error {
	opts.mode = sanitizer.TrimToLower(opts.mode)
	opts.caseMode = sanitizer.TrimToLower(opts.caseMode)
	opts.profile = sanitizer.TrimToLower(opts.profile)
	opts.format = sanitizer.TrimToLower(opts.format)
	opts.domains = sanitizer.CleanStringSlice(opts.domains)

	rules := []validator.Rule{
		validator.InListString("mode", opts.mode, []string{
			string(handlekit.ModeUsernames), string(handlekit.ModeEmails), string(handlekit.ModeBoth),
		}),
		validator.InListString("case", opts.caseMode, []string{
			string(handle.CaseLower), string(handle.CaseOriginal), string(handle.CaseUpper),
		}),
		validator.InListString("profile", opts.profile, []string{
			string(handle.ProfileMinimal), string(handle.ProfileCommon), string(handle.ProfileWide),
		}),
		validator.InListString("format", opts.format, []string{
			string(FormatTxt), string(FormatCSV),
		}),
		validator.MinNum("max-per-name", opts.maxPerName, 0),
		validator.MinNum("max-length", opts.maxLength, 0),
		validator.MinNum("concurrency", opts.concurrency, 0),
	}

	if mode := handlekit.Mode(opts.mode); mode.Valid() && mode != handlekit.ModeUsernames {
		rules = append(rules, validator.RequiredSlice("domain", opts.domains))
	}

	return validator.Apply(rules...)
}

// buildConfig translates validated flags into the generation config.
func buildConfig(opts options) (handle.Config, error) {
	cfg := handle.Config{
		Case:       handle.CaseMode(opts.caseMode),
		FoldASCII:  opts.foldASCII,
		Profile:    handle.Profile(opts.profile),
		MaxPerName: opts.maxPerName,
		MaxLength:  opts.maxLength,
	}

	if opts.suffixRange != "" {
		rng, err := handle.ParseSuffixRange(opts.suffixRange)
		if err != nil {
			return handle.Config{}, err
		}
		cfg.Suffixes = &rng
	}

	return cfg, nil
}

// newLogger builds the CLI logger. Logs go to stderr so stdout stays free for
// generated values.
func newLogger(opts options) *slog.Logger {
	logOpts := []logger.Option{
		logger.WithContextValue("run_id", handlekit.RunIDKey),
	}
	if opts.logJSON {
		logOpts = append(logOpts, logger.WithJSONFormatter())
	}
	if opts.quiet {
		logOpts = append(logOpts, logger.WithLevel(slog.LevelWarn))
	}
	return logger.New(logOpts...)
}
