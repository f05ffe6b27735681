// Package app implements the oversett CLI commands.
package app

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/oversett/oversett/internal/cli"
	"github.com/oversett/oversett/internal/config"
	"github.com/oversett/oversett/internal/logging"
	"github.com/oversett/oversett/internal/translation"
)

// Run executes the CLI command and returns a process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "help", "--help", "-h":
		printUsage()
		return 0
	case "translate":
		return runTranslate(args[1:])
	case "batch":
		return runBatch(args[1:])
	case "file":
		return runFile(args[1:])
	case "languages":
		return runLanguages(args[1:])
	case "detect":
		return runDetect(args[1:])
	case "serve":
		return runServe(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "oversett CLI")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  oversett <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  translate  Translate one text argument")
	fmt.Fprintln(os.Stderr, "  batch      Translate every text in a JSON job file")
	fmt.Fprintln(os.Stderr, "  file       Translate the contents of a text, docx, pdf, or html file")
	fmt.Fprintln(os.Stderr, "  languages  List the languages a provider supports")
	fmt.Fprintln(os.Stderr, "  detect     Detect the language of a text argument")
	fmt.Fprintln(os.Stderr, "  serve      Start the JSON API server")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Use \"oversett <command> -h\" for command-specific flags.")
}

// commonFlags are the flags shared by every translating command.
type commonFlags struct {
	env      *cli.EnvLoader
	provider *string
	source   *string
	target   *string
}

func addCommonFlags(fs *flag.FlagSet) *commonFlags {
	return &commonFlags{
		env:      cli.AddEnvFlag(fs, ".env", "Path to the .env file"),
		provider: fs.String("provider", "", "Translation provider (google, reverso)"),
		source:   fs.String("source", "", "Source language (name, code, or auto)"),
		target:   fs.String("target", "", "Target language (name or code)"),
	}
}

// bootstrap loads the environment, configuration, and logger every
// command starts from.
func bootstrap(env *cli.EnvLoader) (*config.Config, zerolog.Logger, error) {
	if _, err := env.Load(); err != nil {
		return nil, zerolog.Logger{}, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Logger{}, err
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, zerolog.Logger{}, err
	}

	return cfg, logger, nil
}

// newTranslator builds the adapter a command works with, preferring
// flag values over configured defaults.
func newTranslator(cfg *config.Config, logger zerolog.Logger, flags *commonFlags) (translation.Translator, error) {
	provider := strings.TrimSpace(*flags.provider)
	if provider == "" {
		provider = cfg.Provider
	}
	source := strings.TrimSpace(*flags.source)
	if source == "" {
		source = cfg.Source
	}
	target := strings.TrimSpace(*flags.target)
	if target == "" {
		target = cfg.Target
	}

	registry := translation.NewRegistry(cfg.Provider)
	return registry.New(provider, translation.FactoryOptions{
		Source:   source,
		Target:   target,
		ProxyURL: cfg.ProxyURL,
		Timeout:  cfg.HTTPTimeout,
		BaseURL:  cfg.BaseURLFor(provider),
		Logger:   logger,
	})
}
