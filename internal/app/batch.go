package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/oversett/oversett/internal/jobfile"
	"github.com/oversett/oversett/internal/translation"
)

func runBatch(args []string) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	flags := addCommonFlags(fs)
	timeout := fs.Duration("timeout", 10*time.Minute, "Command timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "batch requires one job file argument")
		return 2
	}

	job, err := jobfile.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, logger, err := bootstrap(flags.env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Job file fields beat config defaults; explicit flags beat both.
	if *flags.provider == "" && job.Provider != "" {
		*flags.provider = job.Provider
	}
	if *flags.source == "" && job.Source != "" {
		*flags.source = job.Source
	}
	if *flags.target == "" {
		*flags.target = job.Target
	}

	tr, err := newTranslator(cfg, logger, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	translations, err := translation.TranslateBatch(ctx, tr, job.Texts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	for _, translated := range translations {
		fmt.Println(translated)
	}
	return 0
}
