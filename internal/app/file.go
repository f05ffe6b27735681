package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/oversett/oversett/internal/translation"
)

func runFile(args []string) int {
	fs := flag.NewFlagSet("file", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	flags := addCommonFlags(fs)
	timeout := fs.Duration("timeout", 5*time.Minute, "Command timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "file requires one path argument")
		return 2
	}

	cfg, logger, err := bootstrap(flags.env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	tr, err := newTranslator(cfg, logger, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	translated, err := translation.TranslateFile(ctx, tr, fs.Arg(0))
	if err != nil {
		if errors.Is(err, translation.ErrFileNotFound) {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Println(translated)
	return 0
}
