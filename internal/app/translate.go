package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/oversett/oversett/internal/translation"
)

func runTranslate(args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	flags := addCommonFlags(fs)
	timeout := fs.Duration("timeout", 2*time.Minute, "Command timeout")
	returnAll := fs.Bool("all", false, "Print every candidate translation (providers that support it)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "translate requires exactly one text argument")
		return 2
	}

	text := fs.Arg(0)
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "text must not be empty")
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

	if *returnAll {
		candidates, ok := tr.(translation.CandidateTranslator)
		if !ok {
			fmt.Fprintf(os.Stderr, "provider %s does not return candidate translations\n", tr.Name())
			return 2
		}
		all, err := candidates.TranslateAll(ctx, text)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		for _, candidate := range all {
			fmt.Println(candidate)
		}
		return 0
	}

	translated, err := tr.Translate(ctx, text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(translated)
	return 0
}
