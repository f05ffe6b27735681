package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
)

func runLanguages(args []string) int {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	flags := addCommonFlags(fs)
	asMap := fs.Bool("codes", false, "Print the name→code mapping instead of names only")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
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

	if *asMap {
		if mapped, ok := tr.(interface{ Languages() map[string]string }); ok {
			languages := mapped.Languages()
			names := make([]string, 0, len(languages))
			for name := range languages {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s\t%s\n", name, languages[name])
			}
			return 0
		}
		fmt.Fprintf(os.Stderr, "provider %s accepts bare codes only\n", tr.Name())
	}

	for _, name := range tr.SupportedLanguages() {
		fmt.Println(name)
	}
	return 0
}
