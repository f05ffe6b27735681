package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/oversett/oversett/internal/langdetect"
)

func runDetect(args []string) int {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "detect requires exactly one text argument")
		return 2
	}

	text := fs.Arg(0)
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(os.Stderr, "text must not be empty")
		return 2
	}

	code, confidence := langdetect.DetectWithConfidence(text)
	if code == "" {
		fmt.Fprintln(os.Stderr, "language could not be detected (text too short or ambiguous)")
		return 1
	}

	fmt.Printf("%s\t%.2f\n", code, confidence)
	return 0
}
