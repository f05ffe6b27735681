package translation

import (
	"context"
	"fmt"
)

// TranslateBatch translates texts sequentially through one Translator,
// preserving input order. The batch is all-or-nothing: the first error
// aborts the run and no partial results are returned.
func TranslateBatch(ctx context.Context, tr Translator, texts []string) ([]string, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyBatch
	}

	translated := make([]string, 0, len(texts))
	for i, text := range texts {
		result, err := tr.Translate(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("translate item %d of %d: %w", i+1, len(texts), err)
		}
		translated = append(translated, result)
	}
	return translated, nil
}
