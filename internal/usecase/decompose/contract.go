package decompose

import "context"

// Completer sends a free-text prompt to the language-understanding service
// and returns its free-text answer.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
