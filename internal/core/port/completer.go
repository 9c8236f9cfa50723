package port

import "context"

// Completer turns a text prompt into a text completion. The returned text
// may wrap the requested JSON in arbitrary prose.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
