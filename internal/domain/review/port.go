package review

import "context"

// Completer port (interface untuk provider chat-completion)
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userContent string) (string, error)
}

// ScoreExtractor port. The default implementation scans free-form analyzer
// text with a regex; keeping it behind an interface lets a structured
// upstream response replace the heuristic later.
type ScoreExtractor interface {
	Extract(analysis string) (score float64, issues int)
}
