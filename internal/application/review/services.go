package review

import (
	"context"
	"fmt"
	"time"

	"github.com/bryanwahyu/code-quality-ai/internal/application"
	domain "github.com/bryanwahyu/code-quality-ai/internal/domain/review"
	"github.com/bryanwahyu/code-quality-ai/internal/infra/ai/prompt"
)

// Service implements use-cases untuk code review.
// Safe for concurrent use; all fields are read-only after construction.
type Service struct {
	Completions domain.Completer // nil when no API key is configured
	Scores      domain.ScoreExtractor
	Clock       application.Clock
}

func NewService(completions domain.Completer, clock application.Clock) *Service {
	return &Service{
		Completions: completions,
		Scores:      domain.RegexScore{},
		Clock:       clock,
	}
}

// Enabled reports whether the upstream provider is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.Completions != nil
}

// Analyze runs the three agent prompts in order (analyzer, tester,
// documenter) against the upstream provider and aggregates the replies.
// The calls carry no data dependency on each other; any failure aborts
// the remainder and discards partial results.
func (s *Service) Analyze(ctx context.Context, sub domain.CodeSubmission) (*domain.Analysis, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	if !s.Enabled() {
		return nil, domain.ErrNotConfigured
	}

	lang := sub.Lang()
	user := prompt.UserPrompt(sub.Code, sub.Description)

	texts := make(map[domain.Role]string, 3)
	for _, role := range domain.Roles() {
		out, err := s.Completions.Complete(ctx, prompt.SystemPrompt(role, lang), user)
		if err != nil {
			return nil, fmt.Errorf("%s agent: %w", role, err)
		}
		texts[role] = out
	}

	score, issues := s.Scores.Extract(texts[domain.RoleAnalyzer])

	return &domain.Analysis{
		Analysis:      texts[domain.RoleAnalyzer],
		Tests:         texts[domain.RoleTester],
		Documentation: texts[domain.RoleDocumenter],
		QualityScore:  score,
		IssuesFound:   issues,
		Timestamp:     s.Clock.Now().UTC().Format(time.RFC3339),
	}, nil
}
