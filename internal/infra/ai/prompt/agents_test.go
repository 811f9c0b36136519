package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bryanwahyu/code-quality-ai/internal/domain/review"
	"github.com/bryanwahyu/code-quality-ai/internal/infra/ai/prompt"
)

func TestSystemPrompt_EmbedsLanguage(t *testing.T) {
	for _, role := range review.Roles() {
		assert.Contains(t, prompt.SystemPrompt(role, "go"), "go", "role %s", role)
	}

	assert.Contains(t, prompt.SystemPrompt(review.RoleAnalyzer, "python"), "Quality score (0-100)")
	assert.Contains(t, prompt.SystemPrompt(review.RoleTester, "python"), "unit tests")
	assert.Contains(t, prompt.SystemPrompt(review.RoleDocumenter, "python"), "documentation")
}

func TestUserPrompt(t *testing.T) {
	assert.Equal(t, "code here", prompt.UserPrompt("code here", ""))

	withCtx := prompt.UserPrompt("code here", "a helper")
	assert.Contains(t, withCtx, "Context: a helper")
	assert.Contains(t, withCtx, "code here")
}
