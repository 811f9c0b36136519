package prompt

import (
	"fmt"

	"github.com/bryanwahyu/code-quality-ai/internal/domain/review"
)

// SystemPrompt returns the fixed system instruction for one agent role.
// The language tag is embedded so the model answers in the submission's terms.
func SystemPrompt(role review.Role, language string) string {
	switch role {
	case review.RoleAnalyzer:
		return fmt.Sprintf("You are a code quality analyzer. Analyze the following %s code and provide: 1) Quality score (0-100), 2) Issues found, 3) Best practices recommendations. Format your response clearly.", language)
	case review.RoleTester:
		return fmt.Sprintf("You are a test case generator. Generate comprehensive unit tests for the following %s code. Include edge cases and expected outputs.", language)
	case review.RoleDocumenter:
		return fmt.Sprintf("You are a technical documentation writer. Write clear, comprehensive documentation for the following %s code. Include purpose, parameters, return values, and usage examples.", language)
	default:
		return fmt.Sprintf("You are a senior software engineer. Review the following %s code.", language)
	}
}

// UserPrompt builds the user message from the submission. The code is sent
// verbatim; an optional description is prepended as context.
func UserPrompt(code, description string) string {
	if description == "" {
		return code
	}
	return fmt.Sprintf("Context: %s\n\n%s", description, code)
}
