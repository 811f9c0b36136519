package review

import (
	"strings"
	"unicode/utf8"
)

// Role enum
type Role string

const (
	RoleAnalyzer   Role = "analyzer"
	RoleTester     Role = "tester"
	RoleDocumenter Role = "documenter"
)

// Roles returns the three agent roles in pipeline order.
func Roles() []Role {
	return []Role{RoleAnalyzer, RoleTester, RoleDocumenter}
}

// DefaultLanguage is assumed when a submission carries no language tag.
const DefaultLanguage = "python"

// MinCodeLength is the minimum trimmed submission length, in characters,
// accepted by /analyze.
const MinCodeLength = 10

// CodeSubmission is the inbound payload. Lives only for one request.
type CodeSubmission struct {
	Code        string `json:"code"`
	Language    string `json:"language"`
	Description string `json:"description,omitempty"`
}

// Validate enforces the submission contract: code present and at least
// MinCodeLength characters after trimming.
func (c CodeSubmission) Validate() error {
	code := strings.TrimSpace(c.Code)
	if code == "" {
		return ErrCodeRequired
	}
	if utf8.RuneCountInString(code) < MinCodeLength {
		return ErrCodeTooShort
	}
	return nil
}

// Lang returns the submission language, defaulting when the tag is empty.
func (c CodeSubmission) Lang() string {
	if strings.TrimSpace(c.Language) == "" {
		return DefaultLanguage
	}
	return c.Language
}

// Analysis is the aggregated result of one review pipeline run.
// Immutable after construction; returned to the caller and discarded.
type Analysis struct {
	Analysis      string  `json:"analysis"`
	Tests         string  `json:"tests"`
	Documentation string  `json:"documentation"`
	QualityScore  float64 `json:"quality_score"`
	IssuesFound   int     `json:"issues_found"`
	Timestamp     string  `json:"timestamp"`
}
