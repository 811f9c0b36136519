package review_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/code-quality-ai/internal/domain/review"
)

func TestCodeSubmission_Validate(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		sub := review.CodeSubmission{Code: "def add(a,b): return a+b"}
		require.NoError(t, sub.Validate())
	})

	t.Run("empty code", func(t *testing.T) {
		sub := review.CodeSubmission{Code: ""}
		assert.ErrorIs(t, sub.Validate(), review.ErrCodeRequired)
	})

	t.Run("whitespace only counts as empty", func(t *testing.T) {
		sub := review.CodeSubmission{Code: "   \n\t  "}
		assert.ErrorIs(t, sub.Validate(), review.ErrCodeRequired)
	})

	t.Run("too short after trimming", func(t *testing.T) {
		sub := review.CodeSubmission{Code: "  x=1  \n"}
		assert.ErrorIs(t, sub.Validate(), review.ErrCodeTooShort)
	})

	t.Run("length counts characters not bytes", func(t *testing.T) {
		// 7 characters but well over 10 bytes
		sub := review.CodeSubmission{Code: "変数=値+数値"}
		assert.ErrorIs(t, sub.Validate(), review.ErrCodeTooShort)
	})

	t.Run("ten multibyte characters pass", func(t *testing.T) {
		sub := review.CodeSubmission{Code: "変数は値と数値の合計だ"}
		require.NoError(t, sub.Validate())
	})
}

func TestCodeSubmission_Lang(t *testing.T) {
	assert.Equal(t, "python", review.CodeSubmission{}.Lang())
	assert.Equal(t, "go", review.CodeSubmission{Language: "go"}.Lang())
}

func TestUpstreamError_Message(t *testing.T) {
	err := &review.UpstreamError{StatusCode: 502, Body: "bad gateway"}
	assert.Equal(t, "upstream returned status 502: bad gateway", err.Error())
}

func TestIsValidation(t *testing.T) {
	assert.True(t, review.IsValidation(review.ErrCodeRequired))
	assert.True(t, review.IsValidation(review.ErrCodeTooShort))
	assert.False(t, review.IsValidation(review.ErrNotConfigured))
	assert.False(t, review.IsValidation(&review.UpstreamError{StatusCode: 500}))
}
