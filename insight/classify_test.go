package insight

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFailure(t *testing.T) {
	cases := []struct {
		err  error
		want FailureCategory
	}{
		{errors.New("service returned 400: API key not valid"), FailureConfiguration},
		{errors.New("service returned 401: unauthorized"), FailureConfiguration},
		{errors.New("service error 429: quota exceeded for project"), FailureQuota},
		{errors.New("billing account not configured"), FailureQuota},
		{errors.New("service returned 429: too many requests"), FailureRateLimit},
		{errors.New("RESOURCE EXHAUSTED"), FailureRateLimit},
		{errors.New("request failed: dial tcp: connection refused"), FailureGeneric},
		{errors.New("service returned empty response"), FailureGeneric},
		{nil, FailureGeneric},
	}
	for _, tc := range cases {
		got := ClassifyFailure(tc.err)
		assert.Equal(t, tc.want, got.Category, "error: %v", tc.err)
		assert.NotEmpty(t, got.Message)
	}
}

func TestClassifyFailureQuotaBeforeRateLimit(t *testing.T) {
	// A 429 that mentions quota is a quota problem, not plain rate
	// limiting.
	got := ClassifyFailure(errors.New("429: quota exceeded"))
	assert.Equal(t, FailureQuota, got.Category)
}
