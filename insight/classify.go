package insight

import "strings"

// ============================================================================
// FAILURE CLASSIFICATION — Service errors → user-facing categories
// ============================================================================
// The core never raises these failures itself; they come back from the
// remote service. Classification is pure pattern matching on the failure
// message text, checked in fixed order: configuration, quota/billing,
// rate limiting, then generic.
// ============================================================================

// FailureCategory is the user-facing bucket for a service failure.
type FailureCategory string

const (
	FailureConfiguration FailureCategory = "configuration"
	FailureQuota         FailureCategory = "quota"
	FailureRateLimit     FailureCategory = "rate_limit"
	FailureGeneric       FailureCategory = "generic"
)

// Failure pairs a category with a descriptive fallback string suitable
// for display instead of the missing reply.
type Failure struct {
	Category FailureCategory
	Message  string
}

// ClassifyFailure maps a service error onto a Failure. A nil error
// classifies as generic; callers should not reach here on success.
func ClassifyFailure(err error) Failure {
	if err == nil {
		return Failure{
			Category: FailureGeneric,
			Message:  "The AI service returned no usable reply. Please try again.",
		}
	}
	msg := strings.ToLower(err.Error())

	switch {
	case containsAny(msg, "api key", "api_key", "unauthorized", "401", "403", "permission", "invalid key", "credential"):
		return Failure{
			Category: FailureConfiguration,
			Message:  "The AI service rejected the configured API key. Check the api_key setting or the GEMINI_API_KEY environment variable.",
		}
	case containsAny(msg, "quota", "billing", "payment", "plan"):
		return Failure{
			Category: FailureQuota,
			Message:  "The AI service quota is exhausted. Check the billing and quota settings for the configured project.",
		}
	case containsAny(msg, "rate limit", "rate-limit", "too many requests", "429", "resource exhausted"):
		return Failure{
			Category: FailureRateLimit,
			Message:  "The AI service is rate limiting requests. Wait a moment and try again.",
		}
	default:
		return Failure{
			Category: FailureGeneric,
			Message:  "The AI service is unavailable right now. Validation, queries, and rule suggestions keep working without it.",
		}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
