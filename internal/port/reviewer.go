package port

import "context"

// LLM verdicts as emitted by the structured review prompt.
const (
	VerdictApproved      = "APPROVED"
	VerdictRejected      = "REJECTED"
	VerdictNeedsRevision = "NEEDS_REVISION"
)

// LLMReview is the machine-checkable outcome of a nuanced model review.
type LLMReview struct {
	Verdict string `json:"verdict"`
	Summary string `json:"summary"`
}

// Reviewer performs nuanced LLM-based review of text or images against
// brand/persona/sensitivity criteria. A failed call or unparseable response
// must be surfaced as an error; callers resolve errors fail-closed.
type Reviewer interface {
	ReviewText(ctx context.Context, text, accountContext string) (LLMReview, error)
	ReviewImage(ctx context.Context, imageURL, accountContext string) (LLMReview, error)
}
