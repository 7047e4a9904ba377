package model

// Lifecycle status enums. Each status field has a closed transition table;
// repositories and use cases must check CanTransition before persisting a
// new value so a record can never skip a gate.

type GenerationStatus string

const (
	GenerationStatusQueued    GenerationStatus = "queued"
	GenerationStatusSubmitted GenerationStatus = "submitted"
	GenerationStatusCompleted GenerationStatus = "completed"
	GenerationStatusFailed    GenerationStatus = "failed"
)

var generationTransitions = map[GenerationStatus][]GenerationStatus{
	GenerationStatusQueued:    {GenerationStatusSubmitted, GenerationStatusFailed},
	GenerationStatusSubmitted: {GenerationStatusCompleted, GenerationStatusFailed},
}

func (s GenerationStatus) CanTransition(to GenerationStatus) bool {
	for _, next := range generationTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type MediaReviewStatus string

const (
	MediaReviewStatusNone          MediaReviewStatus = "none"
	MediaReviewStatusPending       MediaReviewStatus = "pending"
	MediaReviewStatusApproved      MediaReviewStatus = "approved"
	MediaReviewStatusRejected      MediaReviewStatus = "rejected"
	MediaReviewStatusNeedsRevision MediaReviewStatus = "needs_revision"
)

var mediaReviewTransitions = map[MediaReviewStatus][]MediaReviewStatus{
	MediaReviewStatusNone:    {MediaReviewStatusPending},
	MediaReviewStatusPending: {MediaReviewStatusApproved, MediaReviewStatusRejected, MediaReviewStatusNeedsRevision},
	// A human edit request overrides an automated approval.
	MediaReviewStatusApproved: {MediaReviewStatusNeedsRevision},
	// A needs_revision record may be queued for a fresh review pass.
	MediaReviewStatusNeedsRevision: {MediaReviewStatusPending},
}

func (s MediaReviewStatus) CanTransition(to MediaReviewStatus) bool {
	for _, next := range mediaReviewTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type ApprovalStatus string

const (
	ApprovalStatusNone          ApprovalStatus = "none"
	ApprovalStatusPending       ApprovalStatus = "pending"
	ApprovalStatusApproved      ApprovalStatus = "approved"
	ApprovalStatusRejected      ApprovalStatus = "rejected"
	ApprovalStatusEditRequested ApprovalStatus = "edit_requested"
)

var approvalTransitions = map[ApprovalStatus][]ApprovalStatus{
	ApprovalStatusNone:    {ApprovalStatusPending},
	ApprovalStatusPending: {ApprovalStatusApproved, ApprovalStatusRejected, ApprovalStatusEditRequested},
}

func (s ApprovalStatus) CanTransition(to ApprovalStatus) bool {
	for _, next := range approvalTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type PublishStatus string

const (
	PublishStatusPending   PublishStatus = "pending"
	PublishStatusPublished PublishStatus = "published"
)

func (s PublishStatus) CanTransition(to PublishStatus) bool {
	return s == PublishStatusPending && to == PublishStatusPublished
}
