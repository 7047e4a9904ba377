package content

import (
	"errors"
	"fmt"

	"github.com/patimanas321/ForgeLens/internal/model"
)

var (
	// ErrNotFound is returned by read operations when the referenced
	// content ID does not exist. It is an expected outcome for status
	// checks, not a failure.
	ErrNotFound = errors.New("content: not found")

	// ErrNoCarouselAssets is returned when a carousel record reaches the
	// publisher without any asset URLs. Retrying cannot fix the record, so
	// queue handlers treat it as permanent.
	ErrNoCarouselAssets = errors.New("content: carousel requires asset URLs")

	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)

// InvalidStateTransitionError reports a guarded write attempted against a
// record that is not in the required precondition state. It always carries
// the actual current status so double-submission bugs surface upstream.
type InvalidStateTransitionError struct {
	Field   string
	Current string
	Wanted  string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s is %q, must be %q", e.Field, e.Current, e.Wanted)
}

func newApprovalConflict(current model.ApprovalStatus) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		Field:   "approval_status",
		Current: string(current),
		Wanted:  string(model.ApprovalStatusPending),
	}
}
