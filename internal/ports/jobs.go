package ports

import "context"

// FollowUpJob asks for the linked contract of an activated license.
type FollowUpJob struct {
	ID        string
	LicenseID string
}

// JobRepository supports claiming and updating follow-up jobs.
type JobRepository interface {
	EnqueueFollowUp(ctx context.Context, licenseID string) (jobID string, err error)
	ClaimNext(ctx context.Context) (job FollowUpJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
}

// FollowUps dispatches the secondary work of an activation. Implementations
// either run it inline or queue it; the caller only logs a returned error.
type FollowUps interface {
	LicenseActivated(ctx context.Context, licenseID string) error
}
