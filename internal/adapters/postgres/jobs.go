package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"backstage/internal/ports"
)

func (db *DB) EnqueueFollowUp(ctx context.Context, licenseID string) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO license_followups (license_id) VALUES ($1) RETURNING id
	`, licenseID).Scan(&id)
	return id, err
}

// FollowUpLease is how long a follow-up may stay running before another
// worker reclaims it. Jobs left running by a crashed process come back
// after this.
const FollowUpLease = 5 * time.Minute

// ClaimNext selects the next queued follow-up, or one whose lease expired,
// using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.FollowUpJob, found bool, err error) {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		SELECT id, license_id FROM license_followups
		WHERE status = 'queued'
		   OR (status = 'running' AND started_at < now() - $1::interval)
		ORDER BY queued_at
		FOR UPDATE SKIP LOCKED
		LIMIT 1
	`, FollowUpLease).Scan(&job.ID, &job.LicenseID)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	if _, err = tx.Exec(ctx, `
		UPDATE license_followups SET status = 'running', started_at = now(), attempts = attempts + 1 WHERE id = $1
	`, job.ID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
		UPDATE license_followups SET status = 'completed', last_error = NULL, finished_at = now() WHERE id = $1
	`, jobID)
	return err
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
		UPDATE license_followups SET status = 'failed', last_error = $2, finished_at = now() WHERE id = $1
	`, jobID, reason)
	return err
}
