package contractrunner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backstage/internal/domain"
	"backstage/internal/ports"
)

var (
	start = time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	end   = start.AddDate(1, 0, 0)
)

func activeLicense(id string) domain.License {
	signer := "user-1"
	return domain.License{
		ID:          id,
		WorkID:      "3f6e2b1a-7c4d-4e8f-9a0b-1c2d3e4f5a61",
		Title:       "Ad campaign",
		Licensee:    "Agency X",
		ProjectName: "Summer ad",
		Territory:   "brazil",
		Duration:    "1_year",
		MediaType:   "commercial",
		Exclusive:   true,
		TotalFee:    decimal.NewFromInt(4000),
		Status:      domain.LicenseActive,
		StartDate:   &start,
		EndDate:     &end,
		SignedBy:    &signer,
	}
}

// licenseReader serves GetLicense from a map; the other methods are unused.
type licenseReader struct {
	ports.LicenseRepository
	licenses map[string]domain.License
}

func (r licenseReader) GetLicense(_ context.Context, id string) (domain.License, error) {
	l, ok := r.licenses[id]
	if !ok {
		return domain.License{}, &domain.NotFoundError{Entity: "license", ID: id}
	}
	return l, nil
}

type contractSink struct {
	mu      sync.Mutex
	created []domain.Contract
	err     error
}

func (s *contractSink) CreateContract(_ context.Context, c domain.Contract) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.created = append(s.created, c)
	return "contract-" + *c.LicenseID, nil
}

func (s *contractSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.created)
}

type jobQueue struct {
	mu        sync.Mutex
	queued    []ports.FollowUpJob
	completed []string
	failed    map[string]string
	// markCtx holds ctx.Err() of every Mark* call.
	markCtx []error
}

func (q *jobQueue) EnqueueFollowUp(_ context.Context, licenseID string) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	job := ports.FollowUpJob{ID: "job-" + licenseID, LicenseID: licenseID}
	q.queued = append(q.queued, job)
	return job.ID, nil
}

func (q *jobQueue) ClaimNext(_ context.Context) (ports.FollowUpJob, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.queued) == 0 {
		return ports.FollowUpJob{}, false, nil
	}
	job := q.queued[0]
	q.queued = q.queued[1:]
	return job, true, nil
}

func (q *jobQueue) MarkCompleted(ctx context.Context, jobID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.markCtx = append(q.markCtx, ctx.Err())
	q.completed = append(q.completed, jobID)
	return nil
}

func (q *jobQueue) MarkFailed(ctx context.Context, jobID string, reason string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.markCtx = append(q.markCtx, ctx.Err())
	if q.failed == nil {
		q.failed = map[string]string{}
	}
	q.failed[jobID] = reason
	return nil
}

func (q *jobQueue) settled() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.completed) + len(q.failed)
}

func TestContractFor(t *testing.T) {
	c := ContractFor(activeLicense("l1"))

	assert.Equal(t, "Sync license: Ad campaign", c.Title)
	assert.Equal(t, "sync_license", c.ContractType)
	assert.Equal(t, domain.ContractStatusActive, c.Status)
	require.NotNil(t, c.LicenseID)
	assert.Equal(t, "l1", *c.LicenseID)
	require.NotNil(t, c.Value)
	assert.Equal(t, "4000.00", c.Value.StringFixed(2))
	assert.Equal(t, &start, c.StartDate)
	assert.Equal(t, &end, c.EndDate)
	assert.Contains(t, c.Terms, "Territory: brazil")
	assert.Contains(t, c.Terms, "exclusive")
	assert.Contains(t, c.Terms, "Project: Summer ad.")
	assert.Equal(t, "user-1", *c.CreatedBy)
}

func TestContractProcessor(t *testing.T) {
	draft := activeLicense("l2")
	draft.Status = domain.LicenseDraft
	sink := &contractSink{}
	p := ContractProcessor{
		Licenses:  licenseReader{licenses: map[string]domain.License{"l1": activeLicense("l1"), "l2": draft}},
		Contracts: sink,
	}
	ctx := context.Background()

	require.NoError(t, p.Process(ctx, "l1"))
	assert.Equal(t, 1, sink.count())

	assert.ErrorContains(t, p.Process(ctx, "l2"), "not active")

	var nf *domain.NotFoundError
	assert.ErrorAs(t, p.Process(ctx, "missing"), &nf)

	sink.err = errors.New("insert failed")
	var se *domain.StorageError
	assert.ErrorAs(t, p.Process(ctx, "l1"), &se)
}

func TestInlineAndQueue(t *testing.T) {
	sink := &contractSink{}
	p := ContractProcessor{
		Licenses:  licenseReader{licenses: map[string]domain.License{"l1": activeLicense("l1")}},
		Contracts: sink,
	}
	ctx := context.Background()

	require.NoError(t, Inline{Processor: p}.LicenseActivated(ctx, "l1"))
	assert.Equal(t, 1, sink.count())

	q := &jobQueue{}
	require.NoError(t, Queue{Jobs: q}.LicenseActivated(ctx, "l1"))
	assert.Equal(t, []ports.FollowUpJob{{ID: "job-l1", LicenseID: "l1"}}, q.queued)
}

func TestRunDrainsQueue(t *testing.T) {
	sink := &contractSink{}
	p := ContractProcessor{
		Licenses:  licenseReader{licenses: map[string]domain.License{"l1": activeLicense("l1"), "l2": activeLicense("l2")}},
		Contracts: sink,
	}
	q := &jobQueue{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, id := range []string{"l1", "l2", "gone"} {
		_, err := q.EnqueueFollowUp(ctx, id)
		require.NoError(t, err)
	}

	clock := clockwork.NewFakeClockAt(start)
	Run(ctx, q, p, 2, time.Second, clock)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Second)

	assert.Eventually(t, func() bool { return q.settled() == 3 }, 2*time.Second, 10*time.Millisecond)
	q.mu.Lock()
	defer q.mu.Unlock()
	assert.ElementsMatch(t, []string{"job-l1", "job-l2"}, q.completed)
	assert.Contains(t, q.failed["job-gone"], "not found")
	assert.Equal(t, 2, sink.count())
}

// stopDuringProcess cancels the run while a job is in flight.
type stopDuringProcess struct{ stop context.CancelFunc }

func (p stopDuringProcess) Process(ctx context.Context, _ string) error {
	p.stop()
	<-ctx.Done()
	return ctx.Err()
}

func TestRunRecordsOutcomeAfterShutdown(t *testing.T) {
	q := &jobQueue{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err := q.EnqueueFollowUp(ctx, "l1")
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(start)
	Run(ctx, q, stopDuringProcess{stop: cancel}, 1, time.Second, clock)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Second)

	assert.Eventually(t, func() bool { return q.settled() == 1 }, 2*time.Second, 10*time.Millisecond)
	q.mu.Lock()
	defer q.mu.Unlock()
	assert.Contains(t, q.failed["job-l1"], context.Canceled.Error())
	assert.Equal(t, []error{nil}, q.markCtx, "marks run on a live context")
}

func TestRunDisabled(t *testing.T) {
	q := &jobQueue{}
	_, _ = q.EnqueueFollowUp(context.Background(), "l1")
	Run(context.Background(), q, ContractProcessor{}, 0, time.Second, clockwork.NewFakeClock())
	assert.Len(t, q.queued, 1)
}
