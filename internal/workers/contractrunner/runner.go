package contractrunner

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"backstage/internal/domain"
	"backstage/internal/ports"
)

// Processor performs the follow-up work for an activated license.
type Processor interface {
	Process(ctx context.Context, licenseID string) error
}

// ContractProcessor creates the contract record that summarizes a license.
type ContractProcessor struct {
	Licenses  ports.LicenseRepository
	Contracts ports.ContractRepository
}

func (p ContractProcessor) Process(ctx context.Context, licenseID string) error {
	lic, err := p.Licenses.GetLicense(ctx, licenseID)
	if err != nil {
		return fmt.Errorf("load license %s: %w", licenseID, err)
	}
	if lic.Status != domain.LicenseActive {
		return fmt.Errorf("license %s is %s, not active", licenseID, lic.Status)
	}
	id, err := p.Contracts.CreateContract(ctx, ContractFor(lic))
	if err != nil {
		return domain.Storage("create contract", err)
	}
	zerolog.Ctx(ctx).Info().Str("license_id", licenseID).Str("contract_id", id).Msg("license contract created")
	return nil
}

// ContractFor summarizes the terms of an active license as a contract.
func ContractFor(l domain.License) domain.Contract {
	exclusivity := "non-exclusive"
	if l.Exclusive {
		exclusivity = "exclusive"
	}
	value := l.TotalFee
	licenseID := l.ID
	terms := fmt.Sprintf("Sync license of work %s to %s. Territory: %s. Duration: %s. Media: %s. %s.",
		l.WorkID, l.Licensee, l.Territory, l.Duration, l.MediaType, exclusivity)
	if l.ProjectName != "" {
		terms += " Project: " + l.ProjectName + "."
	}
	return domain.Contract{
		LicenseID:    &licenseID,
		Title:        "Sync license: " + l.Title,
		ContractType: "sync_license",
		Status:       domain.ContractStatusActive,
		Value:        &value,
		StartDate:    l.StartDate,
		EndDate:      l.EndDate,
		Terms:        terms,
		CreatedBy:    l.SignedBy,
	}
}

// Queue dispatches follow-ups as jobs for Run to pick up.
type Queue struct{ Jobs ports.JobRepository }

func (q Queue) LicenseActivated(ctx context.Context, licenseID string) error {
	jobID, err := q.Jobs.EnqueueFollowUp(ctx, licenseID)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Str("license_id", licenseID).Str("job_id", jobID).Msg("license follow-up queued")
	return nil
}

// Inline runs follow-ups in the caller's goroutine; used when no workers run.
type Inline struct{ Processor Processor }

func (i Inline) LicenseActivated(ctx context.Context, licenseID string) error {
	return i.Processor.Process(ctx, licenseID)
}

// Run starts worker goroutines that claim follow-up jobs and process them.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, concurrency int, pollInterval time.Duration, clock clockwork.Clock) {
	if concurrency < 1 {
		return
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	logger := zerolog.Ctx(ctx)
	jobsCh := make(chan ports.FollowUpJob, concurrency)

	// dispatcher loop
	go func() {
		ticker := clock.NewTicker(pollInterval)
		defer ticker.Stop()
		defer close(jobsCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						if ctx.Err() == nil {
							logger.Error().Err(err).Msg("follow-up claim failed")
						}
						break
					}
					if !found {
						break
					}
					select {
					case jobsCh <- job:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	// workers
	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			for job := range jobsCh {
				jl := logger.With().Int("worker", idx).Str("job_id", job.ID).Str("license_id", job.LicenseID).Logger()
				jctx := jl.WithContext(ctx)
				err := processor.Process(jctx, job.LicenseID)
				// The outcome is recorded even when shutdown cancelled ctx
				// mid-job, so the row does not stay running.
				mctx := context.WithoutCancel(jctx)
				if err != nil {
					if mErr := repo.MarkFailed(mctx, job.ID, err.Error()); mErr != nil {
						jl.Error().Err(mErr).Msg("mark follow-up failed")
					}
					jl.Error().Err(err).Msg("follow-up failed")
					continue
				}
				if err := repo.MarkCompleted(mctx, job.ID); err != nil {
					jl.Error().Err(err).Msg("mark follow-up completed")
				}
			}
		}(i)
	}
}
