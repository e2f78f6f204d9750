package licensing

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"backstage/internal/domain"
	"backstage/internal/ports"
)

// Service runs the sync license lifecycle on top of the record store.
type Service struct {
	licenses  ports.LicenseRepository
	works     ports.WorkRepository
	followUps ports.FollowUps
	fees      *Calculator
	clock     clockwork.Clock
}

func New(licenses ports.LicenseRepository, works ports.WorkRepository, followUps ports.FollowUps, fees *Calculator, clock clockwork.Clock) *Service {
	if fees == nil {
		fees = NewCalculator(DefaultTables())
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{licenses: licenses, works: works, followUps: followUps, fees: fees, clock: clock}
}

func (s *Service) Quote(p domain.FeeParams) domain.FeeBreakdown {
	return s.fees.Calculate(p)
}

// CreateProposal validates and stores a new draft proposal priced by the
// calculator, returning its id.
func (s *Service) CreateProposal(ctx context.Context, sess domain.Session, p domain.NewProposal) (string, error) {
	if !sess.CanManageLicenses() {
		return "", domain.ErrForbidden
	}
	if err := validateProposal(p); err != nil {
		return "", err
	}
	if _, err := s.works.GetWork(ctx, p.WorkID); err != nil {
		return "", domain.Storage("get work", err)
	}
	if p.Exclusive {
		if err := s.checkExclusive(ctx, p.ExclusivityKey(), ""); err != nil {
			return "", err
		}
	}

	quote := s.fees.Calculate(p.FeeParams())
	now := s.clock.Now()
	lic := domain.License{
		ID:          uuid.NewString(),
		WorkID:      p.WorkID,
		Title:       strings.TrimSpace(p.Title),
		Licensee:    strings.TrimSpace(p.Licensee),
		ProjectName: p.ProjectName,
		Territory:   normalizeKey(p.Territory),
		Duration:    normalizeKey(p.Duration),
		MediaType:   normalizeKey(p.MediaType),
		Exclusive:   p.Exclusive,
		BaseFee:     quote.BaseFee,
		TotalFee:    quote.TotalFee,
		Status:      domain.LicenseDraft,
		Notes:       p.Notes,
		CreatedBy:   sess.ActorID(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.licenses.CreateLicense(ctx, lic); err != nil {
		return "", domain.Storage("create license", err)
	}
	zerolog.Ctx(ctx).Info().
		Str("license_id", lic.ID).
		Str("work_id", lic.WorkID).
		Str("total_fee", lic.TotalFee.StringFixed(2)).
		Msg("license proposal created")
	return lic.ID, nil
}

func validateProposal(p domain.NewProposal) error {
	var problems *multierror.Error
	required := []struct{ field, value string }{
		{"title", p.Title},
		{"work_id", p.WorkID},
		{"licensee", p.Licensee},
		{"territory", p.Territory},
		{"duration", p.Duration},
		{"media_type", p.MediaType},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			problems = multierror.Append(problems, errors.New(r.field+" is required"))
		}
	}
	if id := strings.TrimSpace(p.WorkID); id != "" {
		if parsed, err := uuid.Parse(id); err != nil || parsed == uuid.Nil {
			problems = multierror.Append(problems, errors.New("work_id must be a uuid"))
		}
	}
	if p.BaseFee.IsNegative() {
		problems = multierror.Append(problems, errors.New("base_fee must not be negative"))
	}
	if err := problems.ErrorOrNil(); err != nil {
		return &domain.ValidationError{Problems: err}
	}
	return nil
}

func (s *Service) GetLicense(ctx context.Context, id string) (domain.License, error) {
	l, err := s.licenses.GetLicense(ctx, id)
	if err != nil {
		return domain.License{}, domain.Storage("get license", err)
	}
	return l, nil
}

func (s *Service) ListLicenses(ctx context.Context, f ports.LicenseFilter) ([]domain.License, error) {
	out, err := s.licenses.ListLicenses(ctx, f)
	if err != nil {
		return nil, domain.Storage("list licenses", err)
	}
	return out, nil
}

// UpdateStatus moves a proposal through its negotiation. Accepting a
// proposal activates it; if activation loses the exclusivity race the
// previous status is restored.
func (s *Service) UpdateStatus(ctx context.Context, sess domain.Session, id string, status domain.LicenseStatus, notes *string) error {
	if !sess.CanManageLicenses() {
		return domain.ErrForbidden
	}
	if _, ok := domain.ParseLicenseStatus(string(status)); !ok {
		return domain.Invalid("unknown status %q", status)
	}
	lic, err := s.licenses.GetLicense(ctx, id)
	if err != nil {
		return domain.Storage("get license", err)
	}
	if lic.Status == status {
		return nil
	}
	if !lic.Status.CanTransition(status) {
		return domain.Invalid("license cannot move from %s to %s", lic.Status, status)
	}
	if status == domain.LicenseAccepted && lic.Exclusive {
		if err := s.checkExclusive(ctx, lic.ExclusivityKey(), lic.ID); err != nil {
			return err
		}
	}
	if err := s.licenses.UpdateLicenseStatus(ctx, id, status, notes); err != nil {
		return domain.Storage("update license status", err)
	}
	zerolog.Ctx(ctx).Info().
		Str("license_id", id).
		Str("from", string(lic.Status)).
		Str("to", string(status)).
		Msg("license status changed")

	if status != domain.LicenseAccepted {
		return nil
	}
	err = s.Activate(ctx, sess, id)
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		if rerr := s.licenses.UpdateLicenseStatus(ctx, id, lic.Status, nil); rerr != nil {
			zerolog.Ctx(ctx).Error().Err(rerr).Str("license_id", id).Msg("could not restore status after failed activation")
		} else {
			zerolog.Ctx(ctx).Info().
				Str("license_id", id).
				Str("to", string(lic.Status)).
				Msg("license status restored after activation conflict")
		}
	}
	return err
}

// Activate puts a license into force. The linked contract is created as a
// follow-up; its failure is logged and does not undo the activation.
func (s *Service) Activate(ctx context.Context, sess domain.Session, id string) error {
	if !sess.CanManageLicenses() {
		return domain.ErrForbidden
	}
	logger := zerolog.Ctx(ctx)

	lic, err := s.licenses.GetLicense(ctx, id)
	if err != nil {
		return domain.Storage("get license", err)
	}
	if !lic.Status.Activatable() {
		return domain.Invalid("license in status %s cannot be activated", lic.Status)
	}
	// Re-checked here because another proposal may have gone live since this
	// one was accepted.
	if lic.Exclusive {
		if err := s.checkExclusive(ctx, lic.ExclusivityKey(), lic.ID); err != nil {
			return err
		}
	}

	now := s.clock.Now()
	act := ports.Activation{
		StartDate:  now,
		EndDate:    EndDate(now, lic.Duration),
		SignedDate: now,
		SignedBy:   sess.ActorID(),
	}
	if err := s.licenses.ActivateLicense(ctx, id, act); err != nil {
		return domain.Storage("activate license", err)
	}
	logger.Info().
		Str("license_id", id).
		Time("end_date", act.EndDate).
		Msg("license activated")

	if s.followUps != nil {
		if err := s.followUps.LicenseActivated(ctx, id); err != nil {
			logger.Error().Err(err).Str("license_id", id).Msg("license follow-up failed; activation kept")
		}
	}
	return nil
}

// DeactivateExpired expires every active license past its end date. Running
// it again without new expiries changes nothing.
func (s *Service) DeactivateExpired(ctx context.Context) (int, error) {
	n, err := s.licenses.ExpireLicenses(ctx, s.clock.Now())
	if err != nil {
		return 0, domain.Storage("expire licenses", err)
	}
	if n > 0 {
		zerolog.Ctx(ctx).Info().Int("deactivated", n).Msg("expired licenses deactivated")
	}
	return n, nil
}

func (s *Service) checkExclusive(ctx context.Context, key domain.ExclusivityKey, excludeID string) error {
	key.Territory = normalizeKey(key.Territory)
	key.MediaType = normalizeKey(key.MediaType)
	existing, found, err := s.licenses.FindActiveExclusive(ctx, key, excludeID)
	if err != nil {
		return domain.Storage("check exclusivity", err)
	}
	if found {
		return &domain.ConflictError{Key: key, ExistingID: existing}
	}
	return nil
}
