package ports

import (
	"context"

	"backstage/internal/domain"
)

// Analyzer produces the insight dashboard from the current records.
type Analyzer interface {
	Analyze(ctx context.Context) (domain.Analysis, error)
}

// Licensing drives the sync license lifecycle.
type Licensing interface {
	Quote(p domain.FeeParams) domain.FeeBreakdown
	CreateProposal(ctx context.Context, s domain.Session, p domain.NewProposal) (string, error)
	GetLicense(ctx context.Context, id string) (domain.License, error)
	ListLicenses(ctx context.Context, f LicenseFilter) ([]domain.License, error)
	UpdateStatus(ctx context.Context, s domain.Session, id string, status domain.LicenseStatus, notes *string) error
	Activate(ctx context.Context, s domain.Session, id string) error
	DeactivateExpired(ctx context.Context) (int, error)
}
