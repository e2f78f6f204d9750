package ports

import (
	"context"
	"time"

	"backstage/internal/domain"
)

// CatalogReader lists the collections the insight scanner looks at.
type CatalogReader interface {
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	ListContracts(ctx context.Context) ([]domain.Contract, error)
	ListReleases(ctx context.Context) ([]domain.Release, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListWorks(ctx context.Context) ([]domain.Work, error)
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

// WorkRepository fetches registry works by id.
type WorkRepository interface {
	GetWork(ctx context.Context, id string) (domain.Work, error)
}

// LicenseFilter narrows ListLicenses; empty fields match everything.
type LicenseFilter struct {
	Status domain.LicenseStatus
	WorkID string
	Limit  int
}

// Activation is what an accepted license is stamped with when it goes live.
type Activation struct {
	StartDate  time.Time
	EndDate    time.Time
	SignedDate time.Time
	SignedBy   *string
}

// LicenseRepository stores sync licenses.
type LicenseRepository interface {
	CreateLicense(ctx context.Context, l domain.License) error
	GetLicense(ctx context.Context, id string) (domain.License, error)
	ListLicenses(ctx context.Context, f LicenseFilter) ([]domain.License, error)
	UpdateLicenseStatus(ctx context.Context, id string, status domain.LicenseStatus, notes *string) error
	// ActivateLicense must return a *domain.ConflictError when the store
	// rejects a second active exclusive license for the same rights.
	ActivateLicense(ctx context.Context, id string, a Activation) error
	// FindActiveExclusive returns the id of an active exclusive license on
	// key other than excludeID; found is false when there is none.
	FindActiveExclusive(ctx context.Context, key domain.ExclusivityKey, excludeID string) (id string, found bool, err error)
	// ExpireLicenses moves every active license whose end date is before
	// now to expired and returns how many rows changed.
	ExpireLicenses(ctx context.Context, now time.Time) (int, error)
}

// ContractRepository creates contract records.
type ContractRepository interface {
	CreateContract(ctx context.Context, c domain.Contract) (string, error)
}

// RoleRepository resolves the role names a user holds.
type RoleRepository interface {
	RolesFor(ctx context.Context, userID string) ([]string, error)
}
