package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LicenseStatus string

const (
	LicenseDraft       LicenseStatus = "draft"
	LicenseSent        LicenseStatus = "sent"
	LicenseNegotiation LicenseStatus = "negotiation"
	LicenseAccepted    LicenseStatus = "accepted"
	LicenseRejected    LicenseStatus = "rejected"
	LicenseExpired     LicenseStatus = "expired"
	LicenseActive      LicenseStatus = "active"
)

var transitions = map[LicenseStatus][]LicenseStatus{
	LicenseDraft:       {LicenseSent, LicenseRejected},
	LicenseSent:        {LicenseNegotiation, LicenseAccepted, LicenseRejected, LicenseExpired},
	LicenseNegotiation: {LicenseSent, LicenseAccepted, LicenseRejected, LicenseExpired},
}

// ParseLicenseStatus reports whether s names a known status.
func ParseLicenseStatus(s string) (LicenseStatus, bool) {
	switch st := LicenseStatus(s); st {
	case LicenseDraft, LicenseSent, LicenseNegotiation, LicenseAccepted,
		LicenseRejected, LicenseExpired, LicenseActive:
		return st, true
	}
	return "", false
}

// CanTransition reports whether a proposal in status s may be moved to next
// by a user. Activation and expiry are driven by the service, not by this
// table.
func (s LicenseStatus) CanTransition(next LicenseStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Activatable reports whether a license in status s may still be activated.
func (s LicenseStatus) Activatable() bool {
	switch s {
	case LicenseSent, LicenseNegotiation, LicenseAccepted:
		return true
	}
	return false
}

// License is a sync license proposal; once activated it is the license itself.
type License struct {
	ID          string
	WorkID      string
	Title       string
	Licensee    string
	ProjectName string
	Territory   string
	Duration    string
	MediaType   string
	Exclusive   bool
	BaseFee     decimal.Decimal
	TotalFee    decimal.Decimal
	Status      LicenseStatus
	Notes       string
	StartDate   *time.Time
	EndDate     *time.Time
	SignedDate  *time.Time
	SignedBy    *string
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExclusivityKey identifies the rights an exclusive license locks.
type ExclusivityKey struct {
	WorkID    string
	Territory string
	MediaType string
}

func (l License) ExclusivityKey() ExclusivityKey {
	return ExclusivityKey{WorkID: l.WorkID, Territory: l.Territory, MediaType: l.MediaType}
}
