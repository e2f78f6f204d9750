package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Core records read from the store. Optional columns are pointers; a nil
// pointer means the value was never filled in.

type Artist struct {
	ID           string
	Name         string
	Genre        string
	InstagramURL *string
	SpotifyURL   *string
	YoutubeURL   *string
	CreatedAt    time.Time
}

const ContractStatusActive = "active"

type Contract struct {
	ID           string
	ArtistID     *string
	LicenseID    *string
	Title        string
	ContractType string
	Status       string // draft|active|expired|terminated
	Value        *decimal.Decimal
	RoyaltyRate  *float64
	StartDate    *time.Time
	EndDate      *time.Time
	Terms        string
	CreatedBy    *string
	CreatedAt    time.Time
}

const (
	ReleaseStatusPlanning  = "planning"
	ReleaseStatusCancelled = "cancelled"
)

type Release struct {
	ID          string
	ArtistID    *string
	Title       string
	ReleaseType string
	Status      string // planning|production|scheduled|released|cancelled
	ReleaseDate *time.Time
	CreatedAt   time.Time
}

const TransactionStatusPending = "pending"

type Transaction struct {
	ID              string
	Description     string
	Category        string
	TransactionType string // income|expense
	Amount          decimal.Decimal
	Status          string // pending|paid|cancelled
	Date            time.Time
}

const ProjectStatusInProgress = "in_progress"

type Project struct {
	ID        string
	ArtistID  *string
	Name      string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

const WorkStatusRegistered = "registered"

// Work is a composition entry of the music registry.
type Work struct {
	ID           string
	Title        string
	Status       string
	ISRC         *string
	ISWC         *string
	Participants []Participant
}

type Participant struct {
	Name  string  `json:"name"`
	Role  string  `json:"role"`
	Share float64 `json:"share"`
}

type Goal struct {
	ID         string
	ArtistID   string
	Title      string
	Status     string
	TargetDate *time.Time
}

type Event struct {
	ID        string
	Title     string
	StartDate time.Time
	VenueName *string
	Location  *string
}
