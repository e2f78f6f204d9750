package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"backstage/internal/domain"
)

// CatalogReader

func (db *DB) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, genre, instagram_url, spotify_url, youtube_url, created_at
		FROM artists ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Artist, error) {
		var a domain.Artist
		err := row.Scan(&a.ID, &a.Name, &a.Genre, &a.InstagramURL, &a.SpotifyURL, &a.YoutubeURL, &a.CreatedAt)
		return a, err
	})
}

const contractColumns = `id, artist_id, license_id, title, contract_type, status, value, royalty_rate,
	start_date, end_date, terms, created_by, created_at`

func (db *DB) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+contractColumns+` FROM contracts ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanContract)
}

func scanContract(row pgx.CollectableRow) (domain.Contract, error) {
	var (
		c     domain.Contract
		value decimal.NullDecimal
	)
	err := row.Scan(&c.ID, &c.ArtistID, &c.LicenseID, &c.Title, &c.ContractType, &c.Status, &value, &c.RoyaltyRate,
		&c.StartDate, &c.EndDate, &c.Terms, &c.CreatedBy, &c.CreatedAt)
	c.Value = decimalPtr(value)
	return c, err
}

func (db *DB) ListReleases(ctx context.Context) ([]domain.Release, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, artist_id, title, release_type, status, release_date, created_at
		FROM releases ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Release, error) {
		var r domain.Release
		err := row.Scan(&r.ID, &r.ArtistID, &r.Title, &r.ReleaseType, &r.Status, &r.ReleaseDate, &r.CreatedAt)
		return r, err
	})
}

func (db *DB) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, description, category, transaction_type, amount, status, date
		FROM financial_transactions ORDER BY date, id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var t domain.Transaction
		err := row.Scan(&t.ID, &t.Description, &t.Category, &t.TransactionType, &t.Amount, &t.Status, &t.Date)
		return t, err
	})
}

func (db *DB) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, artist_id, name, status, start_date, end_date
		FROM projects ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Project, error) {
		var p domain.Project
		err := row.Scan(&p.ID, &p.ArtistID, &p.Name, &p.Status, &p.StartDate, &p.EndDate)
		return p, err
	})
}

const workColumns = `id, title, status, isrc, iswc, participants`

func scanWork(row pgx.Row) (domain.Work, error) {
	var w domain.Work
	err := row.Scan(&w.ID, &w.Title, &w.Status, &w.ISRC, &w.ISWC, &w.Participants)
	return w, err
}

func (db *DB) ListWorks(ctx context.Context) ([]domain.Work, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+workColumns+` FROM music_registry ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Work, error) {
		return scanWork(row)
	})
}

func (db *DB) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, artist_id, title, status, target_date
		FROM artist_goals ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Goal, error) {
		var g domain.Goal
		err := row.Scan(&g.ID, &g.ArtistID, &g.Title, &g.Status, &g.TargetDate)
		return g, err
	})
}

func (db *DB) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, title, start_date, venue_name, location
		FROM agenda_events ORDER BY start_date, id
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var e domain.Event
		err := row.Scan(&e.ID, &e.Title, &e.StartDate, &e.VenueName, &e.Location)
		return e, err
	})
}

// WorkRepository
func (db *DB) GetWork(ctx context.Context, id string) (domain.Work, error) {
	w, err := scanWork(db.Pool.QueryRow(ctx, `SELECT `+workColumns+` FROM music_registry WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Work{}, &domain.NotFoundError{Entity: "work", ID: id}
	}
	return w, err
}

// ContractRepository
func (db *DB) CreateContract(ctx context.Context, c domain.Contract) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO contracts (artist_id, license_id, title, contract_type, status, value, royalty_rate,
			start_date, end_date, terms, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (license_id) WHERE license_id IS NOT NULL
		DO UPDATE SET title = EXCLUDED.title
		RETURNING id
	`, c.ArtistID, c.LicenseID, c.Title, c.ContractType, c.Status, c.Value, c.RoyaltyRate,
		c.StartDate, c.EndDate, c.Terms, c.CreatedBy).Scan(&id)
	return id, err
}

// RoleRepository
func (db *DB) RolesFor(ctx context.Context, userID string) ([]string, error) {
	rows, err := db.Pool.Query(ctx, `SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
