package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"backstage/internal/domain"
	"backstage/internal/ports"
)

const licenseColumns = `id, work_id, title, licensee, project_name, territory, duration, media_type, exclusive,
	base_fee, total_fee, status, notes, start_date, end_date, signed_date, signed_by, created_by,
	created_at, updated_at`

const defaultListLimit = 200

func scanLicense(row pgx.Row) (domain.License, error) {
	var l domain.License
	err := row.Scan(&l.ID, &l.WorkID, &l.Title, &l.Licensee, &l.ProjectName, &l.Territory, &l.Duration,
		&l.MediaType, &l.Exclusive, &l.BaseFee, &l.TotalFee, &l.Status, &l.Notes, &l.StartDate, &l.EndDate,
		&l.SignedDate, &l.SignedBy, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (db *DB) CreateLicense(ctx context.Context, l domain.License) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO sync_licenses (id, work_id, title, licensee, project_name, territory, duration, media_type,
			exclusive, base_fee, total_fee, status, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, l.ID, l.WorkID, l.Title, l.Licensee, l.ProjectName, l.Territory, l.Duration, l.MediaType,
		l.Exclusive, l.BaseFee, l.TotalFee, string(l.Status), l.Notes, l.CreatedBy, l.CreatedAt, l.UpdatedAt)
	return err
}

func (db *DB) GetLicense(ctx context.Context, id string) (domain.License, error) {
	l, err := scanLicense(db.Pool.QueryRow(ctx, `SELECT `+licenseColumns+` FROM sync_licenses WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.License{}, &domain.NotFoundError{Entity: "license", ID: id}
	}
	return l, err
}

func (db *DB) ListLicenses(ctx context.Context, f ports.LicenseFilter) ([]domain.License, error) {
	var (
		where []string
		args  []any
	)
	if f.Status != "" {
		args = append(args, string(f.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.WorkID != "" {
		args = append(args, f.WorkID)
		where = append(where, fmt.Sprintf("work_id = $%d", len(args)))
	}
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit)

	q := `SELECT ` + licenseColumns + ` FROM sync_licenses`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += fmt.Sprintf(` ORDER BY created_at DESC, id LIMIT $%d`, len(args))

	rows, err := db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.License, error) {
		return scanLicense(row)
	})
}

func (db *DB) UpdateLicenseStatus(ctx context.Context, id string, status domain.LicenseStatus, notes *string) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE sync_licenses
		SET status = $2, notes = COALESCE($3, notes), updated_at = now()
		WHERE id = $1
	`, id, string(status), notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "license", ID: id}
	}
	return nil
}

func (db *DB) ActivateLicense(ctx context.Context, id string, a ports.Activation) error {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE sync_licenses
		SET status = 'active', start_date = $2, end_date = $3, signed_date = $4, signed_by = $5, updated_at = now()
		WHERE id = $1
	`, id, a.StartDate, a.EndDate, a.SignedDate, a.SignedBy)
	if isUniqueViolation(err, activeExclusiveIndex) {
		return db.conflictFor(ctx, id)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Entity: "license", ID: id}
	}
	return nil
}

// conflictFor describes the active exclusive license that blocked id.
func (db *DB) conflictFor(ctx context.Context, id string) error {
	var key domain.ExclusivityKey
	err := db.Pool.QueryRow(ctx, `SELECT work_id, territory, media_type FROM sync_licenses WHERE id = $1`, id).
		Scan(&key.WorkID, &key.Territory, &key.MediaType)
	if err != nil {
		return &domain.ConflictError{}
	}
	existing, _, _ := db.FindActiveExclusive(ctx, key, id)
	return &domain.ConflictError{Key: key, ExistingID: existing}
}

func (db *DB) FindActiveExclusive(ctx context.Context, key domain.ExclusivityKey, excludeID string) (string, bool, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM sync_licenses
		WHERE status = 'active' AND exclusive
		  AND work_id = $1 AND territory = $2 AND media_type = $3
		  AND ($4 = '' OR id::text <> $4)
		LIMIT 1
	`, key.WorkID, key.Territory, key.MediaType, excludeID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

func (db *DB) ExpireLicenses(ctx context.Context, now time.Time) (int, error) {
	tag, err := db.Pool.Exec(ctx, `
		UPDATE sync_licenses SET status = 'expired', updated_at = now()
		WHERE status = 'active' AND end_date IS NOT NULL AND end_date < $1
	`, now)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
