package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

var _ repository.LicenseRepository = (*LicenseRepo)(nil)

// LicenseRepo implementación del puerto LicenseRepository sobre PostgreSQL.
// Las lecturas hacen JOIN con companies para exponer CompanyName.
type LicenseRepo struct {
	q Querier
}

// NewLicenseRepository construye el adaptador de persistencia para licencias.
func NewLicenseRepository(q Querier) *LicenseRepo {
	return &LicenseRepo{q: q}
}

const licenseSelect = `
	SELECT l.id, l.company_id, c.name, l.license_type, l.issuing_body,
	       l.issue_date, l.expiration_date, l.status, l.document_path, l.notes,
	       l.created_by, l.updated_by, l.created_at, l.updated_at
	FROM licenses l
	JOIN companies c ON c.id = l.company_id`

// Create persiste una nueva licencia.
func (r *LicenseRepo) Create(license *entity.License) error {
	query := `
		INSERT INTO licenses (id, company_id, license_type, issuing_body, issue_date, expiration_date, status, document_path, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		license.ID, license.CompanyID, license.LicenseType, license.IssuingBody,
		license.IssueDate, license.ExpirationDate, license.Status,
		nullIfEmpty(license.DocumentPath), nullIfEmpty(license.Notes),
		license.CreatedBy, license.CreatedAt, license.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert license: %w", err)
	}
	return nil
}

// GetByID obtiene una licencia por ID, con el nombre de su empresa.
func (r *LicenseRepo) GetByID(id string) (*entity.License, error) {
	query := licenseSelect + ` WHERE l.id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	lic, err := scanLicense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license: %w", err)
	}
	return lic, nil
}

// Update actualiza una licencia existente, incluido el estado recalculado.
func (r *LicenseRepo) Update(license *entity.License) error {
	query := `
		UPDATE licenses
		SET company_id = $2, license_type = $3, issuing_body = $4, issue_date = $5,
		    expiration_date = $6, status = $7, document_path = $8, notes = $9,
		    updated_by = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		license.ID, license.CompanyID, license.LicenseType, license.IssuingBody,
		license.IssueDate, license.ExpirationDate, license.Status,
		nullIfEmpty(license.DocumentPath), nullIfEmpty(license.Notes),
		nullIfEmpty(license.UpdatedBy), license.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update license: %w", err)
	}
	return nil
}

// Delete elimina una licencia por ID.
func (r *LicenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM licenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete license: %w", err)
	}
	return nil
}

// List devuelve licencias filtradas, ordenadas por vencimiento ascendente.
// El filtro se construye incrementalmente: cada campo presente agrega un AND.
func (r *LicenseRepo) List(filter repository.LicenseFilter) ([]*entity.License, error) {
	query := licenseSelect
	var conds []string
	var args []any
	if filter.CompanyID != "" {
		args = append(args, filter.CompanyID)
		conds = append(conds, fmt.Sprintf("l.company_id = $%d", len(args)))
	}
	if filter.LicenseType != "" {
		args = append(args, filter.LicenseType)
		conds = append(conds, fmt.Sprintf("l.license_type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("l.status = $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += ` ORDER BY l.expiration_date ASC`
	return r.queryMany(query, args...)
}

// ListExpiringOn devuelve licencias cuyo vencimiento cae exactamente en la fecha dada.
func (r *LicenseRepo) ListExpiringOn(date time.Time) ([]*entity.License, error) {
	query := licenseSelect + ` WHERE l.expiration_date = $1 ORDER BY c.name ASC`
	return r.queryMany(query, date)
}

func (r *LicenseRepo) queryMany(query string, args ...any) ([]*entity.License, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	defer rows.Close()

	var list []*entity.License
	for rows.Next() {
		lic, err := scanLicense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan license: %w", err)
		}
		list = append(list, lic)
	}
	return list, rows.Err()
}

// scanLicense escanea una fila del SELECT estándar (pgx.Row o pgx.Rows).
func scanLicense(row pgx.Row) (*entity.License, error) {
	var l entity.License
	var documentPath, notes, updatedBy *string
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.CompanyName, &l.LicenseType, &l.IssuingBody,
		&l.IssueDate, &l.ExpirationDate, &l.Status, &documentPath, &notes,
		&l.CreatedBy, &updatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.DocumentPath = derefStr(documentPath)
	l.Notes = derefStr(notes)
	l.UpdatedBy = derefStr(updatedBy)
	return &l, nil
}
