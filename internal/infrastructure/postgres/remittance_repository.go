package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

var _ repository.RemittanceRepository = (*RemittanceRepo)(nil)

// RemittanceRepo implementación del puerto RemittanceRepository sobre PostgreSQL.
type RemittanceRepo struct {
	q Querier
}

// NewRemittanceRepository construye el adaptador de persistencia para remesas.
func NewRemittanceRepository(q Querier) *RemittanceRepo {
	return &RemittanceRepo{q: q}
}

const remittanceSelect = `
	SELECT r.id, r.company_id, c.name, r.remittance_type, r.period, r.month, r.year,
	       r.amount, r.status, r.proof_path, r.notes,
	       r.created_by, r.updated_by, r.created_at, r.updated_at
	FROM remittances r
	JOIN companies c ON c.id = r.company_id`

// Create persiste una nueva remesa.
func (r *RemittanceRepo) Create(rem *entity.Remittance) error {
	query := `
		INSERT INTO remittances (id, company_id, remittance_type, period, month, year, amount, status, proof_path, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		rem.ID, rem.CompanyID, rem.RemittanceType, rem.Period, rem.Month, rem.Year,
		rem.Amount, rem.Status, nullIfEmpty(rem.ProofPath), nullIfEmpty(rem.Notes),
		rem.CreatedBy, rem.CreatedAt, rem.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert remittance: %w", err)
	}
	return nil
}

// GetByID obtiene una remesa por ID, con el nombre de su empresa.
func (r *RemittanceRepo) GetByID(id string) (*entity.Remittance, error) {
	query := remittanceSelect + ` WHERE r.id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	rem, err := scanRemittance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get remittance: %w", err)
	}
	return rem, nil
}

// Update actualiza una remesa existente.
func (r *RemittanceRepo) Update(rem *entity.Remittance) error {
	query := `
		UPDATE remittances
		SET company_id = $2, remittance_type = $3, period = $4, month = $5, year = $6,
		    amount = $7, status = $8, proof_path = $9, notes = $10,
		    updated_by = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rem.ID, rem.CompanyID, rem.RemittanceType, rem.Period, rem.Month, rem.Year,
		rem.Amount, rem.Status, nullIfEmpty(rem.ProofPath), nullIfEmpty(rem.Notes),
		nullIfEmpty(rem.UpdatedBy), rem.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update remittance: %w", err)
	}
	return nil
}

// Delete elimina una remesa por ID.
func (r *RemittanceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM remittances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete remittance: %w", err)
	}
	return nil
}

// List devuelve remesas filtradas, ordenadas por período más reciente primero.
func (r *RemittanceRepo) List(filter repository.RemittanceFilter) ([]*entity.Remittance, error) {
	query := remittanceSelect
	var conds []string
	var args []any
	if filter.CompanyID != "" {
		args = append(args, filter.CompanyID)
		conds = append(conds, fmt.Sprintf("r.company_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("r.status = $%d", len(args)))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		conds = append(conds, fmt.Sprintf("r.year = $%d", len(args)))
	}
	if filter.Month != 0 {
		args = append(args, filter.Month)
		conds = append(conds, fmt.Sprintf("r.month = $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += ` ORDER BY r.year DESC, r.month DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list remittances: %w", err)
	}
	defer rows.Close()

	var list []*entity.Remittance
	for rows.Next() {
		rem, err := scanRemittance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan remittance: %w", err)
		}
		list = append(list, rem)
	}
	return list, rows.Err()
}

func scanRemittance(row pgx.Row) (*entity.Remittance, error) {
	var rem entity.Remittance
	var proofPath, notes, updatedBy *string
	err := row.Scan(
		&rem.ID, &rem.CompanyID, &rem.CompanyName, &rem.RemittanceType, &rem.Period,
		&rem.Month, &rem.Year, &rem.Amount, &rem.Status, &proofPath, &notes,
		&rem.CreatedBy, &updatedBy, &rem.CreatedAt, &rem.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rem.ProofPath = derefStr(proofPath)
	rem.Notes = derefStr(notes)
	rem.UpdatedBy = derefStr(updatedBy)
	return &rem, nil
}
