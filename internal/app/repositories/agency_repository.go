package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

// AgencyRepository handles database operations for agencies
type AgencyRepository struct {
	db *pgxpool.Pool
}

// NewAgencyRepository creates a new agency repository
func NewAgencyRepository(db *pgxpool.Pool) *AgencyRepository {
	return &AgencyRepository{db: db}
}

// CreateTx creates a new agency inside an existing transaction
func (r *AgencyRepository) CreateTx(ctx context.Context, tx pgx.Tx, agency *models.Agency) error {
	query := `
		INSERT INTO agencies (name, country, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query, agency.Name, agency.Country, agency.Status).
		Scan(&agency.ID, &agency.CreatedAt, &agency.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating agency: %w", err)
	}

	return nil
}

// GetByID retrieves an agency by ID
func (r *AgencyRepository) GetByID(ctx context.Context, id int64) (*models.Agency, error) {
	query := `
		SELECT id, name, country, status, created_at, updated_at
		FROM agencies
		WHERE id = $1
	`

	var agency models.Agency
	err := r.db.QueryRow(ctx, query, id).Scan(
		&agency.ID,
		&agency.Name,
		&agency.Country,
		&agency.Status,
		&agency.CreatedAt,
		&agency.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving agency: %w", err)
	}

	return &agency, nil
}
