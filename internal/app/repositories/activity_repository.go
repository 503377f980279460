package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pleeno/pleeno/internal/app/models"
)

// ActivityRepository handles the append-only audit log
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create appends an audit entry
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	query := `
		INSERT INTO activity_log (agency_id, actor_id, entity_type, entity_id, action, detail)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		activity.AgencyID, activity.ActorID, activity.EntityType,
		activity.EntityID, activity.Action, activity.Detail).
		Scan(&activity.ID, &activity.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating activity entry: %w", err)
	}

	return nil
}

// ListByEntity retrieves audit entries for one entity, newest first
func (r *ActivityRepository) ListByEntity(ctx context.Context, agencyID int64, entityType string, entityID int64) ([]*models.Activity, error) {
	query := `
		SELECT id, agency_id, actor_id, entity_type, entity_id, action, detail, created_at
		FROM activity_log
		WHERE agency_id = $1 AND entity_type = $2 AND entity_id = $3
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, agencyID, entityType, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.Activity
	for rows.Next() {
		var entry models.Activity
		if err := rows.Scan(
			&entry.ID,
			&entry.AgencyID,
			&entry.ActorID,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Action,
			&entry.Detail,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
