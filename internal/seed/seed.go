package seed

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/db"
	"github.com/pleeno/pleeno/internal/pkg/auth"
)

// CreateDemoData seeds a demo agency with an admin user and sample reference
// data on a fresh database. Does nothing once any agency exists.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int64
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM agencies`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	lgr.Info().Msg("Empty database detected, seeding demo data...")

	agencyRepo := repositories.NewAgencyRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)
	branchRepo := repositories.NewBranchRepository(dbPool)
	collegeRepo := repositories.NewCollegeRepository(dbPool)

	passwordHash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	agency := &models.Agency{
		Name:    "Demo Agency",
		Country: "Australia",
		Status:  models.AgencyActive,
	}
	admin := &models.User{
		Email:        "admin@pleeno.local",
		PasswordHash: passwordHash,
		FirstName:    "Demo",
		LastName:     "Admin",
		Role:         models.RoleAdmin,
	}

	err = db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		if err := agencyRepo.CreateTx(ctx, tx, agency); err != nil {
			return err
		}
		admin.AgencyID = agency.ID
		return userRepo.CreateTx(ctx, tx, admin)
	})
	if err != nil {
		return err
	}

	branch := &models.Branch{
		AgencyID: agency.ID,
		Name:     "Head Office",
		City:     "Sydney",
		Country:  "Australia",
	}
	if err := branchRepo.Create(ctx, branch); err != nil {
		return err
	}

	colleges := []*models.College{
		{
			AgencyID:                 agency.ID,
			Name:                     "Harbour Institute of Technology",
			Country:                  "Australia",
			City:                     "Sydney",
			ContactEmail:             "admissions@harbourtech.example",
			DefaultCommissionRateBps: 1500,
		},
		{
			AgencyID:                 agency.ID,
			Name:                     "Southbank Business College",
			Country:                  "Australia",
			City:                     "Melbourne",
			ContactEmail:             "intake@southbank.example",
			DefaultCommissionRateBps: 1250,
		},
	}
	for _, college := range colleges {
		if err := collegeRepo.Create(ctx, college); err != nil {
			return err
		}
	}

	lgr.Info().
		Int64("agencyId", agency.ID).
		Str("adminEmail", admin.Email).
		Msg("Demo data seeded")
	return nil
}
