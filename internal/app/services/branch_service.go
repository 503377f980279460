package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

// BranchService handles branch management
type BranchService struct {
	branchRepo *repositories.BranchRepository
	activity   *activityRecorder
	logger     zerolog.Logger
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo *repositories.BranchRepository, activityStore ActivityStore, logger zerolog.Logger) *BranchService {
	return &BranchService{
		branchRepo: branchRepo,
		activity:   newActivityRecorder(activityStore, logger),
		logger:     logger,
	}
}

// Create creates a new branch
func (s *BranchService) Create(ctx context.Context, agencyID, actorID int64, req dto.CreateBranchRequest) (*models.Branch, error) {
	branch := &models.Branch{
		AgencyID: agencyID,
		Name:     req.Name,
		City:     req.City,
		Country:  req.Country,
	}

	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	s.activity.record(ctx, agencyID, actorID, "BRANCH", branch.ID, models.ActionCreate, branch.Name)
	return branch, nil
}

// GetByID retrieves a branch
func (s *BranchService) GetByID(ctx context.Context, agencyID, id int64) (*models.Branch, error) {
	return s.branchRepo.GetByID(ctx, agencyID, id)
}

// GetAll retrieves all branches of the agency
func (s *BranchService) GetAll(ctx context.Context, agencyID int64) ([]*models.Branch, error) {
	return s.branchRepo.GetAll(ctx, agencyID)
}

// Update updates a branch
func (s *BranchService) Update(ctx context.Context, agencyID, actorID, id int64, req dto.UpdateBranchRequest) (*models.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, err
	}

	branch.Name = req.Name
	branch.City = req.City
	branch.Country = req.Country

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}

	s.activity.record(ctx, agencyID, actorID, "BRANCH", branch.ID, models.ActionUpdate, branch.Name)
	return branch, nil
}

// Delete deletes a branch. Branches with students attached cannot be deleted.
func (s *BranchService) Delete(ctx context.Context, agencyID, actorID, id int64) error {
	branch, err := s.branchRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return err
	}

	hasStudents, err := s.branchRepo.HasStudents(ctx, agencyID, id)
	if err != nil {
		return err
	}
	if hasStudents {
		return apperrors.ErrBranchHasRelations
	}

	if err := s.branchRepo.Delete(ctx, agencyID, id); err != nil {
		return err
	}

	s.activity.record(ctx, agencyID, actorID, "BRANCH", id, models.ActionDelete, branch.Name)
	return nil
}
