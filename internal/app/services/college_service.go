package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

// CollegeService handles college management
type CollegeService struct {
	collegeRepo *repositories.CollegeRepository
	activity    *activityRecorder
	logger      zerolog.Logger
}

// NewCollegeService creates a new college service
func NewCollegeService(collegeRepo *repositories.CollegeRepository, activityStore ActivityStore, logger zerolog.Logger) *CollegeService {
	return &CollegeService{
		collegeRepo: collegeRepo,
		activity:    newActivityRecorder(activityStore, logger),
		logger:      logger,
	}
}

// Create creates a new college
func (s *CollegeService) Create(ctx context.Context, agencyID, actorID int64, req dto.CreateCollegeRequest) (*models.College, error) {
	college := &models.College{
		AgencyID:                 agencyID,
		Name:                     req.Name,
		Country:                  req.Country,
		City:                     req.City,
		ContactEmail:             req.ContactEmail,
		DefaultCommissionRateBps: req.DefaultCommissionRateBps,
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		return nil, err
	}

	s.activity.record(ctx, agencyID, actorID, "COLLEGE", college.ID, models.ActionCreate, college.Name)
	return college, nil
}

// GetByID retrieves a college
func (s *CollegeService) GetByID(ctx context.Context, agencyID, id int64) (*models.College, error) {
	return s.collegeRepo.GetByID(ctx, agencyID, id)
}

// GetAll retrieves all colleges of the agency
func (s *CollegeService) GetAll(ctx context.Context, agencyID int64) ([]*models.College, error) {
	return s.collegeRepo.GetAll(ctx, agencyID)
}

// Update updates a college
func (s *CollegeService) Update(ctx context.Context, agencyID, actorID, id int64, req dto.UpdateCollegeRequest) (*models.College, error) {
	college, err := s.collegeRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, err
	}

	college.Name = req.Name
	college.Country = req.Country
	college.City = req.City
	college.ContactEmail = req.ContactEmail
	college.DefaultCommissionRateBps = req.DefaultCommissionRateBps

	if err := s.collegeRepo.Update(ctx, college); err != nil {
		return nil, err
	}

	s.activity.record(ctx, agencyID, actorID, "COLLEGE", college.ID, models.ActionUpdate, college.Name)
	return college, nil
}

// Delete deletes a college. Colleges with enrollments cannot be deleted.
func (s *CollegeService) Delete(ctx context.Context, agencyID, actorID, id int64) error {
	college, err := s.collegeRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return err
	}

	hasEnrollments, err := s.collegeRepo.HasEnrollments(ctx, agencyID, id)
	if err != nil {
		return err
	}
	if hasEnrollments {
		return apperrors.ErrCollegeHasRelations
	}

	if err := s.collegeRepo.Delete(ctx, agencyID, id); err != nil {
		return err
	}

	s.activity.record(ctx, agencyID, actorID, "COLLEGE", id, models.ActionDelete, college.Name)
	return nil
}
