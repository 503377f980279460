package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
	"github.com/pleeno/pleeno/internal/pkg/helpers"
	"github.com/pleeno/pleeno/internal/pkg/validation"
)

// StudentService handles student management
type StudentService struct {
	studentRepo *repositories.StudentRepository
	branchRepo  *repositories.BranchRepository
	activity    *activityRecorder
	logger      zerolog.Logger
}

// NewStudentService creates a new student service
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	branchRepo *repositories.BranchRepository,
	activityStore ActivityStore,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		branchRepo:  branchRepo,
		activity:    newActivityRecorder(activityStore, logger),
		logger:      logger,
	}
}

// Create creates a new student in PROSPECT status
func (s *StudentService) Create(ctx context.Context, agencyID, actorID int64, req dto.CreateStudentRequest) (*models.Student, error) {
	passport := strings.ToUpper(strings.TrimSpace(req.PassportNumber))
	if !validation.IsValidPassportNumber(passport) {
		return nil, apperrors.NewBadRequestError("passport number must be 6 to 12 letters and digits")
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date of birth")
	}

	if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(ctx, agencyID, *req.BranchID); err != nil {
			return nil, err
		}
	}

	student := &models.Student{
		AgencyID:       agencyID,
		BranchID:       req.BranchID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PassportNumber: passport,
		Nationality:    req.Nationality,
		DateOfBirth:    dob,
		Status:         models.StudentProspect,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.activity.record(ctx, agencyID, actorID, "STUDENT", student.ID, models.ActionCreate, student.FullName())
	return student, nil
}

// GetByID retrieves a student
func (s *StudentService) GetByID(ctx context.Context, agencyID, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, agencyID, id)
}

// List retrieves students with filtering and pagination
func (s *StudentService) List(ctx context.Context, agencyID int64, filter dto.StudentFilter, page, size int) ([]*models.Student, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, total, err := s.studentRepo.List(ctx, agencyID, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return students, helpers.NewPaginationInfo(total, page, limit), nil
}

// Update updates a student
func (s *StudentService) Update(ctx context.Context, agencyID, actorID, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, err
	}

	passport := strings.ToUpper(strings.TrimSpace(req.PassportNumber))
	if !validation.IsValidPassportNumber(passport) {
		return nil, apperrors.NewBadRequestError("passport number must be 6 to 12 letters and digits")
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date of birth")
	}

	if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(ctx, agencyID, *req.BranchID); err != nil {
			return nil, err
		}
	}

	student.BranchID = req.BranchID
	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	student.PassportNumber = passport
	student.Nationality = req.Nationality
	student.DateOfBirth = dob
	student.Status = models.StudentStatus(req.Status)

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	s.activity.record(ctx, agencyID, actorID, "STUDENT", student.ID, models.ActionUpdate, student.FullName())
	return student, nil
}

// Delete deletes a student
func (s *StudentService) Delete(ctx context.Context, agencyID, actorID, id int64) error {
	student, err := s.studentRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return err
	}

	if err := s.studentRepo.Delete(ctx, agencyID, id); err != nil {
		return err
	}

	s.activity.record(ctx, agencyID, actorID, "STUDENT", id, models.ActionDelete, student.FullName())
	return nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := helpers.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
