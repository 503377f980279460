package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
	"github.com/pleeno/pleeno/internal/pkg/helpers"
)

// EnrollmentService handles student enrollments at colleges
type EnrollmentService struct {
	enrollmentRepo *repositories.EnrollmentRepository
	studentRepo    *repositories.StudentRepository
	collegeRepo    *repositories.CollegeRepository
	activity       *activityRecorder
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(
	enrollmentRepo *repositories.EnrollmentRepository,
	studentRepo *repositories.StudentRepository,
	collegeRepo *repositories.CollegeRepository,
	activityStore ActivityStore,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		collegeRepo:    collegeRepo,
		activity:       newActivityRecorder(activityStore, logger),
		logger:         logger,
	}
}

// Create enrolls a student at a college in PENDING status
func (s *EnrollmentService) Create(ctx context.Context, agencyID, actorID int64, req dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	student, err := s.studentRepo.GetByID(ctx, agencyID, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student.Status == models.StudentWithdrawn {
		return nil, apperrors.NewConflictError("withdrawn students cannot be enrolled")
	}

	college, err := s.collegeRepo.GetByID(ctx, agencyID, req.CollegeID)
	if err != nil {
		return nil, err
	}

	intakeDate, err := helpers.ParseDate(req.IntakeDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid intake date")
	}

	enrollment := &models.Enrollment{
		AgencyID:    agencyID,
		StudentID:   req.StudentID,
		CollegeID:   req.CollegeID,
		ProgramName: req.ProgramName,
		IntakeDate:  intakeDate,
		Status:      models.EnrollmentPending,
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	enrollment.College = college

	s.activity.record(ctx, agencyID, actorID, "ENROLLMENT", enrollment.ID, models.ActionCreate, college.Name+" / "+req.ProgramName)
	return enrollment, nil
}

// GetByID retrieves an enrollment
func (s *EnrollmentService) GetByID(ctx context.Context, agencyID, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, err
	}

	college, err := s.collegeRepo.GetByID(ctx, agencyID, enrollment.CollegeID)
	if err == nil {
		enrollment.College = college
	}

	return enrollment, nil
}

// GetByStudentID retrieves a student's enrollments
func (s *EnrollmentService) GetByStudentID(ctx context.Context, agencyID, studentID int64) ([]*models.Enrollment, error) {
	if _, err := s.studentRepo.GetByID(ctx, agencyID, studentID); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.GetByStudentID(ctx, agencyID, studentID)
}

// Update updates an enrollment
func (s *EnrollmentService) Update(ctx context.Context, agencyID, actorID, id int64, req dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, err
	}

	intakeDate, err := helpers.ParseDate(req.IntakeDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid intake date")
	}

	enrollment.ProgramName = req.ProgramName
	enrollment.IntakeDate = intakeDate
	enrollment.Status = models.EnrollmentStatus(req.Status)

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	s.activity.record(ctx, agencyID, actorID, "ENROLLMENT", enrollment.ID, models.ActionUpdate, req.ProgramName)
	return enrollment, nil
}
