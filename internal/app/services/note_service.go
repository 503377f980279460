package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

// NoteService handles free-text notes on students
type NoteService struct {
	noteRepo    *repositories.NoteRepository
	studentRepo *repositories.StudentRepository
	activity    *activityRecorder
	logger      zerolog.Logger
}

// NewNoteService creates a new note service
func NewNoteService(
	noteRepo *repositories.NoteRepository,
	studentRepo *repositories.StudentRepository,
	activityStore ActivityStore,
	logger zerolog.Logger,
) *NoteService {
	return &NoteService{
		noteRepo:    noteRepo,
		studentRepo: studentRepo,
		activity:    newActivityRecorder(activityStore, logger),
		logger:      logger,
	}
}

// Create adds a note to a student
func (s *NoteService) Create(ctx context.Context, agencyID, authorID, studentID int64, req dto.CreateNoteRequest) (*models.Note, error) {
	if _, err := s.studentRepo.GetByID(ctx, agencyID, studentID); err != nil {
		return nil, err
	}

	note := &models.Note{
		AgencyID:  agencyID,
		StudentID: studentID,
		AuthorID:  authorID,
		Body:      req.Body,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	s.activity.record(ctx, agencyID, authorID, "NOTE", note.ID, models.ActionCreate, "")
	return s.noteRepo.GetByID(ctx, agencyID, note.ID)
}

// GetByStudentID retrieves a student's notes
func (s *NoteService) GetByStudentID(ctx context.Context, agencyID, studentID int64) ([]*models.Note, error) {
	if _, err := s.studentRepo.GetByID(ctx, agencyID, studentID); err != nil {
		return nil, err
	}
	return s.noteRepo.GetByStudentID(ctx, agencyID, studentID)
}

// Delete deletes a note. Only the author or an admin may delete.
func (s *NoteService) Delete(ctx context.Context, agencyID, actorID int64, actorRole models.UserRole, id int64) error {
	note, err := s.noteRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return err
	}

	if actorRole != models.RoleAdmin && note.AuthorID != actorID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.noteRepo.Delete(ctx, agencyID, id); err != nil {
		return err
	}

	s.activity.record(ctx, agencyID, actorID, "NOTE", id, models.ActionDelete, "")
	return nil
}
