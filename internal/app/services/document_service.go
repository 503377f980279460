package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
	"github.com/pleeno/pleeno/internal/pkg/objectstorage"
)

const (
	// MaxDocumentSize caps uploads at 20 MB
	MaxDocumentSize = 20 << 20

	downloadURLExpiry = 15 * time.Minute
)

// DocumentService handles student document uploads and downloads
type DocumentService struct {
	documentRepo *repositories.DocumentRepository
	studentRepo  *repositories.StudentRepository
	storage      objectstorage.Storage
	activity     *activityRecorder
	logger       zerolog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	documentRepo *repositories.DocumentRepository,
	studentRepo *repositories.StudentRepository,
	storage objectstorage.Storage,
	activityStore ActivityStore,
	logger zerolog.Logger,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		studentRepo:  studentRepo,
		storage:      storage,
		activity:     newActivityRecorder(activityStore, logger),
		logger:       logger,
	}
}

// Upload stores a file for a student and records its metadata. Object keys
// are prefixed with the agency so tenants never share a namespace.
func (s *DocumentService) Upload(ctx context.Context, agencyID, actorID, studentID int64, fileHeader *multipart.FileHeader) (*models.Document, error) {
	if _, err := s.studentRepo.GetByID(ctx, agencyID, studentID); err != nil {
		return nil, err
	}

	if fileHeader.Size <= 0 {
		return nil, apperrors.NewBadRequestError("file is empty")
	}
	if fileHeader.Size > MaxDocumentSize {
		return nil, apperrors.NewBadRequestError("file exceeds the 20 MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	fileName := filepath.Base(fileHeader.Filename)
	objectKey := fmt.Sprintf("agency-%d/student-%d/%s-%s", agencyID, studentID, uuid.New().String(), fileName)

	if err := s.storage.Upload(ctx, objectKey, file, fileHeader.Size, contentType); err != nil {
		return nil, err
	}

	doc := &models.Document{
		AgencyID:    agencyID,
		StudentID:   studentID,
		UploadedBy:  actorID,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   fileHeader.Size,
		ObjectKey:   objectKey,
	}

	if err := s.documentRepo.Create(ctx, doc); err != nil {
		// Orphaned object cleanup, best effort
		if delErr := s.storage.Delete(ctx, objectKey); delErr != nil {
			s.logger.Error().Err(delErr).Str("objectKey", objectKey).Msg("Failed to clean up orphaned object")
		}
		return nil, err
	}

	s.activity.record(ctx, agencyID, actorID, "DOCUMENT", doc.ID, models.ActionCreate, fileName)
	return doc, nil
}

// GetByStudentID retrieves a student's document records
func (s *DocumentService) GetByStudentID(ctx context.Context, agencyID, studentID int64) ([]*models.Document, error) {
	if _, err := s.studentRepo.GetByID(ctx, agencyID, studentID); err != nil {
		return nil, err
	}
	return s.documentRepo.GetByStudentID(ctx, agencyID, studentID)
}

// GetDownloadURL returns a time-limited presigned download URL for a document
func (s *DocumentService) GetDownloadURL(ctx context.Context, agencyID, id int64) (string, error) {
	doc, err := s.documentRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return "", err
	}
	return s.storage.PresignedDownloadURL(ctx, doc.ObjectKey, doc.FileName, downloadURLExpiry)
}

// Delete removes a document record and its stored object
func (s *DocumentService) Delete(ctx context.Context, agencyID, actorID, id int64) error {
	doc, err := s.documentRepo.GetByID(ctx, agencyID, id)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, agencyID, id); err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, doc.ObjectKey); err != nil {
		s.logger.Error().Err(err).Str("objectKey", doc.ObjectKey).Msg("Failed to delete stored object")
	}

	s.activity.record(ctx, agencyID, actorID, "DOCUMENT", id, models.ActionDelete, doc.FileName)
	return nil
}
