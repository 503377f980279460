package services

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/app/repositories"
	"github.com/pleeno/pleeno/internal/pkg/auth"
	"github.com/pleeno/pleeno/internal/pkg/email"
	"github.com/pleeno/pleeno/internal/pkg/metrics"
	"github.com/pleeno/pleeno/internal/pkg/objectstorage"
)

// Services holds all the service instances
type Services struct {
	AuthService        *AuthService
	BranchService      *BranchService
	CollegeService     *CollegeService
	StudentService     *StudentService
	EnrollmentService  *EnrollmentService
	PaymentPlanService *PaymentPlanService
	NoteService        *NoteService
	DocumentService    *DocumentService
	ReportService      *ReportService
}

// Dependencies carries everything the services need beyond repositories.
type Dependencies struct {
	DB           *pgxpool.Pool
	JWTService   *auth.JWTService
	Storage      objectstorage.Storage
	EmailService email.EmailService
	Metrics      *metrics.Metrics
	Logger       zerolog.Logger
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, deps Dependencies) *Services {
	activityStore := repos.ActivityRepository

	return &Services{
		AuthService: NewAuthService(
			deps.DB, repos.AgencyRepository, repos.UserRepository, repos.TokenRepository,
			deps.JWTService, deps.Logger),
		BranchService: NewBranchService(
			repos.BranchRepository, activityStore, deps.Logger),
		CollegeService: NewCollegeService(
			repos.CollegeRepository, activityStore, deps.Logger),
		StudentService: NewStudentService(
			repos.StudentRepository, repos.BranchRepository, activityStore, deps.Logger),
		EnrollmentService: NewEnrollmentService(
			repos.EnrollmentRepository, repos.StudentRepository, repos.CollegeRepository,
			activityStore, deps.Logger),
		PaymentPlanService: NewPaymentPlanService(
			repos.PaymentPlanRepository, repos.InstallmentRepository, repos.EnrollmentRepository,
			repos.CollegeRepository, deps.EmailService, activityStore, deps.Logger),
		NoteService: NewNoteService(
			repos.NoteRepository, repos.StudentRepository, activityStore, deps.Logger),
		DocumentService: NewDocumentService(
			repos.DocumentRepository, repos.StudentRepository, deps.Storage, activityStore, deps.Logger),
		ReportService: NewReportService(
			repos.ReportRepository, repos.StudentRepository, deps.Metrics, deps.Logger),
	}
}

// activityRecorder appends audit entries. Failures are logged, never
// propagated, so auditing cannot fail a business operation.
type activityRecorder struct {
	repo   ActivityStore
	logger zerolog.Logger
}

func newActivityRecorder(store ActivityStore, logger zerolog.Logger) *activityRecorder {
	return &activityRecorder{repo: store, logger: logger}
}

func (a *activityRecorder) record(ctx context.Context, agencyID, actorID int64, entityType string, entityID int64, action models.ActivityAction, detail string) {
	entry := &models.Activity{
		AgencyID:   agencyID,
		ActorID:    actorID,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Detail:     detail,
	}
	if err := a.repo.Create(ctx, entry); err != nil {
		a.logger.Error().Err(err).
			Str("entityType", entityType).
			Int64("entityId", entityID).
			Msg("Failed to record activity")
	}
}
