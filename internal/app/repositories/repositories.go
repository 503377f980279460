package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AgencyRepository      *AgencyRepository
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	BranchRepository      *BranchRepository
	CollegeRepository     *CollegeRepository
	StudentRepository     *StudentRepository
	EnrollmentRepository  *EnrollmentRepository
	PaymentPlanRepository *PaymentPlanRepository
	InstallmentRepository *InstallmentRepository
	NoteRepository        *NoteRepository
	DocumentRepository    *DocumentRepository
	ActivityRepository    *ActivityRepository
	ReportRepository      *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AgencyRepository:      NewAgencyRepository(db),
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		BranchRepository:      NewBranchRepository(db),
		CollegeRepository:     NewCollegeRepository(db),
		StudentRepository:     NewStudentRepository(db),
		EnrollmentRepository:  NewEnrollmentRepository(db),
		PaymentPlanRepository: NewPaymentPlanRepository(db),
		InstallmentRepository: NewInstallmentRepository(db),
		NoteRepository:        NewNoteRepository(db),
		DocumentRepository:    NewDocumentRepository(db),
		ActivityRepository:    NewActivityRepository(db),
		ReportRepository:      NewReportRepository(db),
	}
}
