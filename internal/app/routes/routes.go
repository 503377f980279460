package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pleeno/pleeno/internal/app/controllers"
	"github.com/pleeno/pleeno/internal/app/models"
	"github.com/pleeno/pleeno/internal/middleware"
)

// SetupRouter registers the API routes. Everything except registration,
// login and refresh sits behind JWT authentication; destructive operations
// additionally require the ADMIN role.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	branchController *controllers.BranchController,
	collegeController *controllers.CollegeController,
	studentController *controllers.StudentController,
	enrollmentController *controllers.EnrollmentController,
	planController *controllers.PaymentPlanController,
	noteController *controllers.NoteController,
	documentController *controllers.DocumentController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	authed := v1.Group("")
	authed.Use(authMiddleware.JWTAuth())
	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	{
		authed.POST("/auth/logout", authController.Logout)
		authed.GET("/auth/profile", authController.GetProfile)

		authed.POST("/branches", branchController.CreateBranch)
		authed.GET("/branches", branchController.GetBranches)
		authed.GET("/branches/:id", branchController.GetBranchByID)
		authed.PUT("/branches/:id", branchController.UpdateBranch)
		authed.DELETE("/branches/:id", adminOnly, branchController.DeleteBranch)

		authed.POST("/colleges", collegeController.CreateCollege)
		authed.GET("/colleges", collegeController.GetColleges)
		authed.GET("/colleges/:id", collegeController.GetCollegeByID)
		authed.PUT("/colleges/:id", collegeController.UpdateCollege)
		authed.DELETE("/colleges/:id", adminOnly, collegeController.DeleteCollege)

		authed.POST("/students", studentController.CreateStudent)
		authed.GET("/students", studentController.GetStudents)
		authed.GET("/students/:id", studentController.GetStudentByID)
		authed.PUT("/students/:id", studentController.UpdateStudent)
		authed.DELETE("/students/:id", adminOnly, studentController.DeleteStudent)

		authed.GET("/students/:id/enrollments", enrollmentController.GetStudentEnrollments)
		authed.POST("/enrollments", enrollmentController.CreateEnrollment)
		authed.GET("/enrollments/:id", enrollmentController.GetEnrollmentByID)
		authed.PUT("/enrollments/:id", enrollmentController.UpdateEnrollment)

		authed.POST("/payment-plans", planController.CreatePaymentPlan)
		authed.GET("/payment-plans/:id", planController.GetPaymentPlanByID)
		authed.POST("/payment-plans/:id/cancel", planController.CancelPaymentPlan)
		authed.GET("/enrollments/:id/payment-plans", planController.GetEnrollmentPaymentPlans)
		authed.POST("/installments/:id/pay", planController.PayInstallment)
		authed.POST("/installments/sweep-overdue", adminOnly, planController.SweepOverdue)
		authed.POST("/installments/send-reminders", adminOnly, planController.SendReminders)

		authed.POST("/students/:id/notes", noteController.CreateNote)
		authed.GET("/students/:id/notes", noteController.GetStudentNotes)
		authed.DELETE("/notes/:id", noteController.DeleteNote)

		authed.POST("/students/:id/documents", documentController.UploadDocument)
		authed.GET("/students/:id/documents", documentController.GetStudentDocuments)
		authed.GET("/documents/:id/download", documentController.GetDocumentDownloadURL)
		authed.DELETE("/documents/:id", adminOnly, documentController.DeleteDocument)

		authed.GET("/students/:id/payment-history", reportController.GetPaymentHistory)
		authed.GET("/students/:id/payment-history/export", reportController.ExportPaymentHistory)
		authed.GET("/reports/commissions", reportController.GetCommissionReport)
		authed.GET("/reports/commissions/export", reportController.ExportCommissionReport)
	}
}
