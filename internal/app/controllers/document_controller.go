package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/services"
	"github.com/pleeno/pleeno/internal/middleware"
	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

// DocumentController handles student document operations
type DocumentController struct {
	documentService *services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

// UploadDocument stores a file for a student
// @Summary Upload a document
// @Description Uploads a file (max 20 MB) to the object store and records its metadata
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param file formData file true "File to upload"
// @Success 201 {object} dto.APIResponse{data=models.Document} "Document uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing or oversized file"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/documents [post]
func (c *DocumentController) UploadDocument(ctx *gin.Context) {
	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("file form field is required"))
		return
	}

	doc, err := c.documentService.Upload(ctx, middleware.GetAgencyID(ctx), middleware.GetUserID(ctx), studentID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(doc))
}

// GetStudentDocuments lists a student's documents
// @Summary List a student's documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Document} "Documents"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/documents [get]
func (c *DocumentController) GetStudentDocuments(ctx *gin.Context) {
	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	docs, err := c.documentService.GetByStudentID(ctx, middleware.GetAgencyID(ctx), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(docs))
}

// GetDocumentDownloadURL returns a presigned download URL
// @Summary Get a document download URL
// @Description Returns a time-limited presigned URL for downloading the document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse "Download URL"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /documents/{id}/download [get]
func (c *DocumentController) GetDocumentDownloadURL(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	url, err := c.documentService.GetDownloadURL(ctx, middleware.GetAgencyID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"url": url}))
}

// DeleteDocument deletes a document
// @Summary Delete a document
// @Description Deletes a document record and its stored object. Admin only.
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Document deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /documents/{id} [delete]
func (c *DocumentController) DeleteDocument(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.documentService.Delete(ctx, middleware.GetAgencyID(ctx), middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Document deleted"}))
}
