package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pleeno/pleeno/internal/app/models/dto"
	"github.com/pleeno/pleeno/internal/app/services"
	"github.com/pleeno/pleeno/internal/middleware"
)

// BranchController handles branch operations
type BranchController struct {
	branchService *services.BranchService
}

// NewBranchController creates a new BranchController
func NewBranchController(branchService *services.BranchService) *BranchController {
	return &BranchController{branchService: branchService}
}

// CreateBranch handles branch creation
// @Summary Create a branch
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBranchRequest true "Branch data"
// @Success 201 {object} dto.APIResponse{data=models.Branch} "Branch created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /branches [post]
func (c *BranchController) CreateBranch(ctx *gin.Context) {
	var req dto.CreateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	branch, err := c.branchService.Create(ctx, middleware.GetAgencyID(ctx), middleware.GetUserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(branch))
}

// GetBranches lists the agency's branches
// @Summary List branches
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Branch} "Branches"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /branches [get]
func (c *BranchController) GetBranches(ctx *gin.Context) {
	branches, err := c.branchService.GetAll(ctx, middleware.GetAgencyID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(branches))
}

// GetBranchByID retrieves a branch
// @Summary Get branch by ID
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Success 200 {object} dto.APIResponse{data=models.Branch} "Branch"
// @Failure 404 {object} dto.ErrorResponse "Branch not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /branches/{id} [get]
func (c *BranchController) GetBranchByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	branch, err := c.branchService.GetByID(ctx, middleware.GetAgencyID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(branch))
}

// UpdateBranch updates a branch
// @Summary Update a branch
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Param request body dto.UpdateBranchRequest true "Branch data"
// @Success 200 {object} dto.APIResponse{data=models.Branch} "Branch updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Branch not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /branches/{id} [put]
func (c *BranchController) UpdateBranch(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	branch, err := c.branchService.Update(ctx, middleware.GetAgencyID(ctx), middleware.GetUserID(ctx), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(branch))
}

// DeleteBranch deletes a branch
// @Summary Delete a branch
// @Description Deletes a branch. Branches with students attached cannot be deleted. Admin only.
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Branch deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Branch not found"
// @Failure 409 {object} dto.ErrorResponse "Branch has students"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /branches/{id} [delete]
func (c *BranchController) DeleteBranch(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.branchService.Delete(ctx, middleware.GetAgencyID(ctx), middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Branch deleted"}))
}
