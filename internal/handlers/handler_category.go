package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, d routeDeps) {
	h := &categoryHandler{categoryService: d.services.Category}

	categories := rg.Group("/categories")
	{
		categories.GET("/all", h.listCategories)
		categories.POST("/add", d.requireAuth, h.createCategory)
		categories.DELETE("/remove", d.requireAuth, h.removeCategory)
		categories.PATCH("/modify", d.requireAuth, h.renameCategory)
	}
}

// listCategories godoc
// @Summary All categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CategoryResponse}
// @Router /categories/all [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToCategoryResponses(categories), "Categories fetched successfully")
}

// createCategory godoc
// @Summary Add a category
// @Tags categories
// @Accept json
// @Produce json
// @Param body body dto.CategoryRequest true "Category"
// @Success 201 {object} dto.APIResponse{data=dto.CategoryResponse}
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /categories/add [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.ToCategoryResponse(*category), "Category added successfully")
}

// removeCategory godoc
// @Summary Remove a category
// @Description Videos in the category become uncategorised.
// @Tags categories
// @Accept json
// @Produce json
// @Param body body dto.CategoryRequest true "Category"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Default category"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /categories/remove [delete]
func (h *categoryHandler) removeCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.categoryService.RemoveCategory(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{}, "Category removed successfully")
}

// renameCategory godoc
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Param body body dto.RenameCategoryRequest true "Old and new title"
// @Success 200 {object} dto.APIResponse{data=dto.CategoryResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /categories/modify [patch]
func (h *categoryHandler) renameCategory(c *gin.Context) {
	var req dto.RenameCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	category, err := h.categoryService.RenameCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToCategoryResponse(*category), "Category renamed successfully")
}
