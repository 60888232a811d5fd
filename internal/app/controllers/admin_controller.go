package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thws/management/internal/app/models/dto"
	"github.com/thws/management/internal/pkg/logger"
)

// DatabaseResetter wipes all stored data and restores the seed dataset.
type DatabaseResetter interface {
	Reset(ctx context.Context) error
}

// AdminController handles maintenance endpoints
type AdminController struct {
	resetter DatabaseResetter
}

// NewAdminController creates a new AdminController instance
func NewAdminController(resetter DatabaseResetter) *AdminController {
	return &AdminController{
		resetter: resetter,
	}
}

// ResetDatabase godoc
// @Summary Reset the database
// @Description Truncates all data, restarts id sequences and restores the seed dataset
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /reset-database [post]
func (ctrl *AdminController) ResetDatabase(c *gin.Context) {
	if err := ctrl.resetter.Reset(c.Request.Context()); err != nil {
		logger.Error().Err(err).Msg("Database reset failed")
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database reset failed"),
		})
		return
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Data: gin.H{"message": "Database reset to seed data"},
	})
}
