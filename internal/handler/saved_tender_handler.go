package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/response"
)

type savedTenderService interface {
	Save(ctx context.Context, userID, tenderID string) (*dto.SavedStatus, error)
	Remove(ctx context.Context, userID, tenderID string) (*dto.SavedStatus, error)
	Status(ctx context.Context, userID, tenderID string) (*dto.SavedStatus, error)
	List(ctx context.Context, userID string, page int) (*dto.ListingResult, error)
}

// SavedTenderHandler exposes bookmark endpoints.
type SavedTenderHandler struct {
	saved savedTenderService
}

// NewSavedTenderHandler constructs a SavedTenderHandler.
func NewSavedTenderHandler(saved savedTenderService) *SavedTenderHandler {
	return &SavedTenderHandler{saved: saved}
}

// List godoc
// @Summary List saved tenders
// @Tags Saved
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope{data=dto.ListingResult}
// @Router /me/saved [get]
func (h *SavedTenderHandler) List(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	res, err := h.saved.List(c.Request.Context(), claims.UserID, pageParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, listingPagination(res))
}

// Status godoc
// @Summary Is a tender saved
// @Tags Saved
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tender ID"
// @Success 200 {object} response.Envelope{data=dto.SavedStatus}
// @Router /me/saved/{id} [get]
func (h *SavedTenderHandler) Status(c *gin.Context) {
	h.respond(c, h.saved.Status)
}

// Save godoc
// @Summary Save a tender
// @Tags Saved
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tender ID"
// @Success 200 {object} response.Envelope{data=dto.SavedStatus}
// @Failure 404 {object} response.Envelope
// @Router /me/saved/{id} [put]
func (h *SavedTenderHandler) Save(c *gin.Context) {
	h.respond(c, h.saved.Save)
}

// Remove godoc
// @Summary Unsave a tender
// @Tags Saved
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tender ID"
// @Success 200 {object} response.Envelope{data=dto.SavedStatus}
// @Router /me/saved/{id} [delete]
func (h *SavedTenderHandler) Remove(c *gin.Context) {
	h.respond(c, h.saved.Remove)
}

func (h *SavedTenderHandler) respond(c *gin.Context, op func(ctx context.Context, userID, tenderID string) (*dto.SavedStatus, error)) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	status, err := op(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status, nil)
}
