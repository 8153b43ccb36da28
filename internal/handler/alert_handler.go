package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
	appErrors "github.com/tendersaarthi/tendersaarthi-api/pkg/errors"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/response"
)

type alertService interface {
	Get(ctx context.Context, userID string) (*models.AlertPreference, error)
	Upsert(ctx context.Context, userID string, req dto.AlertPreferenceRequest) (*models.AlertPreference, error)
	Delete(ctx context.Context, userID string) error
}

// AlertHandler exposes the alert subscription of the current user.
type AlertHandler struct {
	alerts alertService
}

// NewAlertHandler constructs an AlertHandler.
func NewAlertHandler(alerts alertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// Get godoc
// @Summary Get my alert subscription
// @Tags Alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=models.AlertPreference}
// @Failure 404 {object} response.Envelope
// @Router /me/alerts [get]
func (h *AlertHandler) Get(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	pref, err := h.alerts.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pref, nil)
}

// Upsert godoc
// @Summary Replace my alert subscription
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.AlertPreferenceRequest true "Subscription"
// @Success 200 {object} response.Envelope{data=models.AlertPreference}
// @Failure 400 {object} response.Envelope
// @Router /me/alerts [put]
func (h *AlertHandler) Upsert(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	var req dto.AlertPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Invalid(err, "invalid alert payload"))
		return
	}
	pref, err := h.alerts.Upsert(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, pref, nil)
}

// Delete godoc
// @Summary Remove my alert subscription
// @Tags Alerts
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /me/alerts [delete]
func (h *AlertHandler) Delete(c *gin.Context) {
	claims := requireClaims(c)
	if claims == nil {
		return
	}
	if err := h.alerts.Delete(c.Request.Context(), claims.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
