package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/internal/service"
	appErrors "github.com/tendersaarthi/tendersaarthi-api/pkg/errors"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/response"
)

type tenderService interface {
	Get(ctx context.Context, id string, actor service.Actor) (*dto.TenderDetail, error)
	ListMine(ctx context.Context, actor service.Actor, page int) (*dto.ListingResult, error)
	Create(ctx context.Context, req dto.UpsertTenderRequest, actor service.Actor) (*dto.TenderDetail, error)
	Update(ctx context.Context, id string, req dto.UpsertTenderRequest, actor service.Actor) (*dto.TenderDetail, error)
	Publish(ctx context.Context, id string, actor service.Actor) (*dto.TenderDetail, error)
	Delete(ctx context.Context, id string, actor service.Actor) error
}

// TenderHandler exposes tender posting endpoints.
type TenderHandler struct {
	tenders tenderService
}

// NewTenderHandler constructs a TenderHandler.
func NewTenderHandler(tenders tenderService) *TenderHandler {
	return &TenderHandler{tenders: tenders}
}

// Get godoc
// @Summary Get tender detail
// @Description Drafts are only returned to their author.
// @Tags Tenders
// @Produce json
// @Param id path string true "Tender ID"
// @Success 200 {object} response.Envelope{data=dto.TenderDetail}
// @Failure 404 {object} response.Envelope
// @Router /tenders/{id} [get]
func (h *TenderHandler) Get(c *gin.Context) {
	tender, err := h.tenders.Get(c.Request.Context(), c.Param("id"), actorFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tender, nil)
}

// ListMine godoc
// @Summary List my tenders
// @Tags Tenders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope{data=dto.ListingResult}
// @Router /me/tenders [get]
func (h *TenderHandler) ListMine(c *gin.Context) {
	if requireClaims(c) == nil {
		return
	}
	res, err := h.tenders.ListMine(c.Request.Context(), actorFromContext(c), pageParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, listingPagination(res))
}

// Create godoc
// @Summary Post a tender
// @Description Saves a draft, or publishes immediately when publish is true.
// @Tags Tenders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.UpsertTenderRequest true "Tender"
// @Success 201 {object} response.Envelope{data=dto.TenderDetail}
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /tenders [post]
func (h *TenderHandler) Create(c *gin.Context) {
	if requireClaims(c) == nil {
		return
	}
	var req dto.UpsertTenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Invalid(err, "invalid tender payload"))
		return
	}

	tender, err := h.tenders.Create(c.Request.Context(), req, actorFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tender)
}

// Update godoc
// @Summary Replace a tender
// @Tags Tenders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tender ID"
// @Param payload body dto.UpsertTenderRequest true "Tender"
// @Success 200 {object} response.Envelope{data=dto.TenderDetail}
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tenders/{id} [put]
func (h *TenderHandler) Update(c *gin.Context) {
	if requireClaims(c) == nil {
		return
	}
	var req dto.UpsertTenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Invalid(err, "invalid tender payload"))
		return
	}

	tender, err := h.tenders.Update(c.Request.Context(), c.Param("id"), req, actorFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tender, nil)
}

// Publish godoc
// @Summary Publish a draft
// @Tags Tenders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tender ID"
// @Success 200 {object} response.Envelope{data=dto.TenderDetail}
// @Failure 422 {object} response.Envelope
// @Router /tenders/{id}/publish [post]
func (h *TenderHandler) Publish(c *gin.Context) {
	if requireClaims(c) == nil {
		return
	}
	tender, err := h.tenders.Publish(c.Request.Context(), c.Param("id"), actorFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tender, nil)
}

// Delete godoc
// @Summary Delete a tender
// @Tags Tenders
// @Security BearerAuth
// @Param id path string true "Tender ID"
// @Success 204
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tenders/{id} [delete]
func (h *TenderHandler) Delete(c *gin.Context) {
	if requireClaims(c) == nil {
		return
	}
	if err := h.tenders.Delete(c.Request.Context(), c.Param("id"), actorFromContext(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
