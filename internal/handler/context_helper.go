package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
	"github.com/tendersaarthi/tendersaarthi-api/internal/middleware"
	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
	"github.com/tendersaarthi/tendersaarthi-api/internal/service"
	appErrors "github.com/tendersaarthi/tendersaarthi-api/pkg/errors"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	return middleware.Claims(c)
}

// requireClaims writes a 401 and returns nil when the request is anonymous.
func requireClaims(c *gin.Context) *models.JWTClaims {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
	}
	return claims
}

func actorFromContext(c *gin.Context) service.Actor {
	actor := service.Actor{IP: c.ClientIP(), UserAgent: c.GetHeader("User-Agent")}
	if claims := claimsFromContext(c); claims != nil {
		actor.UserID = claims.UserID
		actor.Role = claims.Role
	}
	return actor
}

// pageParam reads ?page. A missing or malformed value means the first page.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return page
}

func listingPagination(res *dto.ListingResult) *models.Pagination {
	if res == nil {
		return nil
	}
	return models.NewPagination(res.Page, res.TotalCount)
}
