package venue

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/picklepro/api/internal/common"
	"github.com/picklepro/api/pkg/responses"
	"github.com/picklepro/api/pkg/validator"
)

// VenueController handles venue-related HTTP requests.
type VenueController struct {
	service *VenueService
}

// NewVenueController creates a new venue controller.
func NewVenueController(service *VenueService) *VenueController {
	return &VenueController{service: service}
}

// GetAllVenues godoc
// @Summary List venues
// @Tags venues
// @Produce json
// @Success 200 {array} Venue "List of venues"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /venues [get]
func (vc *VenueController) GetAllVenues(ctx *gin.Context) {
	venues, err := vc.service.GetAllVenues()
	if err != nil {
		responses.InternalServerError(ctx, "failed to list venues: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, venues)
}

// GetVenue godoc
// @Summary Get venue by ID
// @Tags venues
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Success 200 {object} Venue "Venue details"
// @Failure 404 {object} responses.ErrorResponse "Venue not found"
// @Router /venues/{venue_id} [get]
func (vc *VenueController) GetVenue(ctx *gin.Context) {
	v, err := vc.service.GetVenue(ctx.Param("venue_id"))
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			responses.NotFound(ctx, "Venue")
			return
		}
		responses.InternalServerError(ctx, "failed to get venue: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, v)
}

// CreateVenue godoc
// @Summary Create a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body Venue true "Venue"
// @Param group_id query string false "Group the venue belongs to"
// @Success 201 {object} Venue "Venue created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Router /venues [post]
// @Security Bearer
func (vc *VenueController) CreateVenue(ctx *gin.Context) {
	actorID, err := common.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}

	var v Venue
	if err := ctx.ShouldBindJSON(&v); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	created, err := vc.service.CreateVenue(&v, actorID, ctx.Query("group_id"))
	if err != nil {
		responses.InternalServerError(ctx, "failed to create venue: "+err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// UpdateVenue godoc
// @Summary Update a venue
// @Description Update a venue. Requires system ADMIN, the venue's creator, or GROUP_ADMIN of its group.
// @Tags venues
// @Accept json
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Param venue body Venue true "Venue fields"
// @Success 200 {object} Venue "Updated venue"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Venue not found"
// @Router /venues/{venue_id} [put]
// @Security Bearer
func (vc *VenueController) UpdateVenue(ctx *gin.Context) {
	actor, err := common.GetCurrentUser(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}

	var v Venue
	if err := ctx.ShouldBindJSON(&v); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	updated, err := vc.service.UpdateVenue(ctx.Param("venue_id"), &v, actor)
	if err != nil {
		switch {
		case errors.Is(err, ErrVenueNotFound):
			responses.NotFound(ctx, "Venue")
		case errors.Is(err, ErrNotAuthorized):
			responses.Forbidden(ctx, err.Error())
		default:
			responses.InternalServerError(ctx, "failed to update venue: "+err.Error())
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteVenue godoc
// @Summary Delete a venue
// @Description Delete a venue. Matches referencing it are re-pointed at the UNKNOWN venue.
// @Tags venues
// @Produce json
// @Param venue_id path string true "Venue ID"
// @Success 200 {object} responses.SuccessResponse "Venue deleted"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Venue not found"
// @Router /venues/{venue_id} [delete]
// @Security Bearer
func (vc *VenueController) DeleteVenue(ctx *gin.Context) {
	actor, err := common.GetCurrentUser(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}

	if err := vc.service.DeleteVenue(ctx.Param("venue_id"), actor); err != nil {
		switch {
		case errors.Is(err, ErrVenueNotFound):
			responses.NotFound(ctx, "Venue")
		case errors.Is(err, ErrNotAuthorized):
			responses.Forbidden(ctx, err.Error())
		default:
			responses.InternalServerError(ctx, "failed to delete venue: "+err.Error())
		}
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "Venue deleted", nil)
}
