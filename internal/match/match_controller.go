package match

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/picklepro/api/internal/common"
	"github.com/picklepro/api/pkg/responses"
	"github.com/picklepro/api/pkg/validator"
)

// MatchController handles match-related HTTP requests.
type MatchController struct {
	service *MatchService
}

// NewMatchController creates a new match controller.
func NewMatchController(service *MatchService) *MatchController {
	return &MatchController{service: service}
}

// GetAllMatches godoc
// @Summary List matches
// @Description Get all recorded matches with team-member names resolved
// @Tags matches
// @Produce json
// @Success 200 {array} MatchResponse "List of matches"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches [get]
func (mc *MatchController) GetAllMatches(ctx *gin.Context) {
	matches, err := mc.service.GetAllMatches()
	if err != nil {
		responses.InternalServerError(ctx, "failed to list matches: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, matches)
}

// GetMatch godoc
// @Summary Get match by ID
// @Tags matches
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {object} MatchResponse "Match details"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches/{match_id} [get]
func (mc *MatchController) GetMatch(ctx *gin.Context) {
	resp, err := mc.service.GetMatch(ctx.Param("match_id"))
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			responses.NotFound(ctx, "Match")
			return
		}
		responses.InternalServerError(ctx, "failed to get match: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateMatch godoc
// @Summary Record a match
// @Description Persist a match result and update participating players' ratings
// @Tags matches
// @Accept json
// @Produce json
// @Param match body Match true "Match result"
// @Success 201 {object} MatchResponse "Match recorded"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Match recorded but ratings not applied"
// @Router /matches [post]
// @Security Bearer
func (mc *MatchController) CreateMatch(ctx *gin.Context) {
	var m Match
	if err := ctx.ShouldBindJSON(&m); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	actorID, err := common.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}

	resp, err := mc.service.CreateMatch(&m, actorID)
	if err != nil {
		if errors.Is(err, ErrRatingUpdateFailed) {
			// The match is persisted; only the rating batch save failed.
			responses.SendError(ctx, http.StatusInternalServerError, err.Error())
			return
		}
		responses.InternalServerError(ctx, "failed to create match: "+err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// DeleteMatch godoc
// @Summary Delete a match
// @Description Delete a match. Requires system ADMIN, match creator, or GROUP_ADMIN of the match's group. Ratings are not reverted.
// @Tags matches
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {object} responses.SuccessResponse "Match deleted"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches/{match_id} [delete]
// @Security Bearer
func (mc *MatchController) DeleteMatch(ctx *gin.Context) {
	actor, err := common.GetCurrentUser(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}

	if err := mc.service.DeleteMatch(ctx.Param("match_id"), actor); err != nil {
		switch {
		case errors.Is(err, ErrMatchNotFound):
			responses.NotFound(ctx, "Match")
		case errors.Is(err, ErrNotAuthorized):
			responses.Forbidden(ctx, err.Error())
		default:
			responses.InternalServerError(ctx, "failed to delete match: "+err.Error())
		}
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "Match deleted", nil)
}
