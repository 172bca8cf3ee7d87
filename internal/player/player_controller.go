package player

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/picklepro/api/internal/common"
	"github.com/picklepro/api/internal/user"
	"github.com/picklepro/api/pkg/responses"
	"github.com/picklepro/api/pkg/validator"
)

// PlayerController handles player-related HTTP requests.
type PlayerController struct {
	service *PlayerService
}

// NewPlayerController creates a new player controller.
func NewPlayerController(service *PlayerService) *PlayerController {
	return &PlayerController{service: service}
}

// GetAllPlayers godoc
// @Summary List players
// @Tags players
// @Produce json
// @Success 200 {array} Player "List of players"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(ctx *gin.Context) {
	players, err := pc.service.GetAllPlayers()
	if err != nil {
		responses.InternalServerError(ctx, "failed to list players: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, players)
}

// GetPlayerByEmail godoc
// @Summary Find player by email
// @Tags players
// @Produce json
// @Param email path string true "Player email"
// @Success 200 {object} Player "Player"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /players/by-email/{email} [get]
func (pc *PlayerController) GetPlayerByEmail(ctx *gin.Context) {
	p, err := pc.service.FindByEmail(ctx.Param("email"))
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			responses.NotFound(ctx, "Player")
			return
		}
		responses.InternalServerError(ctx, "failed to find player: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// CreatePlayer godoc
// @Summary Register a player
// @Description Register a new player, optionally into a group with an initial role
// @Tags players
// @Accept json
// @Produce json
// @Param player body Player true "Player"
// @Param group_id query string false "Group to place the player into"
// @Param role query string false "Initial group role (MEMBER or GROUP_ADMIN)"
// @Success 201 {object} Player "Player registered"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 409 {object} responses.ErrorResponse "Email already registered"
// @Router /players [post]
// @Security Bearer
func (pc *PlayerController) CreatePlayer(ctx *gin.Context) {
	actor, err := common.GetCurrentUser(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}

	var p Player
	if err := ctx.ShouldBindJSON(&p); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	groupID := ctx.Query("group_id")
	role := user.GroupRole(ctx.Query("role"))

	created, err := pc.service.CreatePlayer(&p, actor, groupID, role)
	if err != nil {
		switch {
		case errors.Is(err, ErrPlayerEmailTaken):
			responses.SendError(ctx, http.StatusConflict, err.Error())
		case errors.Is(err, ErrNotGroupAdmin):
			responses.Forbidden(ctx, err.Error())
		default:
			responses.InternalServerError(ctx, "failed to create player: "+err.Error())
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

type groupRoleInput struct {
	Role user.GroupRole `json:"role" binding:"required,oneof=MEMBER GROUP_ADMIN"`
}

// AddToGroup godoc
// @Summary Add player to group
// @Tags players
// @Accept json
// @Produce json
// @Param player_id path string true "Player ID"
// @Param group_id path string true "Group ID"
// @Param body body groupRoleInput true "Role"
// @Success 200 {object} responses.SuccessResponse "Player added to group"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /players/{player_id}/groups/{group_id} [post]
// @Security Bearer
func (pc *PlayerController) AddToGroup(ctx *gin.Context) {
	actor, err := common.GetCurrentUser(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}

	var input groupRoleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	err = pc.service.AddToGroup(ctx.Param("player_id"), ctx.Param("group_id"), input.Role, actor)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotGroupAdmin):
			responses.Forbidden(ctx, err.Error())
		case errors.Is(err, ErrPlayerNotFound):
			responses.NotFound(ctx, "Player")
		default:
			responses.InternalServerError(ctx, "failed to add player to group: "+err.Error())
		}
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "Player added to group", nil)
}

// RemoveFromGroup godoc
// @Summary Remove player from group
// @Tags players
// @Produce json
// @Param player_id path string true "Player ID"
// @Param group_id path string true "Group ID"
// @Success 200 {object} responses.SuccessResponse "Player removed from group"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /players/{player_id}/groups/{group_id} [delete]
// @Security Bearer
func (pc *PlayerController) RemoveFromGroup(ctx *gin.Context) {
	actor, err := common.GetCurrentUser(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}

	err = pc.service.RemoveFromGroup(ctx.Param("player_id"), ctx.Param("group_id"), actor)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotGroupAdmin):
			responses.Forbidden(ctx, err.Error())
		case errors.Is(err, ErrPlayerNotFound):
			responses.NotFound(ctx, "Player")
		default:
			responses.InternalServerError(ctx, "failed to remove player from group: "+err.Error())
		}
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "Player removed from group", nil)
}

// UpdatePlayer godoc
// @Summary Update player profile
// @Description Update profile fields. Allowed for system ADMIN or the player themselves; only an admin may change the email.
// @Tags players
// @Accept json
// @Produce json
// @Param player_id path string true "Player ID"
// @Param player body Player true "Player fields"
// @Success 200 {object} Player "Updated player"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /players/{player_id} [put]
// @Security Bearer
func (pc *PlayerController) UpdatePlayer(ctx *gin.Context) {
	actor, err := common.GetCurrentUser(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}

	var p Player
	if err := ctx.ShouldBindJSON(&p); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	updated, err := pc.service.UpdatePlayer(ctx.Param("player_id"), &p, actor)
	if err != nil {
		switch {
		case errors.Is(err, ErrPlayerNotFound):
			responses.NotFound(ctx, "Player")
		case errors.Is(err, ErrNotProfileOwner):
			responses.Forbidden(ctx, err.Error())
		default:
			responses.InternalServerError(ctx, "failed to update player: "+err.Error())
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Description Delete a player registered by the current user
// @Tags players
// @Produce json
// @Param player_id path string true "Player ID"
// @Success 200 {object} responses.SuccessResponse "Player deleted"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players/{player_id} [delete]
// @Security Bearer
func (pc *PlayerController) DeletePlayer(ctx *gin.Context) {
	actorID, err := common.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}

	if err := pc.service.DeletePlayer(ctx.Param("player_id"), actorID); err != nil {
		responses.InternalServerError(ctx, "failed to delete player: "+err.Error())
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "Player deleted", nil)
}
