package group

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/picklepro/api/internal/common"
	"github.com/picklepro/api/internal/user"
	"github.com/picklepro/api/pkg/responses"
)

// GroupController handles group-related HTTP requests.
type GroupController struct {
	repo     GroupRepository
	userRepo user.UserRepository
}

// NewGroupController creates a new group controller.
func NewGroupController(repo GroupRepository, userRepo user.UserRepository) *GroupController {
	return &GroupController{repo: repo, userRepo: userRepo}
}

// GetAllGroups godoc
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {array} Group "List of groups"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /groups [get]
func (gc *GroupController) GetAllGroups(ctx *gin.Context) {
	groups, err := gc.repo.FindAll()
	if err != nil {
		responses.InternalServerError(ctx, "failed to list groups: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// CreateGroup godoc
// @Summary Create a group
// @Description Create a new group (system ADMIN only)
// @Tags groups
// @Accept json
// @Produce json
// @Param group body Group true "Group"
// @Success 201 {object} Group "Group created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Router /groups [post]
// @Security Bearer
func (gc *GroupController) CreateGroup(ctx *gin.Context) {
	actor, err := common.GetCurrentUser(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}
	if !actor.IsAdmin() {
		responses.Forbidden(ctx, "Only system admins can create groups")
		return
	}

	var g Group
	if err := ctx.ShouldBindJSON(&g); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	g.ID = uuid.NewString()
	if err := gc.repo.Save(&g); err != nil {
		responses.InternalServerError(ctx, "failed to create group: "+err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, g)
}

type memberInput struct {
	Role user.GroupRole `json:"role" binding:"required,oneof=MEMBER GROUP_ADMIN"`
}

// AddMember godoc
// @Summary Add a group member
// @Description Put a user into a group with the given role (system ADMIN only). GROUP_ADMIN members must have an email on record.
// @Tags groups
// @Accept json
// @Produce json
// @Param group_id path string true "Group ID"
// @Param user_id path string true "User ID"
// @Param body body memberInput true "Role"
// @Success 200 {object} responses.SuccessResponse "Member added"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Group or user not found"
// @Router /groups/{group_id}/members/{user_id} [post]
// @Security Bearer
func (gc *GroupController) AddMember(ctx *gin.Context) {
	actor, err := common.GetCurrentUser(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}
	if !actor.IsAdmin() {
		responses.Forbidden(ctx, "Only system admins can manage group members")
		return
	}

	var input memberInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	if _, err := gc.repo.FindByID(ctx.Param("group_id")); err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			responses.NotFound(ctx, "Group")
			return
		}
		responses.InternalServerError(ctx, "failed to load group: "+err.Error())
		return
	}

	u, err := gc.userRepo.FindByID(ctx.Param("user_id"))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			responses.NotFound(ctx, "User")
			return
		}
		responses.InternalServerError(ctx, "failed to load user: "+err.Error())
		return
	}

	if input.Role == user.GroupRoleGroupAdmin && u.Email == "" {
		responses.BadRequest(ctx, "Group Admin must have a valid email address")
		return
	}

	if u.Memberships == nil {
		u.Memberships = user.RoleMap{}
	}
	u.Memberships[ctx.Param("group_id")] = input.Role
	if err := gc.userRepo.Save(u); err != nil {
		responses.InternalServerError(ctx, "failed to save membership: "+err.Error())
		return
	}

	responses.SendSuccess(ctx, http.StatusOK, "Member added", nil)
}

// RemoveMember godoc
// @Summary Remove a group member
// @Description Remove a user's membership from a group (system ADMIN only)
// @Tags groups
// @Produce json
// @Param group_id path string true "Group ID"
// @Param user_id path string true "User ID"
// @Success 200 {object} responses.SuccessResponse "Member removed"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Router /groups/{group_id}/members/{user_id} [delete]
// @Security Bearer
func (gc *GroupController) RemoveMember(ctx *gin.Context) {
	actor, err := common.GetCurrentUser(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}
	if !actor.IsAdmin() {
		responses.Forbidden(ctx, "Only system admins can manage group members")
		return
	}

	u, err := gc.userRepo.FindByID(ctx.Param("user_id"))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			responses.NotFound(ctx, "User")
			return
		}
		responses.InternalServerError(ctx, "failed to load user: "+err.Error())
		return
	}

	if u.Memberships != nil {
		delete(u.Memberships, ctx.Param("group_id"))
		if err := gc.userRepo.Save(u); err != nil {
			responses.InternalServerError(ctx, "failed to save membership: "+err.Error())
			return
		}
	}

	responses.SendSuccess(ctx, http.StatusOK, "Member removed", nil)
}
