package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/api/idtoken"

	"github.com/picklepro/api/config"
	"github.com/picklepro/api/internal/user"
	"github.com/picklepro/api/pkg/responses"
	"github.com/picklepro/api/pkg/token"
)

// AuthController handles Google sign-in and token issuance.
type AuthController struct {
	userRepo  user.UserRepository
	appConfig *config.Config
}

// NewAuthController creates a new auth controller.
func NewAuthController(userRepo user.UserRepository, appConfig *config.Config) *AuthController {
	return &AuthController{
		userRepo:  userRepo,
		appConfig: appConfig,
	}
}

// GoogleSignIn godoc
// @Summary Sign in with Google
// @Description Verify a Google ID token, create or update the user, and issue an app JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleAuthRequest true "Google ID token"
// @Success 200 {object} AuthResponse "Authenticated"
// @Failure 400 {object} responses.ErrorResponse "Invalid payload"
// @Failure 401 {object} responses.ErrorResponse "Invalid Google ID token"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /auth/google [post]
func (ac *AuthController) GoogleSignIn(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	payload, err := idtoken.Validate(c.Request.Context(), req.IDToken, ac.appConfig.Google.ClientID)
	if err != nil {
		responses.Unauthorized(c, "Invalid Google ID token")
		return
	}

	googleID := payload.Subject
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	role := user.SystemRoleUser
	for _, adminEmail := range ac.appConfig.AdminEmails {
		if adminEmail == email {
			role = user.SystemRoleAdmin
			break
		}
	}

	u, err := ac.userRepo.FindByGoogleID(googleID)
	if err != nil {
		if err != user.ErrUserNotFound {
			responses.InternalServerError(c, "Failed to look up user")
			return
		}
		u = &user.User{
			ID:         uuid.NewString(),
			GoogleID:   googleID,
			Email:      email,
			Name:       name,
			Picture:    picture,
			SystemRole: role,
		}
		if err := ac.userRepo.Save(u); err != nil {
			responses.InternalServerError(c, "Failed to create user: "+err.Error())
			return
		}
	} else {
		// Refresh profile and role drift from the identity provider.
		changed := false
		if u.Name != name {
			u.Name = name
			changed = true
		}
		if u.Picture != picture {
			u.Picture = picture
			changed = true
		}
		if u.SystemRole != role {
			u.SystemRole = role
			changed = true
		}
		if changed {
			if err := ac.userRepo.Save(u); err != nil {
				responses.InternalServerError(c, "Failed to update user: "+err.Error())
				return
			}
		}
	}

	jwt, err := token.GenerateJWT(u.ID, string(u.SystemRole), ac.appConfig.JWT.Secret, ac.appConfig.JWT.ExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: jwt, User: u})
}

// Me godoc
// @Summary Current user
// @Description Return the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} user.User "Current user"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security Bearer
func (ac *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		responses.Unauthorized(c, "")
		return
	}

	u, err := ac.userRepo.FindByID(userID.(string))
	if err != nil {
		if err == user.ErrUserNotFound {
			responses.NotFound(c, "User")
			return
		}
		responses.InternalServerError(c, "Failed to load user")
		return
	}

	c.JSON(http.StatusOK, u)
}
