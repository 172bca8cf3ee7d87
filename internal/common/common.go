package common

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/picklepro/api/internal/user"
)

const (
	// Context keys
	ContextUserKey   = "currentUser" // Key to store user object in context
	ContextUserIDKey = "userID"      // Key to store user ID in context
)

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, error) {
	userIDInterface, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	userID, ok := userIDInterface.(string)
	if !ok {
		return "", errors.New("user ID in context is not of type string")
	}
	return userID, nil
}

// GetCurrentUser retrieves the authenticated user from the Gin context.
func GetCurrentUser(c *gin.Context) (*user.User, error) {
	userInterface, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, errors.New("user not found in context")
	}
	u, ok := userInterface.(*user.User)
	if !ok {
		return nil, errors.New("user in context has unexpected type")
	}
	return u, nil
}
