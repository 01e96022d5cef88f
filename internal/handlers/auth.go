package handlers

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"github.com/threadline-app/backend/internal/models"
	"github.com/threadline-app/backend/internal/repositories"
)

// AuthHandler exposes the identity endpoint. Accounts live in Firebase;
// this only verifies tokens and caches profile snapshots locally.
type AuthHandler struct {
	userRepository repositories.UserRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository) *AuthHandler {
	return &AuthHandler{userRepository: userRepo}
}

// RegisterAuthRoutes registers auth-related routes. The group must carry
// the Firebase token verification middleware.
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
}

// Me returns the signed-in user's {id, fullName} from the verified token,
// upserting the local profile snapshot on the way
func (h *AuthHandler) Me(c echo.Context) error {
	firebaseUID := c.Get("firebaseUID").(string)
	token := c.Get("firebaseToken").(*auth.Token)

	user := &models.User{FirebaseUID: firebaseUID}
	if name, ok := token.Claims["name"].(string); ok {
		user.FullName = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}

	if err := h.userRepository.UpsertProfile(user); err != nil {
		return storeErrorToHTTP(err)
	}

	profile, err := h.userRepository.GetByFirebaseUID(firebaseUID)
	if err != nil {
		return storeErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, profile)
}
