package api

import (
	"errors"
	"net/http"
	"time"

	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/security"
	"hermesoftware/byklab-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
	log         logrus.FieldLogger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// --- Request/Response Structs ---

// SignupRequest fields are pointers so that presence, not emptiness, is
// what "required" checks. The password byte limit is checked in Signup,
// since validator's max counts runes.
type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password *string `json:"password" binding:"required"`
	FullName *string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password *string `json:"password" binding:"required"`
}

// UserResponse excludes sensitive info like password hash
type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	CreatedAt        time.Time `json:"created_at"`
	SubscriptionPlan string    `json:"subscription_plan"`
}

// --- Handler Methods ---

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}
	if len(*req.Password) > security.MaxPasswordBytes {
		abortWithError(c, http.StatusBadRequest, service.ErrPasswordTooLong.Error())
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req.Email, *req.Password, *req.FullName)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) || errors.Is(err, service.ErrPasswordTooLong) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithInternalError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, bindingErrorMessage(err))
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, *req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
			return
		}
		abortWithInternalError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		FullName:         user.FullName,
		CreatedAt:        user.CreatedAt.Time,
		SubscriptionPlan: user.Plan(),
	}
}
