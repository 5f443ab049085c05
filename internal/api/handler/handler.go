// Package handler implements the HTTP handlers of the userdeck API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/avasek/userdeck/internal/api/models"
	"github.com/avasek/userdeck/internal/config"
	"github.com/avasek/userdeck/internal/service"
)

// Handler carries the service dependencies of the API handlers.
type Handler struct {
	svc *service.UserService
	cfg *config.Config
}

// New creates a new handler.
func New(svc *service.UserService, cfg *config.Config) *Handler {
	return &Handler{
		svc: svc,
		cfg: cfg,
	}
}

func parseUintParam(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 0)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// statusFromError maps a service error to an HTTP status code.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// CreateUser creates a user account with an empty profile.
func (h *Handler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	err := h.svc.CreateUser(c.Request.Context(), service.CreateUserInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		log.Error("failed to create user", "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// GetUser returns the username and email of a user.
func (h *Handler) GetUser(c *gin.Context) {
	userID, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	identity, err := h.svc.FindUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ToUserResponse(identity))
}

// GetProfile returns the profile of a user.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	profile, err := h.svc.GetProfileByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ToProfileResponse(profile, h.userEmail(c, userID), h.cfg.Gravatar))
}

// UpdateProfile overwrites the theme preference and active image of a
// user's profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	profile, err := h.svc.UpdateProfile(c.Request.Context(), userID, service.UpdateProfileInput{
		DarkTheme:   req.DarkTheme,
		ActiveImage: req.ActiveImage,
	})
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ToProfileResponse(profile, h.userEmail(c, userID), h.cfg.Gravatar))
}

// AddProfilePicture accepts a multipart picture upload for a user and
// records it in the profile's gallery.
func (h *Handler) AddProfilePicture(c *gin.Context) {
	userID, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing uploaded file"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer src.Close() //nolint: errcheck

	profile, err := h.svc.AddProfilePicture(c.Request.Context(), userID, file.Filename, src)
	if err != nil {
		log.Error("failed to add profile picture", "user_id", userID, "error", err)
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ToProfileResponse(profile, h.userEmail(c, userID), h.cfg.Gravatar))
}

// userEmail looks up the user's email for the Gravatar fallback. A failed
// lookup only disables the fallback, it never fails the request.
func (h *Handler) userEmail(c *gin.Context, userID uint) *string {
	identity, err := h.svc.FindUserByID(c.Request.Context(), userID)
	if err != nil {
		log.Debug("failed to look up user email for avatar fallback", "user_id", userID, "error", err)
		return nil
	}
	return identity.Email
}
