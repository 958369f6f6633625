package handlers

import (
	"net/http"

	"github.com/shuhuiluo/trivia-game/internal/config"
	"github.com/shuhuiluo/trivia-game/internal/middleware"
	"github.com/shuhuiluo/trivia-game/internal/models"
	"github.com/shuhuiluo/trivia-game/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth     *services.AuthService
	sessions *services.SessionService
	cfg      *config.Config
}

func NewAuthHandler(auth *services.AuthService, sessions *services.SessionService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, cfg: cfg}
}

type CredentialsRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100" example:"alice"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	User UserResponse `json:"user"`
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token,
		int(models.SessionLifetime.Seconds()), "/", "", h.cfg.Production(), true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.cfg.Production(), true)
}

// issueSession creates a session for the user and responds with the
// public account view plus the cookie.
func (h *AuthHandler) issueSession(c *gin.Context, user *models.User) {
	token, err := h.sessions.Create(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, AuthResponse{User: toUserResponse(user)})
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account with the starting balance and log it in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body CredentialsRequest true "Credentials"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.auth.Register(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.issueSession(c, user)
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} AuthResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.issueSession(c, user)
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the session cookie; never fails even if the store delete does
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]bool
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		// Fail-soft: the cookie is cleared regardless.
		_ = h.sessions.Invalidate(token)
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200 {object} AuthResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, AuthResponse{User: toUserResponse(currentUser(c))})
}
