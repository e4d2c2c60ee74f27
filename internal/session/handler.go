package session

import (
	"errors"
	"net/http"
	"os"

	"pizzadash/internal/middleware"
	"pizzadash/internal/notify"

	"github.com/gin-gonic/gin"
)

// session cookie lifetime, matches the backend token validity
const cookieMaxAge = 60 * 60 * 24 * 30

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// POST /session
// --------------------------------------------------
//

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrMissingCredentials) {
			c.JSON(http.StatusBadRequest, notify.Warning("Preencha email e senha!"))
			return
		}
		c.JSON(http.StatusUnauthorized, notify.Error("Falha ao entrar, verifique suas credenciais!"))
		return
	}

	secure := os.Getenv("APP_ENV") == "production"
	// httpOnly stays false: the token is a client-accessible cookie
	c.SetCookie(middleware.CookieName, token, cookieMaxAge, "/", "", secure, false)

	c.JSON(http.StatusOK, gin.H{"token": token})
}

//
// --------------------------------------------------
// POST /session/logout
// --------------------------------------------------
//

func (h *Handler) Logout(c *gin.Context) {
	secure := os.Getenv("APP_ENV") == "production"
	c.SetCookie(middleware.CookieName, "", -1, "/", "", secure, false)
	c.JSON(http.StatusOK, notify.Success("Sessão encerrada!"))
}
