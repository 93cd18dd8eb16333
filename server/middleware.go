package server

import (
	"net/http"
	"strings"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/labstack/echo/v4"
)

// authMiddleware checks for a valid session token and stores the owning
// user's id on the request context
func (s *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get("Authorization")
		if auth == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authorization required"})
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		if token == auth {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authorization format"})
		}

		var session model.Session
		err := s.db.QueryRow(`
			SELECT id, user_id, token, expires_at FROM sessions WHERE token = $1`,
			token,
		).Scan(&session.ID, &session.UserID, &session.Token, &session.ExpiresAt)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		}

		if session.IsExpired() {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token expired"})
		}

		c.Set("user_id", session.UserID)
		c.Set("token", session.Token)
		return next(c)
	}
}
