package middleware

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

// JWTMiddleware returns the configured JWT middleware for HTTP requests.
// On success it copies user_id and role claims into the echo context so
// handlers can pass the acting identity into use case calls explicitly.
func JWTMiddleware(cfg models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.Secret),
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if userID, exists := claims["user_id"]; exists {
					c.Set("user_id", userID)
				}
				if role, exists := claims["role"]; exists {
					c.Set("role", role)
				}
			}
		},
	})
}

// ActorID extracts the authenticated profile id from the echo context
func ActorID(c echo.Context) (uuid.UUID, error) {
	raw := c.Get("user_id")
	if raw == nil {
		return uuid.Nil, fmt.Errorf("missing user identity")
	}
	id, err := uuid.Parse(fmt.Sprintf("%v", raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid user identity")
	}
	return id, nil
}

// ActorRole extracts the authenticated role from the echo context
func ActorRole(c echo.Context) string {
	if role := c.Get("role"); role != nil {
		return fmt.Sprintf("%v", role)
	}
	return ""
}
