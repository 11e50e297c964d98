package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	mw "github.com/lucasforesti/pilotoapi/middleware"
)

type previewRequest struct {
	Secret string `json:"secret"`
}

// PreviewSignin exchanges the shared preview secret for a short-lived token.
// Editors use it to see draft content before publishing.
func (h *Handler) PreviewSignin(c echo.Context) error {
	var req previewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(h.PreviewKey) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "preview disabled")
	}
	if subtle.ConstantTimeCompare([]byte(req.Secret), h.PreviewKey) != 1 {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	claims := &mw.Claims{
		Scope: "preview",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(4 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.PreviewKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"token": tokenString})
}
