// Package middleware holds the Echo middleware for draft-preview requests.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// PreviewFlag is the context key set on requests carrying a valid preview token.
const PreviewFlag = "preview"

// Claims extends jwt.RegisteredClaims with the preview scope.
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Preview returns an Echo middleware that validates the Authorization bearer
// token using the provided signing key and flags the request for draft
// content. Routes behind it serve drafts from the live host instead of the
// published CDN view.
func Preview(key []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
			if token == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "missing authorization header")
			}

			claims := &Claims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				return key, nil
			})
			if err != nil {
				// jwt/v5 wraps its sentinel errors.
				if errors.Is(err, jwt.ErrSignatureInvalid) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token signature")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			if !tkn.Valid || claims.Scope != "preview" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(PreviewFlag, true)
			return next(c)
		}
	}
}
