package middleware

import (
	"net/http"
	"strings"

	"dashboard-api/internal/model"
	"dashboard-api/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	ContextUserKey  = "user"
	ContextTokenKey = "token"
)

// TokenVerifier 由 service.TokenService 實作
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "access token required")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return strings.TrimSpace(parts[1]), nil
}

func extractClaims(c echo.Context, v TokenVerifier) (*service.Claims, string, error) {
	token, err := bearerToken(c)
	if err != nil {
		return nil, "", err
	}
	claims, err := v.Verify(token)
	if err != nil {
		return nil, "", echo.NewHTTPError(service.StatusOf(err), service.PublicMessage(err)).SetInternal(err)
	}
	return claims, token, nil
}

// RequireAuth 驗證 Bearer token，成功後把 claims 與 token 放進 context
func RequireAuth(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, token, err := extractClaims(c, v)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			c.Set(ContextTokenKey, token)
			return next(c)
		}
	}
}

// OptionalAuth 有 token 且有效時放入 claims，任何驗證錯誤都當作匿名
func OptionalAuth(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, token, err := extractClaims(c, v); err == nil {
				c.Set(ContextUserKey, claims)
				c.Set(ContextTokenKey, token)
			}
			return next(c)
		}
	}
}

// RequireRole 必須放在 RequireAuth 之後
func RequireRole(role model.Role) echo.MiddlewareFunc {
	return RequireAnyRole(role)
}

// RequireAnyRole 必須放在 RequireAuth 之後
func RequireAnyRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			for _, r := range roles {
				if claims.Role == r {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
		}
	}
}

// ClaimsFrom 取出 RequireAuth / OptionalAuth 放入的 claims
func ClaimsFrom(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.Claims)
	return claims, ok && claims != nil
}

// TokenFrom 取出驗證過的原始 token
func TokenFrom(c echo.Context) string {
	token, _ := c.Get(ContextTokenKey).(string)
	return token
}
