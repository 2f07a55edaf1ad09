package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dashboard-api/internal/model"
	"dashboard-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newTokens() *service.TokenService {
	return service.NewTokenService(service.TokenConfig{Secret: "testsecret", TTL: time.Minute})
}

func issue(t *testing.T, s *service.TokenService, role model.Role) string {
	t.Helper()
	tok, _, err := s.Issue(service.Identity{UserID: "u1", Email: "a@x.com", Role: role})
	require.NoError(t, err)
	return tok
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he), "expected *echo.HTTPError, got %v", err)
	return he.Code
}

func TestExtractClaims(t *testing.T) {
	tokens := newTokens()

	// missing header
	ctx, _ := newContext("")
	_, _, err := extractClaims(ctx, tokens)
	require.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	// bad format
	for _, h := range []string{"BadHeader", "Basic abc", "Bearer "} {
		ctx, _ = newContext(h)
		_, _, err = extractClaims(ctx, tokens)
		require.Equal(t, http.StatusUnauthorized, statusOf(t, err), h)
	}

	// invalid token
	ctx, _ = newContext("Bearer invalid")
	_, _, err = extractClaims(ctx, tokens)
	require.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	// valid token
	tok := issue(t, tokens, model.RoleAdmin)
	ctx, _ = newContext("bearer " + tok)
	claims, raw, err := extractClaims(ctx, tokens)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, model.RoleAdmin, claims.Role)
	require.Equal(t, tok, raw)
}

func TestExtractClaimsMissingSecret(t *testing.T) {
	tok := issue(t, newTokens(), model.RoleUser)
	ctx, _ := newContext("Bearer " + tok)
	_, _, err := extractClaims(ctx, newTokens().WithSecret(""))
	require.Equal(t, http.StatusInternalServerError, statusOf(t, err))
}

func TestRequireAuth(t *testing.T) {
	tokens := newTokens()
	tok := issue(t, tokens, model.RoleUser)

	// success path
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(tokens)(func(c echo.Context) error {
		called = true
		cl, ok := ClaimsFrom(c)
		require.True(t, ok)
		require.Equal(t, "u1", cl.UserID)
		require.Equal(t, tok, TokenFrom(c))
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token
	ctx, _ = newContext("")
	called = false
	err := RequireAuth(tokens)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestOptionalAuth(t *testing.T) {
	tokens := newTokens()
	var seen *service.Claims
	next := func(c echo.Context) error {
		seen, _ = ClaimsFrom(c)
		return nil
	}

	ctx, _ := newContext("")
	require.NoError(t, OptionalAuth(tokens)(next)(ctx))
	require.Nil(t, seen)

	ctx, _ = newContext("Bearer garbage")
	require.NoError(t, OptionalAuth(tokens)(next)(ctx))
	require.Nil(t, seen)

	ctx, _ = newContext("Bearer " + issue(t, tokens, model.RoleUser))
	require.NoError(t, OptionalAuth(tokens)(next)(ctx))
	require.NotNil(t, seen)
	require.Equal(t, "u1", seen.UserID)
}

func TestRequireRole(t *testing.T) {
	tokens := newTokens()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	admin := RequireAuth(tokens)(RequireRole(model.RoleAdmin)(ok))

	ctx, rec := newContext("Bearer " + issue(t, tokens, model.RoleAdmin))
	require.NoError(t, admin(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)

	ctx, _ = newContext("Bearer " + issue(t, tokens, model.RoleUser))
	require.Equal(t, http.StatusForbidden, statusOf(t, admin(ctx)))

	// 沒有經過 RequireAuth
	ctx, _ = newContext("")
	require.Equal(t, http.StatusUnauthorized, statusOf(t, RequireRole(model.RoleAdmin)(ok)(ctx)))
}

func TestRequireAnyRole(t *testing.T) {
	tokens := newTokens()
	ok := func(c echo.Context) error { return nil }
	h := RequireAuth(tokens)(RequireAnyRole(model.RoleAdmin, model.RoleUser)(ok))

	ctx, _ := newContext("Bearer " + issue(t, tokens, model.RoleUser))
	require.NoError(t, h(ctx))

	ctx, _ = newContext("Bearer " + issue(t, tokens, model.Role("guest")))
	require.Equal(t, http.StatusForbidden, statusOf(t, h(ctx)))
}
