package serverutils

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"floatchat-be/internal/config"
	"floatchat-be/internal/pkg/apperror"
	"floatchat-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Message string `json:"message" validate:"notblank,max=10"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Message: "hi"}))

	err := ValidateRequest(sampleRequest{Message: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
	assert.Contains(t, err.Error(), "message is required")

	err = ValidateRequest(sampleRequest{Message: "far too long for this"})
	assert.Contains(t, err.Error(), "message must be at most 10 characters")
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestErrorHandlerMapsKinds(t *testing.T) {
	tests := []struct {
		err         error
		wantStatus  int
		wantMessage string
	}{
		{err: fmt.Errorf("%w: message is required", apperror.ErrValidation), wantStatus: 400, wantMessage: "validation failed: message is required"},
		{err: fmt.Errorf("%w: chat abc", apperror.ErrNotFound), wantStatus: 404, wantMessage: "not found: chat abc"},
		{err: apperror.ErrConflict, wantStatus: 409, wantMessage: "conflict"},
		{err: apperror.ErrUpstream, wantStatus: 502, wantMessage: "upstream AI service failed"},
		{err: apperror.ErrUpstreamTimeout, wantStatus: 504, wantMessage: "upstream AI service timed out"},
		{err: apperror.ErrStore, wantStatus: 503, wantMessage: "data store unavailable"},
		{err: errors.New("pq: secret detail"), wantStatus: 500, wantMessage: "Internal server error"},
		{err: fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), wantStatus: 405, wantMessage: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMessage, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.NewNopLogger())})
			app.Get("/", func(ctx *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeBody(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(tt.wantStatus), body["code"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func protectedApp(t *testing.T, cfg config.AuthConfig) *fiber.App {
	t.Helper()
	mw, err := NewJwtMiddleware(cfg)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/me", mw, func(ctx *fiber.Ctx) error {
		return ctx.SendString(UserId(ctx))
	})
	return app
}

func callMe(t *testing.T, app *fiber.App, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(raw)
}

func signHS(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJwtMiddlewareHS256(t *testing.T) {
	app := protectedApp(t, config.AuthConfig{JwtSecret: "s3cret"})
	exp := time.Now().Add(time.Hour).Unix()

	status, body := callMe(t, app, signHS(t, "s3cret", jwt.MapClaims{"sub": "user_2abc", "exp": exp}))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "user_2abc", body)

	status, body = callMe(t, app, signHS(t, "s3cret", jwt.MapClaims{"user_id": "legacy-1", "exp": exp}))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "legacy-1", body)

	status, _ = callMe(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = callMe(t, app, signHS(t, "other", jwt.MapClaims{"sub": "x", "exp": exp}))
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = callMe(t, app, signHS(t, "s3cret", jwt.MapClaims{"sub": "x", "exp": time.Now().Add(-time.Minute).Unix()}))
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = callMe(t, app, signHS(t, "s3cret", jwt.MapClaims{"exp": exp}))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestJwtMiddlewareRS256(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	app := protectedApp(t, config.AuthConfig{JwtPublicKey: pubPEM, JwtSecret: "ignored"})

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sub": "user_rs",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(priv)
	require.NoError(t, err)

	status, body := callMe(t, app, token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "user_rs", body)

	// HS256 tokens are refused once RS256 is configured
	status, _ = callMe(t, app, signHS(t, "ignored", jwt.MapClaims{"sub": "x", "exp": time.Now().Add(time.Hour).Unix()}))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestNewJwtMiddlewareNeedsKey(t *testing.T) {
	_, err := NewJwtMiddleware(config.AuthConfig{})
	assert.Error(t, err)

	_, err = NewJwtMiddleware(config.AuthConfig{JwtPublicKey: "not a pem"})
	assert.Error(t, err)
}

func TestRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Get("/", NewRateLimiter(2), func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusNoContent) })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
