package serverutils

import (
	"crypto/rsa"
	"fmt"
	"strings"

	"floatchat-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const UserIdLocalKey = "user_id"

// NewJwtMiddleware verifies bearer tokens issued by the auth provider. With a
// PEM public key configured tokens must be RS256, otherwise HS256 against the
// shared secret. The owner id comes from "sub", falling back to "user_id".
func NewJwtMiddleware(cfg config.AuthConfig) (fiber.Handler, error) {
	var (
		key     interface{}
		methods []string
	)

	switch {
	case cfg.JwtPublicKey != "":
		pub, err := parsePublicKey(cfg.JwtPublicKey)
		if err != nil {
			return nil, err
		}
		key, methods = pub, []string{jwt.SigningMethodRS256.Alg()}
	case cfg.JwtSecret != "":
		key, methods = []byte(cfg.JwtSecret), []string{jwt.SigningMethodHS256.Alg()}
	default:
		return nil, fmt.Errorf("either JWT_PUBLIC_KEY or JWT_SECRET must be set")
	}

	parser := jwt.NewParser(jwt.WithValidMethods(methods), jwt.WithExpirationRequired())

	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}
		tokenStr := strings.TrimSpace(authHeader[7:])

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return key, nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		userId := claimString(claims, "sub")
		if userId == "" {
			userId = claimString(claims, "user_id")
		}
		if userId == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid claims"))
		}

		ctx.Locals(UserIdLocalKey, userId)
		return ctx.Next()
	}, nil
}

// UserId returns the owner id stored by the JWT middleware.
func UserId(ctx *fiber.Ctx) string {
	userId, _ := ctx.Locals(UserIdLocalKey).(string)
	return userId
}

func claimString(claims jwt.MapClaims, name string) string {
	v, _ := claims[name].(string)
	return v
}

func parsePublicKey(pemText string) (*rsa.PublicKey, error) {
	// env files often carry the PEM on one line with literal \n
	pemText = strings.ReplaceAll(pemText, `\n`, "\n")
	pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemText))
	if err != nil {
		return nil, fmt.Errorf("parse JWT_PUBLIC_KEY: %w", err)
	}
	return pub, nil
}
