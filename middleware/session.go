package middleware

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "session"
	sessionLocal  = "session"
)

// SessionConfig configures the Session middleware.
type SessionConfig struct {
	Secret []byte
	TTL    time.Duration
	// Secure marks the cookie HTTPS only.
	Secure bool
}

// Session makes sure every request belongs to a session. A valid cookie
// keeps its session; a missing, invalid or expired one starts a new session
// and sets a fresh cookie. The session key is available through SessionKey.
func Session(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key, err := parseSessionToken(c.Cookies(SessionCookie), cfg.Secret); err == nil {
			c.Locals(sessionLocal, key)
			return c.Next()
		}

		key := uuid.NewString()
		expires := time.Now().Add(cfg.TTL)
		token, err := signSessionToken(key, expires, cfg.Secret)
		if err != nil {
			log.Printf("Error signing session token: %v\n", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to start session",
			})
		}

		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    token,
			Path:     "/",
			Expires:  expires,
			HTTPOnly: true,
			Secure:   cfg.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(sessionLocal, key)
		return c.Next()
	}
}

// SessionKey returns the key of the current session, or "" outside the
// Session middleware.
func SessionKey(c *fiber.Ctx) string {
	key, _ := c.Locals(sessionLocal).(string)
	return key
}

func signSessionToken(key string, expires time.Time, secret []byte) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   key,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parseSessionToken(cookie string, secret []byte) (string, error) {
	if cookie == "" {
		return "", errors.New("no session cookie")
	}

	token, err := jwt.ParseWithClaims(cookie, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session claims")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", err
	}
	return claims.Subject, nil
}
