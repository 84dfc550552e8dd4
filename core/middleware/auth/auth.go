package auth

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TokenHeader carries the editor session token on mutating requests.
const TokenHeader = "X-Editor-Token"

// ErrNoPin is returned when no editor PIN is configured at all.
var ErrNoPin = errors.New("editor PIN is not configured, editing is disabled")

// ErrWrongPin is returned on an unlock attempt with a non-matching PIN.
var ErrWrongPin = errors.New("incorrect PIN")

// Config holds configuration for the editor gate.
type Config struct {
	// Pin unlocks editor mode; empty disables editing entirely.
	Pin string
	// SessionTTL is how long an unlock stays valid.
	SessionTTL time.Duration
}

// Gate tracks editor sessions. The dashboard defaults to manager mode
// (read-only); a correct PIN issues a session token that mutating routes
// require until it expires or is explicitly locked.
type Gate struct {
	cfg Config

	mu       sync.Mutex
	sessions map[string]time.Time
}

// New creates an editor gate.
func New(cfg Config) *Gate {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	return &Gate{cfg: cfg, sessions: make(map[string]time.Time)}
}

// Unlock validates the PIN by exact equality and returns a fresh session token.
func (g *Gate) Unlock(pin string) (string, error) {
	if g.cfg.Pin == "" {
		return "", ErrNoPin
	}
	if subtle.ConstantTimeCompare([]byte(pin), []byte(g.cfg.Pin)) != 1 {
		return "", ErrWrongPin
	}

	token := uuid.NewString()
	g.mu.Lock()
	g.sessions[token] = time.Now().Add(g.cfg.SessionTTL)
	g.mu.Unlock()
	return token, nil
}

// Lock revokes a session token. Unknown tokens are a no-op.
func (g *Gate) Lock(token string) {
	g.mu.Lock()
	delete(g.sessions, token)
	g.mu.Unlock()
}

// Valid reports whether a token identifies a live editor session.
func (g *Gate) Valid(token string) bool {
	if token == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	deadline, ok := g.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(deadline) {
		delete(g.sessions, token)
		return false
	}
	return true
}

// RequireEditor returns a middleware that rejects requests without a live
// editor session.
func (g *Gate) RequireEditor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !g.Valid(c.Get(TokenHeader)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "editor mode required, unlock with your PIN first",
			})
		}
		return c.Next()
	}
}

// RegisterRoutes registers the unlock/lock endpoints.
func (g *Gate) RegisterRoutes(app fiber.Router) {
	group := app.Group("/auth")
	group.Post("/unlock", g.handleUnlock)
	group.Post("/lock", g.handleLock)
}

type unlockRequest struct {
	Pin string `json:"pin"`
}

func (g *Gate) handleUnlock(c *fiber.Ctx) error {
	var req unlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	token, err := g.Unlock(req.Pin)
	if err != nil {
		status := fiber.StatusUnauthorized
		if errors.Is(err, ErrNoPin) {
			status = fiber.StatusForbidden
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"token": token})
}

func (g *Gate) handleLock(c *fiber.Ctx) error {
	g.Lock(c.Get(TokenHeader))
	return c.JSON(fiber.Map{"locked": true})
}
