// Package auth materializes the acting principal for each request. There
// is no authentication model here: the dashboard supplies the current
// user id and role flag explicitly via headers, and every command in the
// core takes that actor as a parameter.
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/assetflow/maintenance-service/internal/domain"
	apperrors "github.com/assetflow/maintenance-service/pkg/util"
)

const principalKey = "actor_principal"

// Header names the presentation layer uses to pass the current user.
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
)

// Middleware reads the actor headers and stores the principal.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actorID := strings.TrimSpace(c.Get(HeaderActorID))
		if actorID == "" {
			return apperrors.NewValidationError("missing "+HeaderActorID+" header", nil)
		}
		role := domain.Role(strings.ToLower(strings.TrimSpace(c.Get(HeaderActorRole))))
		if role == "" {
			role = domain.RoleUser
		}
		if !role.Valid() {
			return apperrors.NewValidationError("unknown actor role", map[string]any{"role": string(role)})
		}
		c.Locals(principalKey, domain.Actor{ID: actorID, Role: role})
		return c.Next()
	}
}

// ActorFromContext retrieves the acting principal.
func ActorFromContext(c *fiber.Ctx) (domain.Actor, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return domain.Actor{}, false
	}
	actor, ok := val.(domain.Actor)
	return actor, ok
}

// RequireAdmin guards admin-only commands.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFromContext(c)
		if !ok || !actor.IsAdmin() {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
