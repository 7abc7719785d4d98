package middleware

import "github.com/gofiber/fiber/v3"

// RequireRole gates a route on the role claim the auth middleware put
// in Locals. It must run after AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c fiber.Ctx) error {
		role, _ := c.Locals(CtxRoleKey).(string)
		if role == "" {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}
		if _, ok := allowed[role]; !ok {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}
		return c.Next()
	}
}
