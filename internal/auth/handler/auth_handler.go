package handler

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rcatalasan0/491-Project/internal/auth/dto"
	"github.com/rcatalasan0/491-Project/internal/auth/service"
	autherror "github.com/rcatalasan0/491-Project/internal/errors"
)

type AuthHandler struct {
	userService *service.UserService
	tokens      service.TokenGenerator
}

func NewAuthHandler(userService *service.UserService, tokens service.TokenGenerator) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return writeError(c, autherror.Validation("invalid input"))
	}

	input.IPAddress = c.IP()

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return writeError(c, autherror.Validation("invalid input"))
	}

	input.IPAddress = c.IP()

	out, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// RequireAuth verifies the Bearer token and stores its claims in the
// request context under "claims".
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			return writeError(c, autherror.Authentication("missing or malformed authorization header"))
		}

		claims, err := h.tokens.Verify(tokenString)
		if err != nil {
			return writeError(c, autherror.Authentication("invalid or expired token"))
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}

// writeError maps an error kind to its HTTP status and serializes the
// structured {kind, message} body. Unrecognized errors become opaque 500s.
func writeError(c *fiber.Ctx, err error) error {
	kind, ok := autherror.KindOf(err)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"kind":    "InternalError",
			"message": "internal server error",
		})
	}

	return c.Status(statusForKind(kind)).JSON(fiber.Map{
		"kind":    string(kind),
		"message": err.Error(),
	})
}

func statusForKind(kind autherror.Kind) int {
	switch kind {
	case autherror.KindValidation:
		return fiber.StatusBadRequest
	case autherror.KindConflict:
		return fiber.StatusConflict
	case autherror.KindAuthentication:
		return fiber.StatusUnauthorized
	case autherror.KindRateLimited:
		return fiber.StatusTooManyRequests
	case autherror.KindStoreUnavailable:
		return fiber.StatusServiceUnavailable
	case autherror.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
