package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/influenceos/agent-api/internal/models"
	"github.com/influenceos/agent-api/internal/service"
)

type UserHandler struct {
	s service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{s: s}
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.s.GetUserInfo(c.Context(), c.Params("user_id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) CreateTestUser(c *fiber.Ctx) error {
	user, err := h.s.CreateTestUser(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}
