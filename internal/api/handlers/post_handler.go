package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/influenceos/agent-api/internal/models"
	"github.com/influenceos/agent-api/internal/service"
	"github.com/influenceos/agent-api/internal/transfer"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(s service.PostService) *PostHandler {
	return &PostHandler{s: s}
}

func (h *PostHandler) GeneratePost(c *fiber.Ctx) error {
	var req transfer.PostGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewInvalidRequestError("invalid request body"))
	}

	post, err := h.s.Generate(c.Context(), c.Params("user_id"), req.Industry)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("post_id")
	if err != nil || postID < 1 {
		return models.RespondWithError(c, models.NewInvalidRequestError("post id must be a positive integer"))
	}

	var update transfer.PostUpdate
	if err := c.BodyParser(&update); err != nil {
		return models.RespondWithError(c, models.NewInvalidRequestError("invalid request body"))
	}

	post, err := h.s.Update(c.Context(), uint(postID), &update)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

func (h *PostHandler) ListUserPosts(c *fiber.Ctx) error {
	posts, err := h.s.ListByUser(c.Context(), c.Params("user_id"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(posts)
}
