package controller

import (
	"readme-be/internal/pkg/serverutils"
	"readme-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// taggingController exposes the manual triggers for the batch pipeline that
// the scheduler otherwise runs on its nightly schedule.
type ITaggingController interface {
	RegisterRoutes(r fiber.Router, apiKeyGuard fiber.Handler)
	TagBook(ctx *fiber.Ctx) error
	RunBatch(ctx *fiber.Ctx) error
}

type taggingController struct {
	service service.ITaggingService
}

func NewTaggingController(service service.ITaggingService) ITaggingController {
	return &taggingController{service: service}
}

func (c *taggingController) RegisterRoutes(r fiber.Router, apiKeyGuard fiber.Handler) {
	h := r.Group("/tagging", apiKeyGuard)
	h.Post("/books/:id", c.TagBook)
	h.Post("/run", c.RunBatch)
}

func (c *taggingController) TagBook(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid book id"))
	}

	res, err := c.service.TagBook(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *taggingController) RunBatch(ctx *fiber.Ctx) error {
	res, err := c.service.RunBatch(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}
