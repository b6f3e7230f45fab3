package controller

import (
	"readme-be/internal/pkg/serverutils"
	"readme-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router, apiKeyGuard fiber.Handler)
	Show(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	RunBatch(ctx *fiber.Ctx) error
}

type recommendationController struct {
	service service.IRecommendationService
}

func NewRecommendationController(service service.IRecommendationService) IRecommendationController {
	return &recommendationController{service: service}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router, apiKeyGuard fiber.Handler) {
	h := r.Group("/recommendations")
	h.Get("/:userId", c.Show)
	h.Post("/:userId/refresh", apiKeyGuard, c.Refresh)
	h.Post("/run", apiKeyGuard, c.RunBatch)
}

func (c *recommendationController) Show(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid user id"))
	}

	res, err := c.service.Show(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "user not found"))
	}
	return ctx.JSON(res)
}

func (c *recommendationController) Refresh(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid user id"))
	}

	res, err := c.service.RefreshUser(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
	}
	return ctx.JSON(res)
}

func (c *recommendationController) RunBatch(ctx *fiber.Ctx) error {
	res, err := c.service.RunBatch(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}
