package controller

import (
	"soulful-home-be/internal/dto"
	"soulful-home-be/internal/pkg/serverutils"
	"soulful-home-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	Converse(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type conversationController struct {
	service service.IConversationService
}

func NewConversationController(service service.IConversationService) IConversationController {
	return &conversationController{service: service}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversation")
	h.Post("", c.Converse)
	h.Get("", c.GetAll)
	h.Post("/reset", c.Reset)
}

func (c *conversationController) Converse(ctx *fiber.Ctx) error {
	var req dto.ConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Converse(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process conversation", res))
}

func (c *conversationController) Reset(ctx *fiber.Ctx) error {
	res, err := c.service.Reset(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reset conversation", res))
}

func (c *conversationController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetConversation(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get conversation", res))
}
