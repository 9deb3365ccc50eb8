package controller

import (
	"soulful-home-be/internal/dto"
	"soulful-home-be/internal/pkg/serverutils"
	"soulful-home-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISelectionController interface {
	RegisterRoutes(r fiber.Router)
	Record(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type selectionController struct {
	service service.ISelectionService
}

func NewSelectionController(service service.ISelectionService) ISelectionController {
	return &selectionController{service: service}
}

func (c *selectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/visual-selection")
	h.Post("", c.Record)
	h.Get("", c.GetAll)
}

func (c *selectionController) Record(ctx *fiber.Ctx) error {
	var req dto.RecordSelectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RecordSelection(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record selection", res))
}

func (c *selectionController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetSelections(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get selections", res))
}
