package controller

import (
	"soulful-home-be/internal/constant"
	"soulful-home-be/internal/entity"
	"soulful-home-be/internal/pkg/serverutils"
	"soulful-home-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
	PreviewSample(ctx *fiber.Ctx) error
}

type reportController struct {
	service service.IReportService
}

func NewReportController(service service.IReportService) IReportController {
	return &reportController{service: service}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	r.Post("/generate-report", c.Generate)
	r.Get("/report", c.Show)

	s := r.Group("/search")
	s.Post("/preview", c.Preview)
	s.Get("/preview", c.PreviewSample)
}

func (c *reportController) Generate(ctx *fiber.Ctx) error {
	res, err := c.service.GenerateReport(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate report", res))
}

func (c *reportController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.FetchReport(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get report", res))
}

func (c *reportController) Preview(ctx *fiber.Ctx) error {
	var req entity.UserReports
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body", err)
	}

	res, err := c.service.Preview(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search preview", res))
}

// PreviewSample runs the matcher on a fixed persona, handy for checking the
// catalog index without completing a quiz.
func (c *reportController) PreviewSample(ctx *fiber.Ctx) error {
	sample := constant.SamplePersona()
	res, err := c.service.Preview(ctx.UserContext(), &sample)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search preview", res))
}
