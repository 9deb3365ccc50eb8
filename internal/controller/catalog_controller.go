package controller

import (
	"soulful-home-be/internal/pkg/serverutils"
	"soulful-home-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	Reindex(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog")
	h.Get("/status", c.Status)
	h.Post("/index", c.Reindex)
}

func (c *catalogController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get catalog status", fiber.Map{
		"images":  c.service.Size(),
		"indexed": c.service.Indexed(),
	}))
}

// Reindex queues images missing from the index, e.g. after a failed
// embedding call at startup.
func (c *catalogController) Reindex(ctx *fiber.Ctx) error {
	res, err := c.service.IndexAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Success queue catalog indexing", res))
}
