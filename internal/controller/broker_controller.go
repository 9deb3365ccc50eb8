package controller

import (
	"soulful-home-be/internal/pkg/serverutils"
	"soulful-home-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultFeedLimit = 50
	maxFeedLimit     = 500
)

type IBrokerController interface {
	RegisterRoutes(r fiber.Router)
	Feed(ctx *fiber.Ctx) error
}

type brokerController struct {
	service service.IBrokerService
}

func NewBrokerController(service service.IBrokerService) IBrokerController {
	return &brokerController{service: service}
}

func (c *brokerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/broker")
	h.Get("/feed", c.Feed)
}

func (c *brokerController) Feed(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", defaultFeedLimit)
	offset := ctx.QueryInt("offset", 0)
	if limit <= 0 || limit > maxFeedLimit {
		limit = defaultFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	res, err := c.service.Feed(ctx.UserContext(), limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get broker feed", res))
}
