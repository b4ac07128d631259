package controller

import (
	"floatchat-be/internal/pkg/serverutils"
	"floatchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	healthService service.IHealthService
}

func NewHealthController(healthService service.IHealthService) IHealthController {
	return &healthController{healthService: healthService}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	res, ok := c.healthService.Check(ctx.UserContext())
	if !ok {
		body := serverutils.SuccessResponse("Degraded", res)
		body.Success = false
		body.Code = fiber.StatusServiceUnavailable
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
	return ctx.JSON(serverutils.SuccessResponse("OK", res))
}
