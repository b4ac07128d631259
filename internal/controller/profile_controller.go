package controller

import (
	"floatchat-be/internal/pkg/serverutils"
	"floatchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	GetProfilesForDate(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
}

func NewProfileController(profileService service.IProfileService) IProfileController {
	return &profileController{profileService: profileService}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profiles")
	h.Get("/:date", c.GetProfilesForDate)
}

func (c *profileController) GetProfilesForDate(ctx *fiber.Ctx) error {
	res, err := c.profileService.GetProfilesForDate(ctx.UserContext(), ctx.Params("date"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profiles fetched successfully", res))
}
