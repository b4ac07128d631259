package controller

import (
	"fmt"

	"floatchat-be/internal/dto"
	"floatchat-be/internal/pkg/apperror"
	"floatchat-be/internal/pkg/serverutils"
	"floatchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	ListSessions(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	PostMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	auth        fiber.Handler
	postLimiter fiber.Handler
}

// NewChatController guards every route with auth; postLimiter, when non-nil,
// throttles only the AI proxy.
func NewChatController(chatService service.IChatService, auth fiber.Handler, postLimiter fiber.Handler) IChatController {
	return &chatController{
		chatService: chatService,
		auth:        auth,
		postLimiter: postLimiter,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(c.auth)
	// "/all" must be registered before ":chatId"
	h.Get("/all", c.ListSessions)
	h.Get("/:chatId", c.GetSession)
	if c.postLimiter != nil {
		h.Post("/:chatId", c.postLimiter, c.PostMessage)
	} else {
		h.Post("/:chatId", c.PostMessage)
	}
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	res, err := c.chatService.ListSessions(ctx.UserContext(), serverutils.UserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetSession(ctx.UserContext(), serverutils.UserId(ctx), ctx.Params("chatId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) PostMessage(ctx *fiber.Ctx) error {
	var req dto.PostMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: invalid request body", apperror.ErrValidation)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.PostMessage(ctx.UserContext(), serverutils.UserId(ctx), ctx.Params("chatId"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
