package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"floatchat-be/internal/dto"
	"floatchat-be/internal/entity"
	"floatchat-be/internal/pkg/apperror"
	"floatchat-be/internal/pkg/logger"
	"floatchat-be/internal/repository/contract"
	"floatchat-be/pkg/conversation"
	"floatchat-be/pkg/events"
	"floatchat-be/pkg/llm"
)

// NewChatSentinel in place of a chat id asks PostMessage to open a session.
const NewChatSentinel = "new"

type IChatService interface {
	PostMessage(ctx context.Context, userId string, chatId string, req *dto.PostMessageRequest) (*dto.ChatResponse, error)
	ListSessions(ctx context.Context, userId string) (*dto.ChatListResponse, error)
	GetSession(ctx context.Context, userId string, chatId string) (*dto.ChatResponse, error)
}

type chatService struct {
	chatRepo      contract.ChatSessionRepository
	llmProvider   llm.LLMProvider
	publisher     IPublisherService
	logger        logger.ILogger
	aiLogger      logger.ILogger
	contextWindow int
}

// NewChatService wires the AI proxy. aiLogger receives prompt/reply traffic
// and is kept apart from the main log.
func NewChatService(
	chatRepo contract.ChatSessionRepository,
	llmProvider llm.LLMProvider,
	publisher IPublisherService,
	log logger.ILogger,
	aiLogger logger.ILogger,
	contextWindow int,
) IChatService {
	return &chatService{
		chatRepo:      chatRepo,
		llmProvider:   llmProvider,
		publisher:     publisher,
		logger:        log,
		aiLogger:      aiLogger,
		contextWindow: contextWindow,
	}
}

func (cs *chatService) PostMessage(ctx context.Context, userId string, chatId string, req *dto.PostMessageRequest) (*dto.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", apperror.ErrValidation)
	}

	var session *entity.ChatSession
	if chatId == NewChatSentinel {
		created, err := cs.createSession(ctx, userId, req.Message)
		if err != nil {
			return nil, err
		}
		session = created
	} else {
		found, err := cs.chatRepo.FindOne(ctx, chatId, userId)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, fmt.Errorf("%w: chat %s", apperror.ErrNotFound, chatId)
		}
		session = found
	}

	history := conversation.ContextWindow(session.Messages, cs.contextWindow)
	prompt := conversation.NewPromptBuilder(history, req.Message).Build()

	var opts []llm.Option
	if req.Mode != nil {
		opts = append(opts, llm.WithMode(*req.Mode))
	}

	started := time.Now()
	reply, err := cs.llmProvider.Generate(ctx, prompt, opts...)
	if err != nil {
		if !errors.Is(err, apperror.ErrUpstream) && !errors.Is(err, apperror.ErrUpstreamTimeout) {
			err = fmt.Errorf("%w: %v", apperror.ErrUpstream, err)
		}
		cs.logger.Error("CHAT", "AI service call failed", map[string]interface{}{
			"chat_id": session.Id,
			"error":   err.Error(),
		})
		return nil, err
	}

	rejected := reply.Rejected
	var charts []llm.Chart
	if reply.Kind() == llm.ReplyTextWithCharts {
		var invalid []error
		charts, invalid = llm.FilterCharts(reply.Charts)
		rejected = append(rejected, invalid...)
	}
	for _, reason := range rejected {
		cs.logger.Warn("CHAT", "Dropped invalid chart from AI reply", map[string]interface{}{
			"chat_id": session.Id,
			"reason":  reason.Error(),
		})
	}

	cs.aiLogger.Info("AI", "Exchange", map[string]interface{}{
		"chat_id":       session.Id,
		"history_turns": len(history) / 2,
		"prompt":        prompt,
		"reply":         reply.Text,
		"charts":        len(charts),
		"latency_ms":    time.Since(started).Milliseconds(),
	})

	exchange := entity.Exchange{
		UserMessage: req.Message,
		AIMessage:   reply.Text,
		Plots:       chartsToPlots(charts),
		CreatedAt:   time.Now().UTC(),
	}

	updated, err := cs.chatRepo.AppendExchange(ctx, session.Id, session.Version, exchange)
	if err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			cs.logger.Warn("CHAT", "Concurrent append lost the race", map[string]interface{}{
				"chat_id": session.Id,
				"version": session.Version,
			})
		}
		return nil, err
	}

	cs.publish(ctx, events.NewChatExchangeAppended(updated.Id, userId, len(updated.Messages), len(exchange.Plots)))

	return &dto.ChatResponse{
		Message: "Message sent successfully",
		Chat:    toExchangeResponses(updated.Messages),
		ChatId:  updated.Id,
	}, nil
}

func (cs *chatService) createSession(ctx context.Context, userId string, firstMessage string) (*entity.ChatSession, error) {
	session := &entity.ChatSession{
		UserId:   userId,
		Title:    conversation.DeriveTitle(firstMessage),
		Messages: []entity.Exchange{},
	}
	if err := cs.chatRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	cs.publish(ctx, events.NewChatSessionCreated(session.Id, userId, session.Title))
	return session, nil
}

func (cs *chatService) ListSessions(ctx context.Context, userId string) (*dto.ChatListResponse, error) {
	summaries, err := cs.chatRepo.FindAllSummaries(ctx, userId)
	if err != nil {
		return nil, err
	}

	chats := make([]dto.ChatSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		chats = append(chats, dto.ChatSummaryResponse{
			Id:        s.Id,
			Title:     conversation.ListingTitle(s.Title, s.FirstUserMessage),
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}

	return &dto.ChatListResponse{
		Message: "Chats fetched successfully",
		Chats:   chats,
	}, nil
}

func (cs *chatService) GetSession(ctx context.Context, userId string, chatId string) (*dto.ChatResponse, error) {
	session, err := cs.chatRepo.FindOne(ctx, chatId, userId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: chat %s", apperror.ErrNotFound, chatId)
	}

	return &dto.ChatResponse{
		Message: "Chat fetched successfully",
		Chat:    toExchangeResponses(session.Messages),
		ChatId:  session.Id,
	}, nil
}

// publish never fails the request; events are auxiliary.
func (cs *chatService) publish(ctx context.Context, event events.Event) {
	if cs.publisher == nil {
		return
	}
	if err := cs.publisher.Publish(ctx, event); err != nil {
		cs.logger.Warn("CHAT", "Failed to publish event", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
	}
}

func chartsToPlots(charts []llm.Chart) []entity.Plot {
	if len(charts) == 0 {
		return nil
	}
	plots := make([]entity.Plot, len(charts))
	for i, c := range charts {
		plots[i] = entity.Plot{
			Title:  c.Title,
			Kind:   c.Kind,
			XLabel: c.XLabel,
			YLabel: c.YLabel,
			X:      c.X,
			Y:      c.Y,
			XType:  c.XType,
			YType:  c.YType,
		}
	}
	return plots
}

func toExchangeResponses(exchanges []entity.Exchange) []dto.ExchangeResponse {
	out := make([]dto.ExchangeResponse, 0, len(exchanges))
	for _, ex := range exchanges {
		resp := dto.ExchangeResponse{
			UserMessage: ex.UserMessage,
			AIMessage:   ex.AIMessage,
		}
		if !ex.CreatedAt.IsZero() {
			createdAt := ex.CreatedAt
			resp.CreatedAt = &createdAt
		}
		for _, p := range ex.Plots {
			resp.Plots = append(resp.Plots, dto.PlotDTO{
				Title:  p.Title,
				Kind:   p.Kind,
				XLabel: p.XLabel,
				YLabel: p.YLabel,
				X:      p.X,
				Y:      p.Y,
				XType:  p.XType,
				YType:  p.YType,
			})
		}
		out = append(out, resp)
	}
	return out
}
