package mapper

import (
	"floatchat-be/internal/entity"
	"floatchat-be/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	return &entity.ChatSession{
		Id:        s.Id.Hex(),
		UserId:    s.UserId,
		Title:     s.Title,
		Messages:  m.ExchangesToEntity(s.Messages),
		Version:   s.Version,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ChatSessionToModel leaves Id zero when the entity has none (or a bad one)
// so that the driver assigns a fresh ObjectID on insert.
func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var id primitive.ObjectID
	if s.Id != "" {
		if oid, err := primitive.ObjectIDFromHex(s.Id); err == nil {
			id = oid
		}
	}

	messages := m.ExchangesToModel(s.Messages)
	if messages == nil {
		messages = []model.Exchange{}
	}

	return &model.ChatSession{
		Id:        id,
		UserId:    s.UserId,
		Title:     s.Title,
		Messages:  messages,
		Version:   s.Version,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *ChatMapper) ChatSessionSummaryToEntity(s *model.ChatSessionSummary) *entity.ChatSessionSummary {
	if s == nil {
		return nil
	}

	var first string
	if len(s.Messages) > 0 {
		first = s.Messages[0].UserMessage
	}

	return &entity.ChatSessionSummary{
		Id:               s.Id.Hex(),
		Title:            s.Title,
		FirstUserMessage: first,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// Exchange Mappers

func (m *ChatMapper) ExchangeToModel(e entity.Exchange) model.Exchange {
	var plots []model.Plot
	if len(e.Plots) > 0 {
		plots = make([]model.Plot, len(e.Plots))
		for i, p := range e.Plots {
			plots[i] = model.Plot{
				Title:  p.Title,
				Kind:   p.Kind,
				XLabel: p.XLabel,
				YLabel: p.YLabel,
				X:      p.X,
				Y:      p.Y,
				XType:  p.XType,
				YType:  p.YType,
			}
		}
	}

	return model.Exchange{
		UserMessage: e.UserMessage,
		AIMessage:   e.AIMessage,
		Plots:       plots,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *ChatMapper) ExchangeToEntity(e model.Exchange) entity.Exchange {
	var plots []entity.Plot
	if len(e.Plots) > 0 {
		plots = make([]entity.Plot, len(e.Plots))
		for i, p := range e.Plots {
			plots[i] = entity.Plot{
				Title:  p.Title,
				Kind:   p.Kind,
				XLabel: p.XLabel,
				YLabel: p.YLabel,
				X:      p.X,
				Y:      p.Y,
				XType:  p.XType,
				YType:  p.YType,
			}
		}
	}

	return entity.Exchange{
		UserMessage: e.UserMessage,
		AIMessage:   e.AIMessage,
		Plots:       plots,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *ChatMapper) ExchangesToEntity(list []model.Exchange) []entity.Exchange {
	if list == nil {
		return nil
	}
	out := make([]entity.Exchange, len(list))
	for i, e := range list {
		out[i] = m.ExchangeToEntity(e)
	}
	return out
}

func (m *ChatMapper) ExchangesToModel(list []entity.Exchange) []model.Exchange {
	if list == nil {
		return nil
	}
	out := make([]model.Exchange, len(list))
	for i, e := range list {
		out[i] = m.ExchangeToModel(e)
	}
	return out
}
