package dto

import (
	"time"
)

type PostMessageRequest struct {
	Message string `json:"message" validate:"notblank,max=4000"`
	Mode    *int   `json:"mode,omitempty" validate:"omitempty,min=0"`
}

type PlotDTO struct {
	Title  string        `json:"title"`
	Kind   string        `json:"kind"`
	XLabel string        `json:"x_label"`
	YLabel string        `json:"y_label"`
	X      []interface{} `json:"x"`
	Y      []interface{} `json:"y"`
	XType  string        `json:"x_type,omitempty"`
	YType  string        `json:"y_type,omitempty"`
}

type ExchangeResponse struct {
	UserMessage string     `json:"userMessage"`
	AIMessage   string     `json:"AIMessage"`
	Plots       []PlotDTO  `json:"plots,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// ChatResponse is returned by both GET and POST /chat/:chatId.
type ChatResponse struct {
	Message string             `json:"message"`
	Chat    []ExchangeResponse `json:"chat"`
	ChatId  string             `json:"chatId"`
}

type ChatSummaryResponse struct {
	Id        string    `json:"_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ChatListResponse struct {
	Message string                `json:"message"`
	Chats   []ChatSummaryResponse `json:"chats"`
}
