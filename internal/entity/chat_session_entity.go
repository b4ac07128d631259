package entity

import (
	"time"
)

type ChatSession struct {
	Id        string
	UserId    string
	Title     string
	Messages  []Exchange
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Exchange is one user message paired with the AI reply it produced.
type Exchange struct {
	UserMessage string
	AIMessage   string
	Plots       []Plot
	CreatedAt   time.Time
}

type Plot struct {
	Title  string
	Kind   string
	XLabel string
	YLabel string
	X      []interface{}
	Y      []interface{}
	XType  string
	YType  string
}

// ChatSessionSummary is the listing projection of a session.
type ChatSessionSummary struct {
	Id               string
	Title            string
	FirstUserMessage string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
