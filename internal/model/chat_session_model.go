package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatSession is the document stored in the chats collection. Exchanges are
// embedded so that an append is a single-document update.
type ChatSession struct {
	Id        primitive.ObjectID `bson:"_id,omitempty"`
	UserId    string             `bson:"userId"`
	Title     string             `bson:"title"`
	Messages  []Exchange         `bson:"messages"`
	Version   int64              `bson:"version"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type Exchange struct {
	UserMessage string    `bson:"userMessage"`
	AIMessage   string    `bson:"AIMessage"`
	Plots       []Plot    `bson:"plots,omitempty"`
	CreatedAt   time.Time `bson:"createdAt"`
}

type Plot struct {
	Title  string        `bson:"title"`
	Kind   string        `bson:"kind"`
	XLabel string        `bson:"x_label"`
	YLabel string        `bson:"y_label"`
	X      []interface{} `bson:"x"`
	Y      []interface{} `bson:"y"`
	XType  string        `bson:"x_type,omitempty"`
	YType  string        `bson:"y_type,omitempty"`
}

// ChatSessionSummary is what the listing projection decodes into.
type ChatSessionSummary struct {
	Id        primitive.ObjectID `bson:"_id"`
	Title     string             `bson:"title"`
	Messages  []Exchange         `bson:"messages"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
