package implementation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"floatchat-be/internal/entity"
	"floatchat-be/internal/mapper"
	"floatchat-be/internal/model"
	"floatchat-be/internal/pkg/apperror"
	"floatchat-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type ChatSessionRepositoryImpl struct {
	collection *mongo.Collection
	mapper     *mapper.ChatMapper
}

func NewChatSessionRepository(db *mongo.Database, collectionName string) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		collection: db.Collection(collectionName),
		mapper:     mapper.NewChatMapper(),
	}
}

// EnsureChatSessionIndexes backs the per-user listing sorted by last update.
func EnsureChatSessionIndexes(ctx context.Context, db *mongo.Database, collectionName string) error {
	_, err := db.Collection(collectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "updatedAt", Value: -1}},
		Options: options.Index().SetName("userId_updatedAt"),
	})
	return err
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperror.ErrStore, op, err)
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = session.CreatedAt
	session.Version = 0

	m := r.mapper.ChatSessionToModel(session)
	m.Id = primitive.NilObjectID

	res, err := r.collection.InsertOne(ctx, m)
	if err != nil {
		return storeError("insert chat", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		m.Id = oid
	}

	*session = *r.mapper.ChatSessionToEntity(m)
	return nil
}

func (r *ChatSessionRepositoryImpl) FindOne(ctx context.Context, id string, userId string) (*entity.ChatSession, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var m model.ChatSession
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "userId": userId}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, storeError("find chat", err)
	}
	return r.mapper.ChatSessionToEntity(&m), nil
}

func (r *ChatSessionRepositoryImpl) FindAllSummaries(ctx context.Context, userId string) ([]*entity.ChatSessionSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetProjection(bson.M{
			"title":     1,
			"createdAt": 1,
			"updatedAt": 1,
			"messages":  bson.M{"$slice": 1}, // only needed for the title fallback
		})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return nil, storeError("list chats", err)
	}
	defer cursor.Close(ctx)

	var models []*model.ChatSessionSummary
	if err := cursor.All(ctx, &models); err != nil {
		return nil, storeError("decode chats", err)
	}

	entities := make([]*entity.ChatSessionSummary, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ChatSessionSummaryToEntity(m)
	}
	return entities, nil
}

func (r *ChatSessionRepositoryImpl) AppendExchange(ctx context.Context, id string, expectedVersion int64, exchange entity.Exchange) (*entity.ChatSession, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: chat %s", apperror.ErrNotFound, id)
	}

	now := time.Now().UTC()
	if exchange.CreatedAt.IsZero() {
		exchange.CreatedAt = now
	}

	filter := bson.M{"_id": oid, "version": expectedVersion}
	update := bson.M{
		"$push": bson.M{"messages": r.mapper.ExchangeToModel(exchange)},
		"$inc":  bson.M{"version": 1},
		"$set":  bson.M{"updatedAt": now},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m model.ChatSession
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: chat %s was modified by another request", apperror.ErrConflict, id)
		}
		return nil, storeError("append exchange", err)
	}
	return r.mapper.ChatSessionToEntity(&m), nil
}

func (r *ChatSessionRepositoryImpl) Ping(ctx context.Context) error {
	return r.collection.Database().Client().Ping(ctx, readpref.Primary())
}
