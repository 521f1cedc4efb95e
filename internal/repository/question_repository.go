package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ekinokr/eventmate-backend/internal/models"
)

type QuestionRepository struct {
	collection *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{
		collection: db.Collection("questions"),
	}
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) (*models.Question, error) {
	res, err := r.collection.InsertOne(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}
	question.ID = res.InsertedID.(primitive.ObjectID)
	return question, nil
}

func (r *QuestionRepository) ListByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Question, error) {
	cur, err := r.collection.Find(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer cur.Close(ctx)

	questions := []models.Question{}
	for cur.Next(ctx) {
		var question models.Question
		if err := cur.Decode(&question); err != nil {
			return nil, fmt.Errorf("decode question: %w", err)
		}
		questions = append(questions, question)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list questions cursor: %w", err)
	}
	return questions, nil
}
