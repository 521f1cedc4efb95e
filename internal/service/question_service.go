package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ekinokr/eventmate-backend/internal/models"
)

var ErrInvalidEventID = errors.New("invalid event id")

const defaultGenerateCount = 3

// questionPool is the fixed candidate list behind GenerateQuestions.
// TODO: replace with a real generator behind the same signature.
var questionPool = []models.GeneratedQuestion{
	{
		Question:   "If you could travel anywhere tomorrow, where would you go?",
		Category:   "Travel",
		Difficulty: 2,
		FollowUp:   "What draws you to that place?",
	},
	{
		Question:   "What is a skill you picked up in the last year?",
		Category:   "Personal Growth",
		Difficulty: 3,
		FollowUp:   "What made you start?",
	},
	{
		Question:   "Which book or film changed the way you think?",
		Category:   "Culture",
		Difficulty: 3,
		FollowUp:   "Would you recommend it to the group?",
	},
	{
		Question:   "What is the best meal you have ever had?",
		Category:   "Food",
		Difficulty: 1,
		FollowUp:   "Could you cook it yourself?",
	},
	{
		Question:   "What project are you most proud of?",
		Category:   "Work",
		Difficulty: 4,
		FollowUp:   "What nearly went wrong?",
	},
}

// QuestionRepository persists discussion questions and reads them back by
// event in natural storage order.
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) (*models.Question, error)
	ListByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Question, error)
}

type QuestionService struct {
	questionRepo QuestionRepository
}

func NewQuestionService(questionRepo QuestionRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
	}
}

// GenerateQuestions returns up to count candidates from the fixed pool.
// Topic and difficulty, when set, override every candidate's category and
// difficulty. Deterministic, no persistence.
func (s *QuestionService) GenerateQuestions(req models.GenerateQuestionsRequest) []models.GeneratedQuestion {
	count := req.Count
	if count <= 0 {
		count = defaultGenerateCount
	}
	if count > len(questionPool) {
		count = len(questionPool)
	}

	questions := make([]models.GeneratedQuestion, count)
	for i := 0; i < count; i++ {
		q := questionPool[i]
		if req.Topic != "" {
			q.Category = req.Topic
		}
		if req.Difficulty != 0 {
			q.Difficulty = req.Difficulty
		}
		questions[i] = q
	}
	return questions
}

// SaveQuestion persists a question for the caller. The event reference is
// not checked against the events collection.
func (s *QuestionService) SaveQuestion(ctx context.Context, userID string, req models.QuestionRequest) (*models.Question, error) {
	createdBy, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	question := &models.Question{
		Question:   req.Question,
		Category:   req.Category,
		Difficulty: req.Difficulty,
		FollowUp:   req.FollowUp,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now().UTC(),
	}
	if question.Difficulty == 0 {
		question.Difficulty = 3
	}
	if req.EventID != "" {
		eventID, err := primitive.ObjectIDFromHex(req.EventID)
		if err != nil {
			return nil, ErrInvalidEventID
		}
		question.EventID = eventID
	}

	return s.questionRepo.Create(ctx, question)
}

func (s *QuestionService) ListQuestionsForEvent(ctx context.Context, eventID string) ([]models.Question, error) {
	objectID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, ErrEventNotFound
	}
	return s.questionRepo.ListByEvent(ctx, objectID)
}
