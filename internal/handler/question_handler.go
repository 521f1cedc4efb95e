package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ekinokr/eventmate-backend/internal/models"
	"github.com/ekinokr/eventmate-backend/internal/service"
	"github.com/ekinokr/eventmate-backend/pkg/utils"
)

type QuestionHandler struct {
	questionService *service.QuestionService
	validator       *utils.Validator
	logger          *zap.Logger
}

func NewQuestionHandler(questionService *service.QuestionService, validator *utils.Validator, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		validator:       validator,
		logger:          logger,
	}
}

func (h *QuestionHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req models.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	questions := h.questionService.GenerateQuestions(req)

	return c.JSON(fiber.Map{
		"success":   true,
		"questions": questions,
	})
}

func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req models.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	userID, ok := c.Locals("userID").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	question, err := h.questionService.SaveQuestion(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidEventID) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
		}
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		h.logger.Error("create question failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Something went wrong"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(question, "Question created successfully"))
}

func (h *QuestionHandler) GetEventQuestions(c *fiber.Ctx) error {
	questions, err := h.questionService.ListQuestionsForEvent(c.Context(), c.Params("eventId"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
		}
		h.logger.Error("list questions failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Something went wrong"))
	}

	return c.JSON(models.SuccessResponse(questions, "Questions retrieved successfully"))
}
