package services

import (
	"context"
	"fmt"
	"time"

	"couple-space-backend/internal/models"
	"couple-space-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// QuestionService owns the daily question rotation and answers
type QuestionService struct {
	questionRepo *repository.QuestionRepository
}

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// DailyQuestionView is today's question with the couple's answers. The
// partner's answer is only revealed once both partners have answered.
type DailyQuestionView struct {
	Question      *models.DailyQuestion `json:"question"`
	Date          string                `json:"date"`
	MyAnswer      string                `json:"my_answer"`
	PartnerAnswer string                `json:"partner_answer"`
	BothAnswered  bool                  `json:"both_answered"`
}

// questionIndexFor picks the rotation slot for a calendar day. Day-of-month
// modulo catalog size, matching the mobile client's rotation.
func questionIndexFor(day time.Time, total int) int {
	if total == 0 {
		return 0
	}
	return day.Day() % total
}

// QuestionOfTheDay returns the question for the given date
func (s *QuestionService) QuestionOfTheDay(ctx context.Context, day time.Time) (*models.DailyQuestion, error) {
	questions, err := s.questionRepo.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("question catalog is empty")
	}
	return questions[questionIndexFor(day, len(questions))], nil
}

// GetDailyQuestion assembles today's question with both partners' answers
func (s *QuestionService) GetDailyQuestion(ctx context.Context, coupleID, userID string, day time.Time) (*DailyQuestionView, error) {
	question, err := s.QuestionOfTheDay(ctx, day)
	if err != nil {
		return nil, err
	}

	date := day.Truncate(24 * time.Hour)
	answers, err := s.questionRepo.AnswersForDate(ctx, coupleID, date)
	if err != nil {
		return nil, err
	}

	view := &DailyQuestionView{
		Question: question,
		Date:     date.Format("2006-01-02"),
	}
	var partnerAnswer string
	for _, a := range answers {
		if a.UserID == userID {
			view.MyAnswer = a.Answer
		} else {
			partnerAnswer = a.Answer
		}
	}
	view.BothAnswered = view.MyAnswer != "" && partnerAnswer != ""
	if view.BothAnswered {
		view.PartnerAnswer = partnerAnswer
	}
	return view, nil
}

// AnswerDailyQuestion stores the caller's answer for the given date
func (s *QuestionService) AnswerDailyQuestion(ctx context.Context, coupleID, userID string, day time.Time, answer string) error {
	question, err := s.QuestionOfTheDay(ctx, day)
	if err != nil {
		return err
	}

	return s.questionRepo.UpsertAnswer(ctx, &models.QuestionAnswer{
		ID:           uuid.New().String(),
		QuestionID:   question.ID,
		CoupleID:     coupleID,
		UserID:       userID,
		QuestionDate: day.Truncate(24 * time.Hour),
		Answer:       answer,
		CreatedAt:    time.Now(),
	})
}

// EnsureDefaultQuestions seeds the question catalog once when it is empty
func (s *QuestionService) EnsureDefaultQuestions(ctx context.Context) error {
	count, err := s.questionRepo.CountQuestions(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	questions := []string{
		"What is your favorite memory of us?",
		"What do you admire most about your partner?",
		"What would be our ideal travel destination?",
		"Which song best describes our relationship?",
		"What is your favorite moment of the day with your partner?",
		"What tradition would you like to create together?",
		"What is your favorite way of showing love?",
		"Which shared dream excites you the most?",
	}
	now := time.Now()
	for i, q := range questions {
		err := s.questionRepo.CreateQuestion(ctx, &models.DailyQuestion{
			ID:        uuid.New().String(),
			Question:  q,
			Position:  i,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}
	}
	log.Info().Int("count", len(questions)).Msg("Seeded daily question catalog")
	return nil
}
