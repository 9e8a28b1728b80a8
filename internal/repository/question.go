package repository

import (
	"context"
	"fmt"
	"time"

	"couple-space-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// QuestionRepository handles database operations for daily questions and answers
type QuestionRepository struct {
	db *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// ListQuestions retrieves the question catalog ordered by rotation position
func (r *QuestionRepository) ListQuestions(ctx context.Context) ([]*models.DailyQuestion, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, question, position, created_at
		FROM daily_questions
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.DailyQuestion
	for rows.Next() {
		var q models.DailyQuestion
		if err := rows.Scan(&q.ID, &q.Question, &q.Position, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan daily question: %w", err)
		}
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily questions: %w", err)
	}
	return questions, nil
}

// CountQuestions counts the question catalog
func (r *QuestionRepository) CountQuestions(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM daily_questions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count daily questions: %w", err)
	}
	return count, nil
}

// CreateQuestion inserts a catalog question
func (r *QuestionRepository) CreateQuestion(ctx context.Context, q *models.DailyQuestion) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO daily_questions (id, question, position, created_at)
		VALUES ($1, $2, $3, $4)
	`, q.ID, q.Question, q.Position, q.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create daily question: %w", err)
	}
	return nil
}

// UpsertAnswer stores a user's answer for a question date, replacing any
// earlier answer for the same day
func (r *QuestionRepository) UpsertAnswer(ctx context.Context, a *models.QuestionAnswer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO question_answers (id, question_id, couple_id, user_id, question_date, answer, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, question_date) DO UPDATE SET answer = EXCLUDED.answer
	`, a.ID, a.QuestionID, a.CoupleID, a.UserID, a.QuestionDate, a.Answer, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert answer: %w", err)
	}
	return nil
}

// AnswersForDate retrieves a couple's answers for one question date
func (r *QuestionRepository) AnswersForDate(ctx context.Context, coupleID string, date time.Time) ([]*models.QuestionAnswer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, question_id, couple_id, user_id, question_date, answer, created_at
		FROM question_answers
		WHERE couple_id = $1 AND question_date = $2
	`, coupleID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}
	defer rows.Close()

	var answers []*models.QuestionAnswer
	for rows.Next() {
		var a models.QuestionAnswer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.CoupleID, &a.UserID,
			&a.QuestionDate, &a.Answer, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answers: %w", err)
	}
	return answers, nil
}
