package services

import (
	"context"
	"fmt"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/repositories"
	"bizdesk_backend/internal/validation"
)

// FeedbackService appends and lists feedback.
type FeedbackService interface {
	SaveFeedback(ctx context.Context, session models.Session, form validation.FeedbackForm) (*models.Feedback, error)
	GetFeedback(ctx context.Context, session models.Session) ([]models.Feedback, error)
}

type feedbackService struct {
	repo repositories.FeedbackRepository
}

// NewFeedbackService creates a new instance of FeedbackService.
func NewFeedbackService(repo repositories.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

// SaveFeedback accepts anonymous submissions; a logged-in sender is recorded
// and their account email fills in a missing one.
func (s *feedbackService) SaveFeedback(ctx context.Context, session models.Session, form validation.FeedbackForm) (*models.Feedback, error) {
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}
	feedback := &models.Feedback{
		Email:   form.Email,
		Message: form.Message,
		Rating:  form.Rating,
	}
	if session.Authenticated() {
		uid := session.UserID
		feedback.UserID = &uid
		if feedback.Email == nil && session.Email != "" {
			email := session.Email
			feedback.Email = &email
		}
	}
	if err := s.repo.CreateFeedback(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	return feedback, nil
}

// GetFeedback lists feedback newest first. Admins only.
func (s *feedbackService) GetFeedback(ctx context.Context, session models.Session) ([]models.Feedback, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if !session.IsAdmin() {
		return nil, ErrForbidden
	}
	items, err := s.repo.ListFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}
	return items, nil
}
