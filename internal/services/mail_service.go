package services

import (
	"context"
	"fmt"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/repositories"
	"bizdesk_backend/internal/validation"
	"bizdesk_backend/pkg/utils"
)

// MailQueuedRoutingKey is the routing key of mail.queued events.
const MailQueuedRoutingKey = "mail.queued"

// MailQueuedEvent tells the delivery worker a mail row is waiting.
type MailQueuedEvent struct {
	ID string `json:"id"`
	To string `json:"to"`
}

// EventPublisher publishes JSON events to a topic exchange.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// MailService enqueues outbound mail. It never delivers mail itself.
type MailService interface {
	SendEmail(ctx context.Context, session models.Session, form validation.MailForm) (*models.MailMessage, error)
}

type mailService struct {
	repo      repositories.MailRepository
	publisher EventPublisher
}

// NewMailService creates a new instance of MailService. publisher may be nil.
func NewMailService(repo repositories.MailRepository, publisher EventPublisher) MailService {
	return &mailService{repo: repo, publisher: publisher}
}

// SendEmail stores the mail intent. Success means enqueued, not delivered.
func (s *mailService) SendEmail(ctx context.Context, session models.Session, form validation.MailForm) (*models.MailMessage, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}

	mail := &models.MailMessage{
		To:      form.To,
		Message: models.MailContent{Subject: form.Subject, HTML: form.HTML},
	}
	if err := s.repo.EnqueueMail(ctx, mail); err != nil {
		return nil, fmt.Errorf("failed to enqueue mail: %w", err)
	}

	if s.publisher != nil {
		// The row is the contract; the event only wakes the worker early.
		if err := s.publisher.PublishJSON(ctx, MailQueuedRoutingKey, MailQueuedEvent{ID: mail.ID, To: mail.To}); err != nil {
			utils.LogWarn(err, "Failed to publish mail.queued event", map[string]interface{}{"mail_id": mail.ID})
		}
	}
	return mail, nil
}
