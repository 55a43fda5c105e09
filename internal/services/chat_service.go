package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/validation"
	"bizdesk_backend/pkg/utils"
)

// Replies substituted for a failed completion.
const (
	ChatFailureReply = "Error: no response from AI."
	ChatEmptyReply   = "⚠️ No response from AI"
)

// ChatModels lists the models the assistant may be asked to use.
var ChatModels = []string{
	"mistralai/devstral-small",
	"qwen/qwen3-4b:free",
	"anthropic/claude-3-haiku",
}

var ErrUnsupportedModel = errors.New("the model is under maintenance, please try again later")

// ChatConfig points the assistant at an OpenRouter-compatible endpoint.
type ChatConfig struct {
	URL          string
	APIKey       string
	DefaultModel string
	Timeout      time.Duration
}

// ChatService proxies a conversation to the chat-completion endpoint.
type ChatService interface {
	// Complete returns the conversation followed by the assistant's reply.
	// Upstream failures become a placeholder reply, never an error.
	Complete(ctx context.Context, session models.Session, form validation.ChatForm) ([]models.ChatMessage, error)
	Models() []string
	DefaultModel() string
}

type chatService struct {
	cfg    ChatConfig
	client *http.Client
}

// NewChatService creates a new instance of ChatService. A nil client gets a
// default one bounded by cfg.Timeout.
func NewChatService(cfg ChatConfig, client *http.Client) ChatService {
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = ChatModels[0]
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &chatService{cfg: cfg, client: client}
}

type completionRequest struct {
	Model    string               `json:"model"`
	Messages []models.ChatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message *models.ChatMessage `json:"message"`
	} `json:"choices"`
}

func (s *chatService) Models() []string {
	out := make([]string, len(ChatModels))
	copy(out, ChatModels)
	return out
}

func (s *chatService) DefaultModel() string { return s.cfg.DefaultModel }

func (s *chatService) Complete(ctx context.Context, session models.Session, form validation.ChatForm) ([]models.ChatMessage, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}
	model := form.Model
	if model == "" {
		model = s.cfg.DefaultModel
	}
	if !isChatModel(model) {
		return nil, ErrUnsupportedModel
	}

	conversation := make([]models.ChatMessage, 0, len(form.Messages)+1)
	for _, m := range form.Messages {
		conversation = append(conversation, models.ChatMessage{Role: m.Role, Content: m.Content})
	}

	ctx, span := otel.Tracer("bizdesk/chat").Start(ctx, "chat.completion")
	defer span.End()
	span.SetAttributes(attribute.String("chat.model", model), attribute.Int("chat.messages", len(conversation)))

	reply, err := s.request(ctx, model, conversation)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		utils.LogWarn(err, "Chat completion failed", map[string]interface{}{"model": model, "user_id": session.UserID})
		reply = models.ChatMessage{Role: "assistant", Content: ChatFailureReply}
	}
	return append(conversation, reply), nil
}

func (s *chatService) request(ctx context.Context, model string, conversation []models.ChatMessage) (models.ChatMessage, error) {
	body, err := json.Marshal(completionRequest{Model: model, Messages: conversation})
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("encode completion request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("call completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	var decoded completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return models.ChatMessage{}, fmt.Errorf("decode completion response (status %d): %w", resp.StatusCode, err)
	}
	if len(decoded.Choices) == 0 || decoded.Choices[0].Message == nil {
		return models.ChatMessage{Role: "assistant", Content: ChatEmptyReply}, nil
	}
	reply := *decoded.Choices[0].Message
	if reply.Role == "" {
		reply.Role = "assistant"
	}
	return reply, nil
}

func isChatModel(model string) bool {
	for _, m := range ChatModels {
		if m == model {
			return true
		}
	}
	return false
}
