package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/provider"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// maxMessageRunes bounds a single user message.
const maxMessageRunes = 4000

const systemPrompt = `You are the AgeWell health assistant. You help older adults and the people who care for them.
1. Explain things gently, in plain words that are easy to follow.
2. You may give general wellbeing advice, but never give a medical diagnosis or medicine dosage advice.
3. For anything that needs diagnosis or treatment, always recommend consulting a doctor.
4. Keep answers short and to the point so they are easy to read.`

type completer interface {
	Complete(ctx context.Context, messages []provider.ChatMessage, opts provider.ChatOptions) (*provider.ChatResult, error)
}

// Service answers general health questions through a chat model.
type Service struct {
	llm  completer
	opts provider.ChatOptions
	log  *slog.Logger
}

// NewService creates a new Assistant service.
func NewService(log *slog.Logger, llm completer, opts provider.ChatOptions) *Service {
	return &Service{
		llm:  llm,
		opts: opts,
		log:  log.With("service", "assistant"),
	}
}

// ChatInput is one question from the user.
type ChatInput struct {
	Message string
}

// Validate checks all fields and collects all errors.
func (i ChatInput) Validate() error {
	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		return domain.NewValidationError("message", "required")
	}
	if utf8.RuneCountInString(msg) > maxMessageRunes {
		return domain.NewValidationError("message", fmt.Sprintf("must be at most %d characters", maxMessageRunes))
	}
	return nil
}

// Chat sends the message with the health-guidance system prompt and returns
// the reply. Provider errors keep their domain sentinel: ErrUnavailable,
// ErrUpstreamTimeout or ErrUpstream.
func (s *Service) Chat(ctx context.Context, input ChatInput) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return "", err
	}

	res, err := s.llm.Complete(ctx, []provider.ChatMessage{
		{Role: provider.RoleSystem, Content: systemPrompt},
		{Role: provider.RoleUser, Content: strings.TrimSpace(input.Message)},
	}, s.opts)
	if err != nil {
		return "", fmt.Errorf("assistant.Chat: %w", err)
	}
	if res.Reply == "" {
		return "", fmt.Errorf("assistant.Chat: empty reply: %w", domain.ErrUpstream)
	}

	s.log.InfoContext(ctx, "assistant answered",
		slog.String("user_id", userID.String()),
		slog.Int("prompt_tokens", res.PromptTokens),
		slog.Int("completion_tokens", res.CompletionTokens),
	)
	return res.Reply, nil
}
