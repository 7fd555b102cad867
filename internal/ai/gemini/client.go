package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/utils"
)

const (
	Provider = "gemini"

	defaultModel       = "gemini-2.5-flash"
	defaultMaxRetries  = 2
	defaultTimeout     = 45 * time.Second
	defaultTemperature = 0.4

	// Quota errors asking to come back later than this are not retried.
	maxQuotaDelay = 30 * time.Second
	baseBackoff   = 2 * time.Second
)

// sleep waits between attempts. Tests replace it.
var sleep = utils.WaitFor

var retryAfterPattern = regexp.MustCompile(`(?i)retry (?:after|in) ([0-9]+(?:\.[0-9]+)?)\s*s`)

type chatSession interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type chatCreator interface {
	Create(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (chatSession, error)
}

type genaiChats struct {
	chats *genai.Chats
}

func (c genaiChats) Create(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (chatSession, error) {
	chat, err := c.chats.Create(ctx, model, config, history)
	if err != nil {
		return nil, err
	}
	return chat, nil
}

// Config tunes the generator.
type Config struct {
	Model string
	// MaxRetries is the total number of attempts per request.
	MaxRetries  int
	Timeout     time.Duration
	Temperature float32
}

// Request is a single structured generation call.
type Request struct {
	System  string
	Message string
	// Schema constrains the JSON the model returns. Optional.
	Schema *genai.Schema
}

// Generator sends one-shot chat requests to Gemini in JSON mode.
type Generator struct {
	chats       chatCreator
	model       string
	maxRetries  int
	timeout     time.Duration
	temperature float32
	logger      *zap.Logger
}

// NewGenerator creates a Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey string, cfg Config, logger *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required: %w", ai.ErrConfiguration)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newGenerator(genaiChats{chats: client.Chats}, cfg, logger), nil
}

func newGenerator(chats chatCreator, cfg Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = defaultMaxRetries
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	temperature := cfg.Temperature
	if temperature <= 0 || temperature > 1 {
		temperature = defaultTemperature
	}

	return &Generator{
		chats:       chats,
		model:       model,
		maxRetries:  retries,
		timeout:     timeout,
		temperature: temperature,
		logger:      logger,
	}
}

// GenerateContent sends the request and returns the textual JSON answer.
// Transient failures are retried up to the configured number of attempts;
// whatever is left is reported as an ai.ExternalServiceError.
func (g *Generator) GenerateContent(ctx context.Context, req Request) (string, error) {
	if g == nil || g.chats == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	if strings.TrimSpace(req.Message) == "" {
		return "", errors.New("message must not be empty")
	}

	var (
		lastErr  error
		attempts int
	)

	for attempts < g.maxRetries {
		attempts++

		output, err := g.send(ctx, req)
		if err == nil {
			return output, nil
		}

		var parseErr *ai.ResponseParseError
		if errors.As(err, &parseErr) {
			return "", err
		}

		lastErr = err
		if ctx.Err() != nil {
			break
		}

		delay, retry := retryDelay(err, attempts)
		if !retry || attempts >= g.maxRetries {
			break
		}

		g.logger.Warn("gemini request failed; retrying",
			zap.Int("attempt", attempts),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		if err := sleep(ctx, delay); err != nil {
			lastErr = err
			break
		}
	}

	return "", &ai.ExternalServiceError{Provider: Provider, Attempts: attempts, Err: lastErr}
}

func (g *Generator) send(ctx context.Context, req Request) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(g.temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	}

	if system := strings.TrimSpace(req.System); system != "" {
		config.SystemInstruction = &genai.Content{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: system}},
		}
	}

	chat, err := g.chats.Create(attemptCtx, g.model, config, nil)
	if err != nil {
		return "", fmt.Errorf("create chat: %w", err)
	}

	resp, err := chat.SendMessage(attemptCtx, genai.Part{Text: req.Message})
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}

	output := extractText(resp)
	if output == "" {
		return "", &ai.ResponseParseError{Stage: Provider, Reason: "empty response"}
	}

	g.logger.Debug("gemini response received", zap.Int("response_length", utf8.RuneCountInString(output)))

	return output, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	return strings.TrimSpace(builder.String())
}

// retryDelay decides whether err is transient and how long to wait before the next attempt.
func retryDelay(err error, attempt int) (time.Duration, bool) {
	backoff := baseBackoff * time.Duration(attempt)

	if apiErr, ok := asAPIError(err); ok {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			if delay, found := quotaDelay(apiErr.Message); found {
				if delay > maxQuotaDelay {
					return 0, false
				}
				return delay, true
			}
			return backoff, true
		case apiErr.Code >= http.StatusInternalServerError:
			return backoff, true
		default:
			return 0, false
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return backoff, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return backoff, true
	}

	return 0, false
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}

	return genai.APIError{}, false
}

func quotaDelay(message string) (time.Duration, bool) {
	match := retryAfterPattern.FindStringSubmatch(message)
	if len(match) < 2 {
		return 0, false
	}

	seconds, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}

	return time.Duration(seconds * float64(time.Second)), true
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}
