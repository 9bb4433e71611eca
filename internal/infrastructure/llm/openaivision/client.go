package openaivision

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
	"github.com/heladerias/audit-vision/internal/infrastructure/resilience"
)

// Client calls an OpenAI-compatible chat-completions endpoint with one image
// per request. Calls are rate-limited client-side and guarded by the shared
// resilience executor (circuit breaker; no automatic retries — a failed photo
// is re-attempted by the operator).
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
	executor   *resilience.Executor
}

type Options struct {
	RequestsPerSecond float64
	Burst             int
	Executor          *resilience.Executor
}

func New(baseURL, apiKey, model string, options Options) *Client {
	rps := options.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := options.Burst
	if burst <= 0 {
		burst = 2
	}
	executor := options.Executor
	if executor == nil {
		executor = resilience.NewExecutor(resilience.DefaultConfig())
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		executor:   executor,
	}
}

func (c *Client) Model() string {
	return c.model
}

// Classify scores one photo against one criterion. An unparseable model reply
// degrades to a precautionary Observación verdict carrying the raw text; only
// transport-level failures return an error.
func (c *Client) Classify(ctx context.Context, input ports.ClassifyInput) (domain.Verdict, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Verdict{}, fmt.Errorf("classifier rate limit: %w", err)
	}

	request := chatRequest{
		Model:       c.model,
		MaxTokens:   1000,
		Temperature: 0.2,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: buildUserPrompt(input.Criterion, input.Corrections)},
					{Type: "image_url", ImageURL: &imageURL{
						URL:    dataURL(input.MimeType, input.ImageData),
						Detail: "high",
					}},
				},
			},
		},
	}

	var raw string
	err := c.executor.Execute(ctx, "vision_classify", func(execCtx context.Context) error {
		var execErr error
		raw, execErr = c.chatCompletion(execCtx, request)
		return execErr
	}, classifyError)
	if err != nil {
		return domain.Verdict{}, wrapTemporaryIfNeeded("vision classify", err)
	}

	return parseVerdict(raw), nil
}

// parseVerdict applies the fail-open-to-caution policy: anything that does not
// decode into the expected structure becomes an Observación verdict with the
// raw text as justification, never a silent pass and never an abort.
func parseVerdict(raw string) domain.Verdict {
	cleaned := stripMarkdownFences(raw)

	var verdict domain.Verdict
	if err := json.Unmarshal([]byte(extractJSONObject(cleaned)), &verdict); err != nil || !verdict.Status.Valid() {
		return domain.Verdict{
			Status:             domain.StatusObservacion,
			Justificacion:      strings.TrimSpace(raw),
			DetallesObservados: []string{},
			Recomendaciones:    []string{parseFailureNote},
		}
	}
	if verdict.DetallesObservados == nil {
		verdict.DetallesObservados = []string{}
	}
	if verdict.Recomendaciones == nil {
		verdict.Recomendaciones = []string{}
	}
	return verdict
}

const parseFailureNote = "No se pudo parsear la respuesta de la IA."

func stripMarkdownFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
