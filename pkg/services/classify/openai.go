package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

const systemPrompt = "You label short personal life-management utterances. " +
	"Reply with a single JSON object and nothing else."

const instructions = `Classify the utterance into one intent and extract slots.

Intents: RECORD_EXPENSE, RECORD_INCOME, ADD_TODO, CHECK_HABIT, QUERY_SUMMARY, UNKNOWN
Slots (include only those present in the utterance):
  amount, category, date, note, title, habit, module

Return exactly:
{"intent": "...", "slots": {"...": "..."}}

Utterance: %s`

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	// RPM caps requests per minute against the upstream API.
	RPM   int
	Burst int
}

// LLMClassifier asks an OpenAI-compatible chat model for the intent + slot
// map of one utterance.
type LLMClassifier struct {
	chatModel model.ChatModel
	limiter   *rate.Limiter
}

func NewLLMClassifier(ctx context.Context, cfg Config) (*LLMClassifier, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("init chat model: %w", err)
	}

	if cfg.RPM <= 0 {
		cfg.RPM = 60
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}
	limiter := rate.NewLimiter(rate.Limit(float64(cfg.RPM)/60.0), cfg.Burst)

	return &LLMClassifier{chatModel: chatModel, limiter: limiter}, nil
}

// Classify labels one utterance. Anything the model returns that does not
// parse as the expected JSON, or an empty utterance, maps to UNKNOWN.
func (c *LLMClassifier) Classify(ctx context.Context, utterance string) (domain.Classification, error) {
	if strings.TrimSpace(utterance) == "" {
		return Unknown(), nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Unknown(), err
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: fmt.Sprintf(instructions, utterance)},
	}

	resp, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		return Unknown(), fmt.Errorf("classify call: %w", err)
	}

	return parseResponse(resp.Content), nil
}

type rawClassification struct {
	Intent string            `json:"intent"`
	Slots  map[string]string `json:"slots"`
}

func parseResponse(content string) domain.Classification {
	clean := strings.TrimSpace(content)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")

	var raw rawClassification
	if err := json.Unmarshal([]byte(clean), &raw); err != nil {
		return Unknown()
	}

	intent, ok := knownIntent(raw.Intent)
	if !ok {
		return Unknown()
	}

	slots := raw.Slots
	if slots == nil {
		slots = map[string]string{}
	}
	return domain.Classification{Intent: intent, Slots: slots}
}
