// Package textgen is the text-generation collaborator: it asks a chat model
// for short advisory and alert texts in the farmer's language. Every method
// can fail; callers always hold a deterministic fallback.
package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openaiModel "github.com/cloudwego/eino-ext/components/model/openai"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/kisanmitra/weather-engine/internal/model"
)

// Config selects and configures the chat model backend.
type Config struct {
	Provider string // only "openai" (and compatible endpoints) supported
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}

// Generator wraps a chat model behind the two text operations the engine
// needs.
type Generator struct {
	chatModel einomodel.BaseChatModel
}

// New constructs a generator from config. It returns an error when the
// provider is missing or misconfigured; the caller is expected to run
// without a generator in that case.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))

	switch provider {
	case "", "disabled", "none":
		return nil, errors.New("text generation provider not configured")

	case "openai":
		if cfg.APIKey == "" || cfg.Model == "" {
			return nil, errors.New("openai text generation missing apiKey/model")
		}

		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 20 * time.Second
		}

		cm, err := openaiModel.NewChatModel(ctx, &openaiModel.ChatModelConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: strings.TrimSpace(cfg.BaseURL),
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("create chat model: %w", err)
		}

		return &Generator{chatModel: cm}, nil

	default:
		return nil, fmt.Errorf("unsupported text generation provider %q", cfg.Provider)
	}
}

// AdvisoryRequest is the structured input for a daily advisory narrative.
// NextDay is nil when no forecast could be fetched.
type AdvisoryRequest struct {
	Location string
	Language string
	Weather  model.WeatherReading
	NextDay  *model.WeatherReading
	Crops    []model.Crop
}

// AdvisoryText is the model's reply: one primary sentence plus up to two
// supporting tips.
type AdvisoryText struct {
	PrimaryAdvice string   `json:"primary_advice"`
	Tips          []string `json:"tips"`
}

// AlertRequest is the structured input for a short alert message.
type AlertRequest struct {
	Condition model.Condition
	Severity  model.Severity
	Language  string
	Weather   model.WeatherReading
	Crops     []string
}

const advisorySystemPrompt = `You are an agricultural advisor for smallholder farmers. ` +
	`Given the weather and crop list, reply ONLY with JSON: ` +
	`{"primary_advice": "<one actionable sentence>", "tips": ["<tip>", "<tip>"]}. ` +
	`At most two tips. Write in the requested language, plainly, for a farmer.`

const alertSystemPrompt = `You write urgent weather warnings for farmers. ` +
	`Reply ONLY with JSON: {"message": "<1-2 sentences, urgent but calm>"}. ` +
	`Write in the requested language.`

// GenerateAdvisory asks the model for a daily advisory narrative.
func (g *Generator) GenerateAdvisory(ctx context.Context, req AdvisoryRequest) (AdvisoryText, error) {
	cropNames := make([]string, 0, len(req.Crops))
	for _, c := range req.Crops {
		cropNames = append(cropNames, c.Name)
	}

	user := fmt.Sprintf("Location: %s\nLanguage: %s\nWeather: %s\nCrops: %s",
		req.Location, languageOrDefault(req.Language), req.Weather.Summary(), strings.Join(cropNames, ", "))
	if req.NextDay != nil {
		user += fmt.Sprintf("\nTomorrow: %s", req.NextDay.Summary())
	}

	msgs := []*schema.Message{
		{Role: schema.System, Content: advisorySystemPrompt},
		{Role: schema.User, Content: user},
	}

	resp, err := g.chatModel.Generate(ctx, msgs)
	if err != nil {
		return AdvisoryText{}, fmt.Errorf("generate advisory: %w", err)
	}

	var out AdvisoryText
	if err := parseJSONFromContent(resp.Content, &out); err != nil {
		return AdvisoryText{}, fmt.Errorf("parse advisory reply: %w", err)
	}

	out.PrimaryAdvice = strings.TrimSpace(out.PrimaryAdvice)
	if out.PrimaryAdvice == "" {
		return AdvisoryText{}, errors.New("empty primary advice in reply")
	}
	if len(out.Tips) > 2 {
		out.Tips = out.Tips[:2]
	}

	return out, nil
}

// GenerateAlertText asks the model for a short urgent alert message.
func (g *Generator) GenerateAlertText(ctx context.Context, req AlertRequest) (string, error) {
	user := fmt.Sprintf("Condition: %s (severity %s)\nLanguage: %s\nWeather: %s\nCrops: %s",
		req.Condition, req.Severity, languageOrDefault(req.Language),
		req.Weather.Summary(), strings.Join(req.Crops, ", "))

	msgs := []*schema.Message{
		{Role: schema.System, Content: alertSystemPrompt},
		{Role: schema.User, Content: user},
	}

	resp, err := g.chatModel.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("generate alert text: %w", err)
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := parseJSONFromContent(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse alert reply: %w", err)
	}

	out.Message = strings.TrimSpace(out.Message)
	if out.Message == "" {
		return "", errors.New("empty message in reply")
	}

	return out.Message, nil
}

func languageOrDefault(lang string) string {
	if strings.TrimSpace(lang) == "" {
		return "en"
	}

	return lang
}

func parseJSONFromContent(content string, out interface{}) error {
	raw := extractJSONObject(content)
	if raw == "" {
		return errors.New("json not found in model reply")
	}

	return json.Unmarshal([]byte(raw), out)
}

// extractJSONObject tolerates code fences and prose around the JSON object.
func extractJSONObject(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < 0 || end <= start {
		return ""
	}

	return content[start : end+1]
}
