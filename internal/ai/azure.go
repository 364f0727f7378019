// Package ai wraps the Azure OpenAI chat-completions API used by the admin
// tooling to draft product copy. The whole feature is optional: with an
// incomplete configuration the client reports itself unconfigured and nothing
// else in the backend is affected.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"candleshop/internal/config"
)

const systemPrompt = `You are a creative product copywriter for Shazeda Candles, a premium handcrafted candle brand.
Generate product information based on user descriptions. Always respond with valid JSON only, no markdown.

Response must be a JSON object with these exact fields:
- productNames: array of 4-5 creative, elegant product name suggestions
- price: suggested price in GBP (number, typically 25-65 for candles)
- salePrice: optional sale price (number, leave out or set to null if no sale)
- category: one of "Floral", "Luxury", "Gift Set", "Seasonal"
- shortDescription: 1-2 sentence marketing tagline
- fullDescription: 3-4 paragraph detailed description (join with spaces, not newlines)
- size: candle size like "8 oz", "200g", "10 oz"
- burnTime: estimated burn time like "40-50 hours"
- scentNotes: array of 3-5 scent notes
- quote: short inspirational quote about the candle's essence

Be creative, luxurious, and evocative in your descriptions. Focus on sensory experiences and emotions.`

// GeneratedProduct is the structured copy suggestion returned by the model.
type GeneratedProduct struct {
	ProductNames     []string `json:"productNames"`
	Price            float64  `json:"price"`
	SalePrice        float64  `json:"salePrice,omitempty"`
	Category         string   `json:"category"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Size             string   `json:"size"`
	BurnTime         string   `json:"burnTime"`
	ScentNotes       []string `json:"scentNotes"`
	Quote            string   `json:"quote"`
}

type Client struct {
	cfg        config.AzureOpenAI
	httpClient *http.Client
}

func NewClient(cfg config.AzureOpenAI) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateProduct asks the deployment for product copy matching the given
// description and decodes the JSON the prompt demands.
func (c *Client) GenerateProduct(ctx context.Context, description string) (*GeneratedProduct, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("azure openai is not configured")
	}

	body, err := json.Marshal(chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: description},
		},
		Temperature: 0.8,
		MaxTokens:   1500,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf(
		"%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"),
		c.cfg.DeploymentName,
		c.cfg.APIVersion,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("azure openai returned status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(raw, &chat); err != nil {
		return nil, err
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("azure openai returned no choices")
	}

	return parseGenerated(chat.Choices[0].Message.Content)
}

// parseGenerated tolerates models that wrap the JSON in a markdown fence
// despite the prompt.
func parseGenerated(content string) (*GeneratedProduct, error) {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var generated GeneratedProduct
	if err := json.Unmarshal([]byte(trimmed), &generated); err != nil {
		return nil, fmt.Errorf("model response is not valid JSON: %w", err)
	}
	if len(generated.ProductNames) == 0 {
		return nil, fmt.Errorf("model response has no product names")
	}
	return &generated, nil
}
