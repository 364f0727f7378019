package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"candleshop/internal/config"
)

func TestConfiguredRequiresAllValues(t *testing.T) {
	complete := config.AzureOpenAI{
		Endpoint:       "https://example.openai.azure.com",
		APIKey:         "key",
		DeploymentName: "gpt",
		APIVersion:     "2024-02-15-preview",
	}
	if !NewClient(complete).Configured() {
		t.Fatal("expected complete config to be configured")
	}

	partials := []config.AzureOpenAI{
		{APIKey: "key", DeploymentName: "gpt"},
		{Endpoint: "https://example", DeploymentName: "gpt"},
		{Endpoint: "https://example", APIKey: "key"},
		{},
	}
	for i, cfg := range partials {
		if NewClient(cfg).Configured() {
			t.Fatalf("partial config %d must disable the feature", i)
		}
	}
}

func TestGenerateProductUnconfigured(t *testing.T) {
	_, err := NewClient(config.AzureOpenAI{}).GenerateProduct(context.Background(), "a rose candle")
	if err == nil {
		t.Fatal("expected error from unconfigured client")
	}
}

func TestGenerateProductParsesChatResponse(t *testing.T) {
	generated := GeneratedProduct{
		ProductNames:     []string{"Midnight Rose", "Velvet Ember"},
		Price:            42,
		Category:         "Luxury",
		ShortDescription: "Warm and floral.",
		FullDescription:  "A long description.",
		Size:             "8 oz",
		BurnTime:         "40-50 hours",
		ScentNotes:       []string{"Rose", "Oud"},
		Quote:            "Light the night.",
	}
	content, _ := json.Marshal(generated)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "key" {
			t.Errorf("missing api-key header")
		}
		if !strings.Contains(r.URL.Path, "/openai/deployments/gpt/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": string(content)}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(config.AzureOpenAI{
		Endpoint:       srv.URL,
		APIKey:         "key",
		DeploymentName: "gpt",
		APIVersion:     "2024-02-15-preview",
	})

	got, err := client.GenerateProduct(context.Background(), "a luxurious rose candle")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(got.ProductNames) != 2 || got.Price != 42 || got.Category != "Luxury" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestParseGeneratedToleratesMarkdownFence(t *testing.T) {
	fenced := "```json\n{\"productNames\":[\"Ember\"],\"price\":30,\"category\":\"Seasonal\"}\n```"
	got, err := parseGenerated(fenced)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got.ProductNames[0] != "Ember" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestParseGeneratedRejectsGarbage(t *testing.T) {
	if _, err := parseGenerated("sorry, I cannot do that"); err == nil {
		t.Fatal("expected parse error for non-JSON content")
	}
	if _, err := parseGenerated("{}"); err == nil {
		t.Fatal("expected error when no product names are present")
	}
}
