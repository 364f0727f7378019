// Package client is the storefront's data layer: a thin JSON client for the
// backend plus a snapshot store that keeps the UI rendering through outages.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"candleshop/internal/models"
)

// Client calls the backend HTTP surface. Reads go out unauthenticated;
// mutating calls attach the admin Basic credentials.
type Client struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client
}

func New(baseURL, username, password string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Username:   username,
		Password:   password,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type DeleteResult struct {
	Success   bool   `json:"success"`
	DeletedID string `json:"deletedId"`
}

type ActivateResult struct {
	Success      bool                 `json:"success"`
	ActivatedID  string               `json:"activatedId"`
	HeroSections []models.HeroSection `json:"heroSections"`
}

type SeedResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Products     int    `json:"products"`
	HeroSections int    `json:"heroSections"`
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := c.do(ctx, http.MethodGet, "/products", nil, &products, false)
	return products, err
}

func (c *Client) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	var created models.Product
	err := c.do(ctx, http.MethodPost, "/products", p, &created, true)
	return created, err
}

func (c *Client) UpdateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	var updated models.Product
	err := c.do(ctx, http.MethodPut, "/products", p, &updated, true)
	return updated, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products?id="+url.QueryEscape(id), nil, &DeleteResult{}, true)
}

func (c *Client) ListHeroSections(ctx context.Context) ([]models.HeroSection, error) {
	var sections []models.HeroSection
	err := c.do(ctx, http.MethodGet, "/hero-sections", nil, &sections, false)
	return sections, err
}

func (c *Client) CreateHeroSection(ctx context.Context, h models.HeroSection) (models.HeroSection, error) {
	var created models.HeroSection
	err := c.do(ctx, http.MethodPost, "/hero-sections", h, &created, true)
	return created, err
}

func (c *Client) UpdateHeroSection(ctx context.Context, h models.HeroSection) (models.HeroSection, error) {
	var updated models.HeroSection
	err := c.do(ctx, http.MethodPut, "/hero-sections", h, &updated, true)
	return updated, err
}

func (c *Client) DeleteHeroSection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/hero-sections?id="+url.QueryEscape(id), nil, &DeleteResult{}, true)
}

func (c *Client) ActivateHeroSection(ctx context.Context, id string) (ActivateResult, error) {
	var result ActivateResult
	err := c.do(ctx, http.MethodPost, "/hero-sections/activate", map[string]string{"id": id}, &result, true)
	return result, err
}

func (c *Client) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult
	err := c.do(ctx, http.MethodPost, "/seed", nil, &result, true)
	return result, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.SetBasicAuth(c.Username, c.Password)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
