// Package translate maps subtitle text through the Google Translate v2 REST
// API.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultAPIURL  = "https://translation.googleapis.com/language/translate/v2"
	requestTimeout = 30 * time.Second
	apiKeyEnv      = "GOOGLE_TRANSLATE_API_KEY"
)

// Client is a rate-limited Google Translate v2 client.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a client with the API key taken from the
// GOOGLE_TRANSLATE_API_KEY environment variable. requestsPerMinute bounds
// the request rate across all cues.
func NewClient(requestsPerMinute int) (*Client, error) {
	key := os.Getenv(apiKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("%s is not set", apiKeyEnv)
	}
	return newClient(key, defaultAPIURL, requestsPerMinute), nil
}

func newClient(apiKey, baseURL string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
	}
}

// translateResponse mirrors the v2 API JSON structure.
type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate translates text from source to target language. An empty source
// lets the API detect the source language.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	form := url.Values{
		"q":      {text},
		"target": {target},
		"format": {"text"},
		"key":    {c.apiKey},
	}
	if source != "" {
		form.Set("source", source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("translate API returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(payload.Data.Translations) == 0 {
		return "", fmt.Errorf("translate API returned no translations")
	}
	return payload.Data.Translations[0].TranslatedText, nil
}
