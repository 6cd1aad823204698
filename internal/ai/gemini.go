// Package ai is a thin client for the Gemini generateContent REST API. It is
// the opaque text-generation collaborator: the rest of the system only sees
// a candidate word or username string, or an error.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/justjelku/wordle-clone/internal/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	requestTimeout = 15 * time.Second
)

// Client calls the Gemini API
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Gemini client. An empty API key is allowed; every
// call will then fail and callers fall back to their local generators.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// generateContent request/response wire types (the subset we use)

type generateRequest struct {
	SystemInstruction *content        `json:"systemInstruction,omitempty"`
	Contents          []content       `json:"contents"`
	GenerationConfig  *generateConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// WordCandidate is the parsed JSON payload the word prompt asks the model to
// return.
type WordCandidate struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Word     string `json:"word"`
}

// GenerateWord asks the model for a 5-letter word in the given category,
// avoiding everything in excludeList. The candidate is validated (length,
// not previously used) before being returned uppercased.
func (c *Client) GenerateWord(ctx context.Context, category models.Category, excludeList []string) (*WordCandidate, error) {
	today := time.Now().UTC().Format(models.DateFormat)

	systemPrompt := fmt.Sprintf(`You are a word generator for a Wordle-style game.
Generate a single 5-letter English word related to the category %q.
The word must:
- Be exactly 5 letters long
- Be a common English word suitable for word games
- Be related to the category: %s
- NOT be any of these previously used words: %s
- Be appropriate for all ages

Respond with JSON in this exact format:
{
  "date": %q,
  "category": %q,
  "word": "WORD"
}

The word should be in uppercase letters.`,
		category, category, strings.Join(excludeList, ", "), today, category)

	raw, err := c.generate(ctx, systemPrompt, fmt.Sprintf("Generate a 5-letter word for category: %s", category), true)
	if err != nil {
		return nil, err
	}

	var candidate WordCandidate
	if err := json.Unmarshal([]byte(raw), &candidate); err != nil {
		return nil, fmt.Errorf("failed to parse word response: %w", err)
	}

	candidate.Word = strings.ToUpper(strings.TrimSpace(candidate.Word))
	if len(candidate.Word) != 5 {
		return nil, fmt.Errorf("generated word %q is not 5 letters long", candidate.Word)
	}
	for _, used := range excludeList {
		if strings.EqualFold(used, candidate.Word) {
			return nil, fmt.Errorf("word %q has already been used", candidate.Word)
		}
	}
	if candidate.Date == "" {
		candidate.Date = today
	}
	if candidate.Category == "" {
		candidate.Category = string(category)
	}
	return &candidate, nil
}

// GenerateUsername asks the model for a playful username. Callers are
// expected to fall back to a local generator when this fails.
func (c *Client) GenerateUsername(ctx context.Context) (string, error) {
	prompt := `Generate a unique, fun, and creative username for a word puzzle game.
The username must follow these rules:
- Length: 4-12 characters
- Style: playful, catchy, and easy to remember
- No repetition of the same prefix or suffix
- Should not include numbers, underscores, or special characters
- Should not be offensive or inappropriate
- Can be inspired by wordplay, nature, fantasy, or whimsical vibes

Give only ONE username as output. No explanations, no punctuation, just the username.

Examples of good style: WordWhiz, PuzzleFox, RiddleRay, CloudMint, NovaBloom, InkFable, JumbleBee.

Return just the username, nothing else.`

	raw, err := c.generate(ctx, "", prompt, false)
	if err != nil {
		return "", err
	}

	// Strip quotes and whitespace the model sometimes adds
	username := strings.NewReplacer(`"`, "", "'", "", " ", "", "\n", "").Replace(raw)
	if username == "" {
		return "", fmt.Errorf("empty username from model")
	}
	if len(username) > 12 {
		username = username[:12]
	}
	return username, nil
}

// generate performs one generateContent call and returns the first
// candidate's text.
func (c *Client) generate(ctx context.Context, systemPrompt, userPrompt string, jsonResponse bool) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini api key is not set")
	}

	request := generateRequest{
		Contents: []content{{Parts: []part{{Text: userPrompt}}}},
	}
	if systemPrompt != "" {
		request.SystemInstruction = &content{Parts: []part{{Text: systemPrompt}}}
	}
	if jsonResponse {
		request.GenerationConfig = &generateConfig{ResponseMimeType: "application/json"}
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var response generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response candidates returned")
	}

	return strings.TrimSpace(response.Candidates[0].Content.Parts[0].Text), nil
}
