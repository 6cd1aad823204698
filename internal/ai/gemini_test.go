package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// fakeGemini serves a canned generateContent response and records the request.
func fakeGemini(t *testing.T, replyText string) (*Client, *generateRequest) {
	t.Helper()
	var captured generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") == "" {
			t.Error("request missing x-goog-api-key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decoding request: %v", err)
		}

		response := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": replyText}},
				}},
			},
		}
		json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(server.Close)

	client := NewClient("test-key", "gemini-test")
	client.baseURL = server.URL
	return client, &captured
}

func TestGenerateWord(t *testing.T) {
	client, captured := fakeGemini(t, `{"date": "2026-08-28", "category": "Nature", "word": "plant"}`)

	candidate, err := client.GenerateWord(context.Background(), "Nature", []string{"CREST", "TRAIN"})
	if err != nil {
		t.Fatalf("GenerateWord() error = %v", err)
	}
	if candidate.Word != "PLANT" {
		t.Errorf("Word = %q, want uppercased PLANT", candidate.Word)
	}
	if candidate.Category != "Nature" {
		t.Errorf("Category = %q, want Nature", candidate.Category)
	}

	if captured.SystemInstruction == nil {
		t.Fatal("no system instruction sent")
	}
	prompt := captured.SystemInstruction.Parts[0].Text
	if !strings.Contains(prompt, "CREST, TRAIN") {
		t.Errorf("system prompt does not carry the exclude list: %q", prompt)
	}
	if captured.GenerationConfig == nil || captured.GenerationConfig.ResponseMimeType != "application/json" {
		t.Error("word generation must request a JSON response")
	}
}

func TestGenerateWordRejectsBadCandidates(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "wrong length", reply: `{"word": "PLANTS"}`},
		{name: "already used", reply: `{"word": "CREST"}`},
		{name: "not json", reply: `PLANT`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := fakeGemini(t, tt.reply)
			if _, err := client.GenerateWord(context.Background(), "Nature", []string{"CREST"}); err == nil {
				t.Error("GenerateWord() accepted a bad candidate")
			}
		})
	}
}

func TestGenerateUsername(t *testing.T) {
	client, _ := fakeGemini(t, "\"PuzzleFox\"\n")

	username, err := client.GenerateUsername(context.Background())
	if err != nil {
		t.Fatalf("GenerateUsername() error = %v", err)
	}
	if username != "PuzzleFox" {
		t.Errorf("username = %q, want PuzzleFox with quotes stripped", username)
	}
}

func TestGenerateUsernameTruncatesLongNames(t *testing.T) {
	client, _ := fakeGemini(t, "ExtraordinarilyLongName")

	username, err := client.GenerateUsername(context.Background())
	if err != nil {
		t.Fatalf("GenerateUsername() error = %v", err)
	}
	if len(username) != 12 {
		t.Errorf("len(username) = %d, want capped at 12", len(username))
	}
}

func TestGenerateFailsWithoutAPIKey(t *testing.T) {
	client := NewClient("", "gemini-test")
	if _, err := client.GenerateWord(context.Background(), "Nature", nil); err == nil {
		t.Error("GenerateWord() with empty API key did not fail")
	}
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"code": 400, "message": "invalid model"},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", "gemini-test")
	client.baseURL = server.URL

	_, err := client.GenerateUsername(context.Background())
	if err == nil || !strings.Contains(err.Error(), "invalid model") {
		t.Errorf("error = %v, want API error message surfaced", err)
	}
}
