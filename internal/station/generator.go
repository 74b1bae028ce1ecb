package station

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Generator asks a chat-completions API for a playlist matching a free-form
// prompt and returns one song name per line of the answer.
type Generator struct {
	apiKey string
	apiURL string
	http   *http.Client
}

func NewGenerator(apiKey, apiURL string) *Generator {
	return &Generator{
		apiKey: apiKey,
		apiURL: apiURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (g *Generator) GenerateStation(ctx context.Context, prompt string) ([]string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []chatMessage{
			{
				Role:    "user",
				Content: fmt.Sprintf("Generate a %s playlist with one song per line, no extra text, up to 10 songs.", prompt),
			},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completions status %d", resp.StatusCode)
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("completions returned no choices")
	}

	songs := []string{}
	for _, line := range strings.Split(out.Choices[0].Message.Content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			songs = append(songs, line)
		}
	}
	return songs, nil
}
