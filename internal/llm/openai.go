package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const sommelierSystemNL = "Je bent een sommelier en food pairing expert van restaurant 't Tolhuis. " +
	"Je schrijft korte, smakelijke aanbevelingen in het Nederlands. Maximaal twee zinnen."

const sommelierSystemEN = "You are a sommelier and food pairing expert at restaurant 't Tolhuis. " +
	"You write short, appetizing recommendations in English. Two sentences at most."

type OpenAIClient struct {
	apiKey  string
	model   string
	baseURL string
}

func NewOpenAIClient() *OpenAIClient {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		key = os.Getenv("REACT_APP_OPENAI_API_KEY")
	}
	return &OpenAIClient{
		apiKey:  key,
		model:   "gpt-3.5-turbo",
		baseURL: "https://api.openai.com",
	}
}

// NewOpenAIClientWithBaseURL points the client at a different host, used in tests.
func NewOpenAIClientWithBaseURL(apiKey, baseURL string) *OpenAIClient {
	return &OpenAIClient{apiKey: apiKey, model: "gpt-3.5-turbo", baseURL: baseURL}
}

// HasKey reports whether an API key was configured. Callers fall back to
// template copy when it returns false.
func (o *OpenAIClient) HasKey() bool {
	return o.apiKey != ""
}

func (o *OpenAIClient) Generate(ctx context.Context, prompt, lang string) (string, error) {
	if o.apiKey == "" {
		return "", errors.New("missing OPENAI_API_KEY")
	}
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	system := sommelierSystemNL
	if lang == "en" {
		system = sommelierSystemEN
	}

	payload := map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": prompt},
		},
		"max_tokens":  150,
		"temperature": 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.baseURL+"/v1/chat/completions",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai api error: %s", string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", errors.New("empty openai response")
	}

	return result.Choices[0].Message.Content, nil
}

// Forward relays a raw chat-completions body unchanged and returns the raw
// response body plus status code. Request shaping stays with the caller.
func (o *OpenAIClient) Forward(ctx context.Context, body []byte) ([]byte, int, error) {
	if o.apiKey == "" {
		return nil, 0, errors.New("missing OPENAI_API_KEY")
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.baseURL+"/v1/chat/completions",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return raw, resp.StatusCode, nil
}
