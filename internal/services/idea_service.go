package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/clickngoai/clickngoai-backend/internal/config"
	"github.com/clickngoai/clickngoai-backend/internal/dto"
)

const ideaSystemPrompt = `You are an expert app designer. Given a user's app idea, generate a detailed app specification including:
- App name (creative and catchy)
- Description (2-3 sentences)
- Key features (5-7 features)
- Suggested colors (primary and secondary hex codes)
- Target audience
Respond with a JSON object with these exact fields:
{"name":"...", "description":"...", "features":["..."], "primaryColor":"#......", "secondaryColor":"#......", "targetAudience":"..."}
Return ONLY the JSON object, no extra text.`

type ideaChatRequest struct {
	Model       string            `json:"model"`
	Messages    []ideaChatMessage `json:"messages"`
	Temperature float64           `json:"temperature,omitempty"`
}

type ideaChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ideaChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// IdeaService turns a free-text prompt into a structured app
// specification via the configured LLM.
type IdeaService struct {
	cfg *config.Config
}

func NewIdeaService(cfg *config.Config) *IdeaService {
	return &IdeaService{cfg: cfg}
}

// fallbackIdea is returned whenever generation fails for any reason.
func fallbackIdea() *dto.AppIdeaResponse {
	return &dto.AppIdeaResponse{
		Name:           "My Awesome App",
		Description:    "A powerful application built with ClickNGoAI",
		Features:       []string{"User Authentication", "Dashboard", "Settings", "Notifications", "Profile Management"},
		PrimaryColor:   "#6366f1",
		SecondaryColor: "#8b5cf6",
		TargetAudience: "General users",
	}
}

// GenerateAppIdea never returns an error to the caller: transport or
// parse failures yield the fixed fallback specification instead.
func (s *IdeaService) GenerateAppIdea(prompt string) *dto.AppIdeaResponse {
	idea, err := s.callLLM(prompt)
	if err != nil {
		slog.Error("app idea generation failed", "error", err)
		return fallbackIdea()
	}
	return idea
}

func (s *IdeaService) callLLM(prompt string) (*dto.AppIdeaResponse, error) {
	payload, err := json.Marshal(ideaChatRequest{
		Model: s.cfg.LLMModel,
		Messages: []ideaChatMessage{
			{Role: "system", Content: ideaSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, s.cfg.LLMAPIURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.LLMAPIKey)

	client := &http.Client{Timeout: s.cfg.LLMTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("LLM API error: status %d", resp.StatusCode)
	}

	var completion ideaChatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("no response from LLM")
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	var idea dto.AppIdeaResponse
	if err := json.Unmarshal([]byte(content), &idea); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if idea.Name == "" {
		return nil, errors.New("LLM response missing app name")
	}
	return &idea, nil
}
