package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clickngoai/clickngoai-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ideaConfig(url string) *config.Config {
	return &config.Config{
		LLMAPIKey:  "test-key",
		LLMAPIURL:  url,
		LLMModel:   "deepseek-chat",
		LLMTimeout: 5 * time.Second,
	}
}

func chatCompletion(content string) []byte {
	b, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	})
	return b
}

func TestGenerateAppIdea_ParsesFencedJSON(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write(chatCompletion("```json\n{\"name\":\"FitBuddy\",\"description\":\"Track workouts\",\"features\":[\"Plans\",\"Stats\"],\"primaryColor\":\"#112233\",\"secondaryColor\":\"#445566\",\"targetAudience\":\"Gym goers\"}\n```"))
	}))
	defer server.Close()

	svc := NewIdeaService(ideaConfig(server.URL))
	idea := svc.GenerateAppIdea("an app for tracking gym workouts")

	require.NotNil(t, idea)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "FitBuddy", idea.Name)
	assert.Equal(t, "Track workouts", idea.Description)
	assert.Equal(t, []string{"Plans", "Stats"}, idea.Features)
	assert.Equal(t, "#112233", idea.PrimaryColor)
	assert.Equal(t, "Gym goers", idea.TargetAudience)
}

func TestGenerateAppIdea_FallbackPaths(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "empty choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices":[]}`))
			},
		},
		{
			name: "content is not JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write(chatCompletion("Sure! Here is an idea for you."))
			},
		},
		{
			name: "missing app name",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write(chatCompletion(`{"description":"nameless"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			svc := NewIdeaService(ideaConfig(server.URL))
			idea := svc.GenerateAppIdea("an app for tracking gym workouts")

			require.NotNil(t, idea)
			assert.Equal(t, "My Awesome App", idea.Name)
			assert.Equal(t, "#6366f1", idea.PrimaryColor)
			assert.Equal(t, "#8b5cf6", idea.SecondaryColor)
			assert.Equal(t, "General users", idea.TargetAudience)
			assert.Len(t, idea.Features, 5)
		})
	}
}

func TestGenerateAppIdea_UnreachableUpstream(t *testing.T) {
	svc := NewIdeaService(ideaConfig("http://127.0.0.1:1/v1/chat/completions"))
	idea := svc.GenerateAppIdea("an app for tracking gym workouts")

	require.NotNil(t, idea)
	assert.Equal(t, "My Awesome App", idea.Name)
}
