package dto

type GenerateAppIdeaRequest struct {
	Prompt string `json:"prompt"`
}

// AppIdeaResponse matches the LLM's structured output. On any generation
// failure the handler returns a fixed fallback instance instead of an
// error.
type AppIdeaResponse struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	PrimaryColor   string   `json:"primaryColor"`
	SecondaryColor string   `json:"secondaryColor"`
	TargetAudience string   `json:"targetAudience"`
}
