package dto

import "github.com/google/uuid"

type CreateTemplateRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Category       string   `json:"category"`
	Icon           string   `json:"icon,omitempty"`
	PreviewImage   string   `json:"preview_image,omitempty"`
	Features       []string `json:"features,omitempty"`
	DefaultPrompt  string   `json:"default_prompt,omitempty"`
	PrimaryColor   string   `json:"primary_color,omitempty"`
	SecondaryColor string   `json:"secondary_color,omitempty"`
	IsPremium      bool     `json:"is_premium,omitempty"`
}

type CreateTemplateResponse struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}
