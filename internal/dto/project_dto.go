package dto

import "github.com/google/uuid"

type CreateProjectRequest struct {
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Prompt         string     `json:"prompt,omitempty"`
	AppType        string     `json:"app_type,omitempty"`
	TemplateID     *uuid.UUID `json:"template_id,omitempty"`
	PrimaryColor   string     `json:"primary_color,omitempty"`
	SecondaryColor string     `json:"secondary_color,omitempty"`
	Features       []string   `json:"features,omitempty"`
}

type CreateProjectResponse struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

// UpdateProjectRequest carries a partial update; nil fields are left
// untouched. The slug is immutable and deliberately absent.
type UpdateProjectRequest struct {
	Name               *string  `json:"name,omitempty"`
	Description        *string  `json:"description,omitempty"`
	PrimaryColor       *string  `json:"primary_color,omitempty"`
	SecondaryColor     *string  `json:"secondary_color,omitempty"`
	Features           []string `json:"features,omitempty"`
	LandingPageEnabled *bool    `json:"landing_page_enabled,omitempty"`
}
