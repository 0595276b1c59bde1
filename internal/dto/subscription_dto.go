package dto

import "github.com/google/uuid"

type CreateSubscriptionRequest struct {
	Tier     string `json:"tier"`
	Currency string `json:"currency"`
}

type CreateSubscriptionResponse struct {
	ID uuid.UUID `json:"id"`
}

type PricingPlanResponse struct {
	Tier      string   `json:"tier"`
	NameEn    string   `json:"name_en"`
	PriceINR  int      `json:"price_inr"`
	PriceUSD  int      `json:"price_usd"`
	AppLimit  int      `json:"app_limit"`
	Features  []string `json:"features"`
	IsPopular bool     `json:"is_popular"`
}

type UpsertPricingPlanRequest struct {
	NameEn        string   `json:"name_en"`
	NameHi        string   `json:"name_hi,omitempty"`
	DescriptionEn string   `json:"description_en,omitempty"`
	DescriptionHi string   `json:"description_hi,omitempty"`
	PriceINR      int      `json:"price_inr"`
	PriceUSD      int      `json:"price_usd"`
	AppLimit      int      `json:"app_limit"`
	Features      []string `json:"features,omitempty"`
	IsPopular     bool     `json:"is_popular,omitempty"`
}
