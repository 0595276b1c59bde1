package services

import (
	"errors"
	"time"

	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidTier = errors.New("invalid subscription tier")

// Fixed tier pricing used when creating subscriptions.
var tierPricing = map[string]struct {
	INR   int
	USD   int
	Limit int
}{
	models.TierSingle:    {INR: 3999, USD: 49, Limit: 1},
	models.TierMultiple:  {INR: 24999, USD: 79, Limit: 15},
	models.TierUnlimited: {INR: 34999, USD: 199, Limit: 9999},
}

// defaultPricingPlans is served when the pricing_plans table is empty.
var defaultPricingPlans = []dto.PricingPlanResponse{
	{
		Tier:     models.TierFree,
		NameEn:   "Free Trial",
		PriceINR: 0, PriceUSD: 0, AppLimit: 1,
		Features: []string{"1 App", "Basic Templates", "Community Support"},
	},
	{
		Tier:     models.TierSingle,
		NameEn:   "Single App",
		PriceINR: 3999, PriceUSD: 49, AppLimit: 1,
		Features: []string{"1 Premium App", "All Templates", "Priority Support", "Custom Branding"},
	},
	{
		Tier:     models.TierMultiple,
		NameEn:   "15 Apps Pack",
		PriceINR: 24999, PriceUSD: 79, AppLimit: 15,
		Features:  []string{"15 Premium Apps", "All Templates", "Priority Support", "Custom Branding", "Analytics Dashboard"},
		IsPopular: true,
	},
	{
		Tier:     models.TierUnlimited,
		NameEn:   "Unlimited",
		PriceINR: 34999, PriceUSD: 199, AppLimit: 9999,
		Features: []string{"Unlimited Apps", "All Templates", "24/7 Support", "Custom Branding", "Analytics Dashboard", "API Access", "White Label"},
	},
}

type SubscriptionService struct {
	db       *gorm.DB
	activity *ActivityLogger
}

func NewSubscriptionService(db *gorm.DB, activity *ActivityLogger) *SubscriptionService {
	return &SubscriptionService{db: db, activity: activity}
}

// GetPricing lists active plans, cheapest first, falling back to the
// hardcoded catalog when the table is empty.
func (s *SubscriptionService) GetPricing() ([]dto.PricingPlanResponse, error) {
	var plans []models.PricingPlan
	if err := s.db.Where("is_active = ?", true).Order("price_inr ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return defaultPricingPlans, nil
	}

	out := make([]dto.PricingPlanResponse, len(plans))
	for i, p := range plans {
		out[i] = dto.PricingPlanResponse{
			Tier:      p.Tier,
			NameEn:    p.NameEn,
			PriceINR:  p.PriceINR,
			PriceUSD:  p.PriceUSD,
			AppLimit:  p.AppLimit,
			Features:  p.Features,
			IsPopular: p.IsPopular,
		}
	}
	return out, nil
}

// GetMy returns the caller's most recent active subscription, or nil.
func (s *SubscriptionService) GetMy(userID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.Where("user_id = ? AND status = ?", userID, models.SubscriptionActive).
		Order("created_at DESC").
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Create records a purchase: a 30-day active subscription plus an
// immediate overwrite of the user's tier and app limit. Existing active
// subscriptions are not checked; the most recent one wins.
func (s *SubscriptionService) Create(actor *models.User, req *dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	plan, ok := tierPricing[req.Tier]
	if !ok {
		return nil, ErrInvalidTier
	}

	currency := req.Currency
	if currency != "USD" {
		currency = "INR"
	}

	end := time.Now().Add(30 * 24 * time.Hour)
	sub := models.Subscription{
		ID:        uuid.New(),
		UserID:    actor.ID,
		Tier:      req.Tier,
		PriceINR:  plan.INR,
		PriceUSD:  plan.USD,
		Currency:  currency,
		Status:    models.SubscriptionActive,
		StartDate: time.Now(),
		EndDate:   &end,
		AutoRenew: true,
	}

	if err := s.db.Create(&sub).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.User{}).Where("id = ?", actor.ID).Updates(map[string]interface{}{
		"subscription_tier": req.Tier,
		"app_limit":         plan.Limit,
	}).Error; err != nil {
		return nil, err
	}

	s.activity.Log(actor.ID, "subscription_created", "subscription", &sub.ID, map[string]interface{}{
		"tier":     req.Tier,
		"currency": currency,
	})

	return &sub, nil
}

// Cancel marks the named subscription cancelled and resets the CALLING
// user's tier and limit to free/1, even when the subscription belongs
// to someone else.
func (s *SubscriptionService) Cancel(actor *models.User, id uuid.UUID) error {
	if err := s.db.Model(&models.Subscription{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     models.SubscriptionCancelled,
		"auto_renew": false,
	}).Error; err != nil {
		return err
	}

	if err := s.db.Model(&models.User{}).Where("id = ?", actor.ID).Updates(map[string]interface{}{
		"subscription_tier": models.TierFree,
		"app_limit":         1,
	}).Error; err != nil {
		return err
	}

	s.activity.Log(actor.ID, "subscription_cancelled", "subscription", &id, nil)
	return nil
}
