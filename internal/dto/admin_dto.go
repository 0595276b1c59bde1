package dto

type StatsResponse struct {
	Users         int64 `json:"users"`
	Projects      int64 `json:"projects"`
	Builds        int64 `json:"builds"`
	Templates     int64 `json:"templates"`
	PendingBuilds int64 `json:"pending_builds"`
}

// UpdateUserRequest is the superadmin-only entitlement mutation. Nil
// fields are left untouched.
type UpdateUserRequest struct {
	Role             *string `json:"role,omitempty"`
	SubscriptionTier *string `json:"subscription_tier,omitempty"`
	AppLimit         *int    `json:"app_limit,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
}
