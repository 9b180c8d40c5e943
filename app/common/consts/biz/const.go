package biz

import "time"

type CtxKey string

const (
	USER_KEY CtxKey = "user_id"

	ACCESSTOKEN = "access_token"
)

// Marketplace fee rates, in basis points of the minor currency unit.
const (
	PlatformFeeBps     = 1000 // 10% of the product amount, kept by the platform
	CancellationFeeBps = 500  // 5% of the original charge, withheld on refund
)

const (
	DefaultCurrency = "usd"

	// Sold listings are purged once the sale is this old.
	SoldListingRetention = 90 * 24 * time.Hour

	// Conversations and messages expire after 30 days of silence.
	MessageRetention = 30 * 24 * time.Hour

	// Per-commit mutation ceiling of the backing store, kept as the
	// reaper's batch bound.
	ReaperBatchSize = 500
)

const (
	DefaultOnboardingReturnURL  = "https://wrestleswap.com/seller/onboarding/complete"
	DefaultOnboardingRefreshURL = "https://wrestleswap.com/seller/onboarding/refresh"
)
