package models

// Wallet is the balance snapshot from /private/wallet.
type Wallet struct {
	Coins      int64 `json:"coins"`
	TotalTopup int64 `json:"totalTopup"`
	VipLevel   int   `json:"vipLevel"`
}

// VipTier describes one purchasable VIP level.
type VipTier struct {
	Level    int    `json:"level"`
	Name     string `json:"name"`
	MinTopup int64  `json:"minTopup"`
}

// ReferralInfo summarizes the caller's referral code and earnings.
type ReferralInfo struct {
	Code  string `json:"code"`
	Link  string `json:"link"`
	Count int    `json:"count"`
	Total int64  `json:"total"`
}
