package models

// KycStatus is the verification state of a member's identity documents.
type KycStatus string

const (
	KycNone     KycStatus = "NONE"
	KycPending  KycStatus = "PENDING"
	KycVerified KycStatus = "VERIFIED"
	KycApproved KycStatus = "APPROVED"
	KycRejected KycStatus = "REJECTED"
)

// AdminUserRow is one row of the /admin/users listing.
type AdminUserRow struct {
	ID         uint64 `json:"id"`
	Username   string `json:"username"`
	Nickname   string `json:"nickname"`
	VipLevel   int    `json:"vipLevel"`
	TotalTopup int64  `json:"totalTopup"`
	Coins      int64  `json:"coins"`
}

// AdminUserDetail is the full record from /admin/users/{id}, including the
// KYC fields the listing omits.
type AdminUserDetail struct {
	User

	KycStatus   KycStatus `json:"kycStatus,omitempty"`
	KycFullName string    `json:"kycFullName,omitempty"`
	KycNumber   string    `json:"kycNumber,omitempty"`
	KycDob      string    `json:"kycDob,omitempty"`
	HasKycFront bool      `json:"hasKycFront"`
	HasKycBack  bool      `json:"hasKycBack"`
}
