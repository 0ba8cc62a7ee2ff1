// Package models defines client-side data models for the coinclub API.
// All of them are server-authoritative: the client caches them for fast UI
// hydration and only replaces them with fresh server responses.
package models

// Role distinguishes ordinary members from panel administrators.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the account record as returned by /login and /private/me.
type User struct {
	ID         uint64 `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
	Role       Role   `json:"role"`
	Coins      int64  `json:"coins"`
	TotalTopup int64  `json:"totalTopup"`
	VipLevel   int    `json:"vipLevel"`
}

// IsAdmin reports whether the user may access the admin panel.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
