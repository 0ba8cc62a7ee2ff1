package models

// TransferDirection marks a transfer row as incoming or outgoing.
type TransferDirection string

const (
	TransferIn  TransferDirection = "in"
	TransferOut TransferDirection = "out"
)

// CommissionKind separates upline referral commissions from admin payouts.
type CommissionKind string

const (
	CommissionUpline CommissionKind = "UPLINE"
	CommissionAdmin  CommissionKind = "ADMIN"
)

// TopupRow is one /private/history/topups entry.
type TopupRow struct {
	ID            uint64 `json:"id"`
	Amount        int64  `json:"amount"`
	Note          string `json:"note"`
	AdminUsername string `json:"adminUsername"`
	CreatedAt     string `json:"createdAt"`
}

// WithdrawRow is one /private/history/withdraws entry.
type WithdrawRow struct {
	ID            uint64 `json:"id"`
	Amount        int64  `json:"amount"`
	Note          string `json:"note"`
	AdminUsername string `json:"adminUsername"`
	CreatedAt     string `json:"createdAt"`
}

// TransferRow is one /private/history/transfers entry.
type TransferRow struct {
	ID          uint64            `json:"id"`
	Direction   TransferDirection `json:"direction"`
	Amount      int64             `json:"amount"`
	Fee         int64             `json:"fee"`
	Counterpart string            `json:"counterpart"`
	CreatedAt   string            `json:"createdAt"`
}

// VipRow is one /private/history/vip entry.
type VipRow struct {
	ID        uint64 `json:"id"`
	Level     int    `json:"level"`
	Price     int64  `json:"price"`
	OldLevel  int    `json:"oldLevel"`
	CreatedAt string `json:"createdAt"`
}

// CommissionRow is one /private/history/commissions entry.
type CommissionRow struct {
	ID            uint64         `json:"id"`
	BuyerUsername string         `json:"buyerUsername"`
	Depth         int            `json:"depth"`
	Percent       float64        `json:"percent"`
	Amount        int64          `json:"amount"`
	Kind          CommissionKind `json:"kind"`
	VipLevel      int            `json:"vipLevel"`
	CreatedAt     string         `json:"createdAt"`
}
