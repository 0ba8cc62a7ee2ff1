package models

// InventoryItem is one stack of treasure items in /private/inventory.
type InventoryItem struct {
	Code string `json:"code"`
	Qty  int64  `json:"qty"`
}

// MarketRow is one open listing on /market. SellerUsername and SellerEmail
// are alternates; older servers fill only the email field.
type MarketRow struct {
	ID             uint64 `json:"id"`
	Code           string `json:"code"`
	Qty            int64  `json:"qty"`
	PricePerUnit   int64  `json:"pricePerUnit"`
	SellerID       uint64 `json:"sellerId"`
	SellerUsername string `json:"sellerUsername,omitempty"`
	SellerEmail    string `json:"sellerEmail,omitempty"`
}

// Seller returns the best available display name for the listing's seller.
func (m *MarketRow) Seller() string {
	if m.SellerUsername != "" {
		return m.SellerUsername
	}
	return m.SellerEmail
}

// ChestOutcome is the payload of /private/chest-open.
type ChestOutcome struct {
	Result    string           `json:"result"` // "COIN" or "DRAGON_BALL"
	Code      string           `json:"code,omitempty"`
	Amount    int64            `json:"amount"`
	Coins     int64            `json:"coins"`
	Inventory map[string]int64 `json:"inv"`
}
