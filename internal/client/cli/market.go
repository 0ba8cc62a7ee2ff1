package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// Market prints the open listings, optionally filtered by item code.
func (a *App) Market(ctx context.Context, args []string) error {
	code := ""
	if len(args) > 0 {
		code = args[0]
	}
	rows, err := a.client.Market(ctx, code)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No open listings")
		return nil
	}
	for _, r := range rows {
		fmt.Printf("#%d %-16s x%d @%d by %s\n", r.ID, r.Code, r.Qty, r.PricePerUnit, r.Seller())
	}
	return nil
}

// MarketSell lists items from the inventory for sale.
func (a *App) MarketSell(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Item code", os.Stdout)
	if err != nil {
		return err
	}
	qty, err := GetAmount(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return err
	}
	price, err := GetAmount(a.reader, "Price per unit", os.Stdout)
	if err != nil {
		return err
	}
	msg, err := a.client.MarketCreate(ctx, code, qty, price)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

// MarketBuy purchases part or all of a listing.
func (a *App) MarketBuy(ctx context.Context) error {
	id, err := getListingID(a)
	if err != nil {
		return err
	}
	qty, err := GetAmount(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return err
	}
	msg, err := a.client.MarketBuy(ctx, id, qty)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return a.state.Refresh(ctx)
}

// MarketCancel withdraws the caller's listing back into the inventory.
// An empty quantity withdraws the whole stack.
func (a *App) MarketCancel(ctx context.Context) error {
	id, err := getListingID(a)
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "Quantity (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	var qty int64
	if text != "" {
		qty, err = strconv.ParseInt(text, 10, 64)
		if err != nil || qty <= 0 {
			return fmt.Errorf("invalid quantity %q", text)
		}
	}
	msg, err := a.client.MarketWithdraw(ctx, id, qty)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func getListingID(a *App) (uint64, error) {
	text, err := getSimpleText(a.reader, "Listing id", os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid listing id %q", text)
	}
	return id, nil
}
