package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dangtv/coinclub/internal/client/api"
	"github.com/dangtv/coinclub/internal/common"
)

// VipTiers prints the purchasable VIP levels.
func (a *App) VipTiers(ctx context.Context) error {
	tiers, err := a.client.VipTiers(ctx)
	if err != nil {
		return err
	}
	for _, t := range tiers {
		fmt.Printf("vip%d %-12s min topup %d\n", t.Level, t.Name, t.MinTopup)
	}
	return nil
}

// Wallet prints the balance snapshot.
func (a *App) Wallet(ctx context.Context) error {
	w, err := a.client.Wallet(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("coins: %d\ntotal topup: %d\nvip level: %d\n", w.Coins, w.TotalTopup, w.VipLevel)
	return nil
}

// Transfer moves coins to another member. The transaction PIN authorizes
// the debit.
func (a *App) Transfer(ctx context.Context) error {
	to, err := getSimpleText(a.reader, "Recipient username", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := GetAmount(a.reader, "Amount", os.Stdout)
	if err != nil {
		return err
	}
	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}
	pin, err := getPassword(os.Stdout, "Transaction PIN")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	res, err := a.client.Transfer(ctx, api.TransferRequest{
		ToUsername: to,
		Amount:     amount,
		Note:       note,
		TxnPin:     string(pin),
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s (fee %d, debit %d)\n", res.Message, res.Fee, res.Debit)
	return a.state.Refresh(ctx)
}

// BuyVip purchases the next VIP tier.
func (a *App) BuyVip(ctx context.Context) error {
	res, err := a.client.BuyVip(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s (now vip%d, coins %d)\n", res.Message, res.Level, res.Coins)
	return a.state.Refresh(ctx)
}

// History prints one of the transaction logs: topups, withdraws,
// transfers, vip, or commissions.
func (a *App) History(ctx context.Context, args []string) error {
	kind := "topups"
	if len(args) > 0 {
		kind = args[0]
	}

	switch kind {
	case "topups":
		rows, err := a.client.TopupHistory(ctx)
		if err != nil {
			return err
		}
		for _, r := range rows {
			fmt.Printf("%s +%d by %s %s\n", r.CreatedAt, r.Amount, r.AdminUsername, r.Note)
		}
	case "withdraws":
		rows, err := a.client.WithdrawHistory(ctx)
		if err != nil {
			return err
		}
		for _, r := range rows {
			fmt.Printf("%s -%d by %s %s\n", r.CreatedAt, r.Amount, r.AdminUsername, r.Note)
		}
	case "transfers":
		rows, err := a.client.TransferHistory(ctx)
		if err != nil {
			return err
		}
		for _, r := range rows {
			fmt.Printf("%s %s %d (fee %d) %s\n", r.CreatedAt, r.Direction, r.Amount, r.Fee, r.Counterpart)
		}
	case "vip":
		rows, err := a.client.VipHistory(ctx)
		if err != nil {
			return err
		}
		for _, r := range rows {
			fmt.Printf("%s vip%d -> vip%d for %d\n", r.CreatedAt, r.OldLevel, r.Level, r.Price)
		}
	case "commissions":
		rows, err := a.client.Commissions(ctx)
		if err != nil {
			return err
		}
		for _, r := range rows {
			fmt.Printf("%s +%d %s from %s (depth %d, %.1f%%)\n",
				r.CreatedAt, r.Amount, r.Kind, r.BuyerUsername, r.Depth, r.Percent)
		}
	default:
		return fmt.Errorf("unknown history %q, want topups|withdraws|transfers|vip|commissions", kind)
	}
	return nil
}

// Referral prints the caller's invite code, link, and earnings.
func (a *App) Referral(ctx context.Context) error {
	info, err := a.client.ReferralInfo(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("code: %s\nlink: %s\ninvited: %d\nearned: %d\n",
		info.Code, info.Link, info.Count, info.Total)
	return nil
}
