package cli

import (
	"context"
	"fmt"
)

// OpenChest opens one treasure chest and prints the outcome.
func (a *App) OpenChest(ctx context.Context) error {
	out, err := a.client.OpenChest(ctx)
	if err != nil {
		return err
	}
	switch out.Result {
	case "COIN":
		fmt.Printf("You won %d coins! (balance %d)\n", out.Amount, out.Coins)
	case "DRAGON_BALL":
		fmt.Printf("You found %s! (x%d)\n", out.Code, out.Amount)
	default:
		fmt.Printf("Result: %s\n", out.Result)
	}
	return a.state.Refresh(ctx)
}

// Inventory prints the treasure item stacks.
func (a *App) Inventory(ctx context.Context) error {
	items, err := a.client.Inventory(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Inventory is empty")
		return nil
	}
	for _, it := range items {
		fmt.Printf("%-16s x%d\n", it.Code, it.Qty)
	}
	return nil
}

// MergeDragon trades a full set of dragon balls for coins.
func (a *App) MergeDragon(ctx context.Context) error {
	res, err := a.client.MergeDragon(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s (coins %d)\n", res.Message, res.Coins)
	return a.state.Refresh(ctx)
}
