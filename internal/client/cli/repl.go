package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

const (
	helpPublic  = "Available commands: register, login, forgot, tiers, market, exit"
	helpPrivate = "Available commands: profile, avatar, password, security, kyc, wallet, transfer, buyvip, " +
		"history <topups|withdraws|transfers|vip|commissions>, referral, chest, inv, merge, " +
		"market, sell, buy, cancel, notices, admin, logout, exit"
)

// repl reads commands from scanner and dispatches them until EOF or exit.
func (a *App) repl(ctx context.Context, scanner *bufio.Scanner) {
	for {
		fmt.Printf("cc %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpPrivate)
			} else {
				printlnFn(helpPublic)
			}
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			a.dispatch(ctx, cmd, args)
		}
	}
}

// dispatch resolves the command's view through the route guard before
// running it. A protected command while logged out prompts for login and,
// on success, replays the originally requested command.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	decision := a.guard.Resolve(cmd)

	if decision.PromptLogin {
		printlnFn("Please log in first.")
		if err := a.Login(ctx); err != nil || !a.isLoggedIn() {
			a.guard.ConsumePending()
			return
		}
		if pending := a.guard.ConsumePending(); pending != "" {
			a.dispatch(ctx, pending, args)
		}
		return
	}
	if decision.RedirectTo != "" {
		printlnFn("Not allowed, returning to", decision.RedirectTo)
		return
	}

	if err := a.exec(ctx, cmd, args); err != nil {
		printlnFn("Error:", err.Error())
	}
}

// exec runs a single, already-authorized command.
func (a *App) exec(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "forgot":
		return a.ForgotPassword(ctx)
	case "tiers":
		return a.VipTiers(ctx)
	case "profile":
		return a.Profile(ctx)
	case "avatar":
		return a.UploadAvatar(ctx)
	case "password":
		return a.ChangePassword(ctx)
	case "security":
		return a.UpdateSecurity(ctx)
	case "kyc":
		return a.SubmitKyc(ctx)
	case "wallet":
		return a.Wallet(ctx)
	case "transfer":
		return a.Transfer(ctx)
	case "buyvip":
		return a.BuyVip(ctx)
	case "history":
		return a.History(ctx, args)
	case "referral":
		return a.Referral(ctx)
	case "chest":
		return a.OpenChest(ctx)
	case "inv":
		return a.Inventory(ctx)
	case "merge":
		return a.MergeDragon(ctx)
	case "market":
		return a.Market(ctx, args)
	case "sell":
		return a.MarketSell(ctx)
	case "buy":
		return a.MarketBuy(ctx)
	case "cancel":
		return a.MarketCancel(ctx)
	case "notices":
		return a.Notices(ctx, args)
	case "admin":
		return a.Admin(ctx, args)
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}
