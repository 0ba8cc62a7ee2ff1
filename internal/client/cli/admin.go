package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"strconv"
	"strings"

	"github.com/dangtv/coinclub/internal/client/api"
)

// Admin runs the panel operations:
//
//	admin users [vip<N>|<name>]   list members, optionally filtered
//	admin user <id>               full record including KYC state
//	admin topup <id>              credit coins
//	admin withdraw <id>           debit coins
//	admin delete <id>             remove the account
//	admin kyc <id> <front|back>   download an identity document image
func (a *App) Admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: admin <users|user|topup|withdraw|delete|kyc>")
	}

	switch args[0] {
	case "users":
		return a.adminUsers(ctx, args[1:])
	case "user":
		id, err := adminUserID(args[1:])
		if err != nil {
			return err
		}
		return a.adminUserDetail(ctx, id)
	case "topup":
		id, err := adminUserID(args[1:])
		if err != nil {
			return err
		}
		return a.adminAmount(ctx, id, a.client.AdminTopup)
	case "withdraw":
		id, err := adminUserID(args[1:])
		if err != nil {
			return err
		}
		return a.adminAmount(ctx, id, a.client.AdminWithdraw)
	case "delete":
		id, err := adminUserID(args[1:])
		if err != nil {
			return err
		}
		confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete user %d? (yes/no)", id), os.Stdout)
		if err != nil {
			return err
		}
		if confirm != "yes" {
			fmt.Println("Aborted")
			return nil
		}
		msg, err := a.client.AdminDeleteUser(ctx, id)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	case "kyc":
		return a.adminKycImage(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func (a *App) adminUsers(ctx context.Context, args []string) error {
	var filter api.AdminUserFilter
	for _, arg := range args {
		if rest, ok := strings.CutPrefix(arg, "vip"); ok {
			if level, err := strconv.Atoi(rest); err == nil {
				filter.VipLevel = &level
				continue
			}
		}
		filter.Username = arg
	}

	rows, err := a.client.AdminUsers(ctx, filter)
	if err != nil {
		return err
	}
	for _, r := range rows {
		fmt.Printf("#%-6d %-16s %-16s vip%d topup %d coins %d\n",
			r.ID, r.Username, r.Nickname, r.VipLevel, r.TotalTopup, r.Coins)
	}
	return nil
}

func (a *App) adminUserDetail(ctx context.Context, id uint64) error {
	d, err := a.client.AdminUserDetail(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("#%d %s (%s)\nphone: %s\nrole: %s\nvip%d, topup %d, coins %d\n",
		d.ID, d.Username, d.Name, d.Phone, d.Role, d.VipLevel, d.TotalTopup, d.Coins)
	if d.KycStatus != "" {
		fmt.Printf("kyc: %s %s %s dob %s (front %v, back %v)\n",
			d.KycStatus, d.KycFullName, d.KycNumber, d.KycDob, d.HasKycFront, d.HasKycBack)
	}
	return nil
}

func (a *App) adminAmount(ctx context.Context, id uint64,
	op func(context.Context, uint64, int64, string) (string, error)) error {

	amount, err := GetAmount(a.reader, "Amount", os.Stdout)
	if err != nil {
		return err
	}
	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}
	msg, err := op(ctx, id, amount, note)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func (a *App) adminKycImage(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: admin kyc <id> <front|back>")
	}
	id, err := adminUserID(args[:1])
	if err != nil {
		return err
	}
	side := api.KycSide(args[1])
	if side != api.KycFront && side != api.KycBack {
		return fmt.Errorf("invalid side %q, want front or back", args[1])
	}

	data, contentType, err := a.client.AdminKycImage(ctx, id, side)
	if err != nil {
		return err
	}
	ext := ".bin"
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		ext = exts[0]
	}
	name := fmt.Sprintf("kyc-%d-%s%s", id, side, ext)
	if err := os.WriteFile(name, data, 0o600); err != nil {
		return err
	}
	fmt.Println("Saved to", name)
	return nil
}

func adminUserID(args []string) (uint64, error) {
	if len(args) == 0 {
		return 0, errors.New("user id required")
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q", args[0])
	}
	return id, nil
}
