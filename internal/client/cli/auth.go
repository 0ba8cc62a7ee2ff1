package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dangtv/coinclub/internal/client/api"
	"github.com/dangtv/coinclub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and creates an account. A
// previously captured referral code is consumed and sent along.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	nickname, err := getSimpleText(a.reader, "Enter nickname", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}

	ref := ""
	if a.refs != nil {
		if code, err := a.refs.Consume(ctx); err == nil {
			ref = code
		}
	}

	msg, err := a.client.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: string(password),
		Nickname: nickname,
		Phone:    phone,
		Ref:      ref,
	})
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

// Login prompts for credentials, authenticates, and installs the issued
// token and user into the session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return err
	}
	if err := a.state.SetAuth(ctx, res.Token, res.User); err != nil {
		return err
	}

	if res.User != nil {
		if err := a.notices.Push(ctx, res.User.ID, "welcome", "Welcome",
			fmt.Sprintf("Hello %s, good to see you!", res.User.Name)); err != nil {
			a.log.Warn(ctx, "welcome notification failed", "error", err)
		}
	}

	fmt.Println("Login successful")
	return nil
}

// Logout tears the session down, here and (via the shared store) in every
// other window.
func (a *App) Logout(ctx context.Context) error {
	if err := a.state.ClearAuth(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// ForgotPassword resets the login password using the second password.
func (a *App) ForgotPassword(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	secPassword, err := getPassword(os.Stdout, "Enter second password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secPassword)

	newPassword, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	msg, err := a.client.ForgotPassword(ctx, username, string(secPassword), string(newPassword))
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
