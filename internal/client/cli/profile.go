package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dangtv/coinclub/internal/client/api"
	"github.com/dangtv/coinclub/internal/common"
)

// Profile shows the current record and optionally edits name and phone.
func (a *App) Profile(ctx context.Context) error {
	u := a.state.CurrentUser()
	if u != nil {
		fmt.Printf("username: %s\nname: %s\nphone: %s\nrole: %s\n", u.Username, u.Name, u.Phone, u.Role)
	}

	name, err := getSimpleText(a.reader, "New name (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "New phone (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" && phone == "" {
		return nil
	}

	upd := api.ProfileUpdate{Name: name, Phone: phone}
	if u != nil {
		if upd.Name == "" {
			upd.Name = u.Name
		}
		if upd.Phone == "" {
			upd.Phone = u.Phone
		}
		upd.AvatarURL = u.AvatarURL
	}

	updated, err := a.client.UpdateProfile(ctx, upd)
	if err != nil {
		return err
	}
	if err := a.state.SetUser(ctx, updated); err != nil {
		return err
	}
	fmt.Println("Profile saved")
	return nil
}

// UploadAvatar sends an image file and attaches the stored URL to the
// profile.
func (a *App) UploadAvatar(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path of the image file", os.Stdout)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	url, err := a.client.UploadAvatar(ctx, filepath.Base(path), f)
	if err != nil {
		return err
	}

	u := a.state.CurrentUser()
	if u == nil {
		fmt.Println("Uploaded:", url)
		return nil
	}
	updated, err := a.client.UpdateProfile(ctx, api.ProfileUpdate{
		Name:      u.Name,
		Phone:     u.Phone,
		AvatarURL: url,
	})
	if err != nil {
		return err
	}
	if err := a.state.SetUser(ctx, updated); err != nil {
		return err
	}
	fmt.Println("Avatar updated:", url)
	return nil
}

// ChangePassword rotates the login password.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	msg, err := a.client.ChangePassword(ctx, string(oldPassword), string(newPassword))
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

// UpdateSecurity rotates the second password and/or the transaction PIN.
func (a *App) UpdateSecurity(ctx context.Context) error {
	secondPassword, err := getPassword(os.Stdout, "New second password (empty skips)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secondPassword)

	pin, err := getPassword(os.Stdout, "New 6-digit transaction PIN (empty skips)")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pin)

	msg, err := a.client.UpdateSecurity(ctx,
		api.SecurityUpdateFromPanelForm(string(secondPassword), string(pin)))
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

// SubmitKyc uploads both identity document images and registers them.
func (a *App) SubmitKyc(ctx context.Context) error {
	upload := func(prompt string) (string, error) {
		path, err := getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return "", err
		}
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return a.client.UploadAvatar(ctx, filepath.Base(path), f)
	}

	front, err := upload("Path of the front image")
	if err != nil {
		return err
	}
	back, err := upload("Path of the back image")
	if err != nil {
		return err
	}

	msg, err := a.client.SubmitKyc(ctx, front, back)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
