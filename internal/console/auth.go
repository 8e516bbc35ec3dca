package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

func (c *Console) cmdLogin(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
	username := flags.StringP("username", "u", "", "foydalanuvchi nomi")
	password := flags.StringP("password", "p", "", "parol")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		return errors.New("Foydalanuvchi nomi kiritilishi shart")
	}
	if *password == "" {
		return errors.New("Parol kiritilishi shart")
	}

	user, err := c.session.Login(ctx, *username, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Kirish muvaffaqiyatli: %s (%s)\n", user.DisplayName(), user.Role)
	return nil
}

func (c *Console) cmdLogout(ctx context.Context) error {
	return c.session.Logout(ctx)
}

func (c *Console) cmdWhoami(ctx context.Context) error {
	user, err := c.currentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s\t%s\t%s\n", user.Username, user.DisplayName(), user.Role)
	if user.StationID != nil {
		fmt.Fprintf(c.out, "shaxobcha: %d\n", *user.StationID)
	}
	return nil
}
