package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
	"github.com/Shahriyor2077/ayoqsh-console/internal/data"
	"github.com/Shahriyor2077/ayoqsh-console/internal/util"
)

func (c *Console) cmdChecks(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("checks buyrug'i: list, create, confirm yoki cancel")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return c.checksList(ctx, rest)
	case "create":
		return c.checksCreate(ctx, rest)
	case "confirm":
		return c.checksTransition(ctx, rest, c.data.ConfirmCheck)
	case "cancel":
		return c.checksTransition(ctx, rest, c.data.CancelCheck)
	default:
		return fmt.Errorf("noma'lum checks buyrug'i: %s", sub)
	}
}

func (c *Console) checksList(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("checks list", pflag.ContinueOnError)
	stationID := flags.Int64("station", 0, "shaxobcha bo'yicha filtr")
	status := flags.String("status", "", "holat bo'yicha filtr")
	operatorID := flags.Int64("operator", 0, "operator bo'yicha filtr")
	search := flags.String("search", "", "kod, mijoz yoki operator bo'yicha qidiruv")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if _, err := c.currentUser(ctx); err != nil {
		return err
	}

	checks, err := c.data.Checks(ctx, api.CheckFilter{
		StationID:  *stationID,
		Status:     *status,
		OperatorID: *operatorID,
	})
	if err != nil {
		return err
	}

	c.renderChecks(data.FilterChecks(checks, *search))
	return nil
}

func (c *Console) checksCreate(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("checks create", pflag.ContinueOnError)
	amount := flags.Float64("liters", 0, "litr miqdori")
	stationID := flags.Int64("station", 0, "shaxobcha (operator profilidan olinadi, berilmasa)")
	name := flags.String("customer", "", "mijoz ismi")
	phone := flags.String("phone", "", "mijoz telefoni")
	address := flags.String("address", "", "mijoz manzili")
	autoUse := flags.Bool("auto-use", false, "chekni darhol tasdiqlash")
	if err := flags.Parse(args); err != nil {
		return err
	}

	user, err := c.currentUser(ctx)
	if err != nil {
		return err
	}
	if *stationID == 0 && user.StationID != nil {
		*stationID = *user.StationID
	}

	check, err := c.data.CreateCheck(ctx, api.CreateCheckInput{
		AmountLiters:    *amount,
		StationID:       *stationID,
		CustomerName:    *name,
		CustomerPhone:   *phone,
		CustomerAddress: *address,
		AutoUse:         *autoUse,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Chek kodi: %s (%s L)\n", check.Code, util.FormatLiters(check.AmountLiters))
	if file, err := saveQR(check); err == nil && file != "" {
		fmt.Fprintf(c.out, "QR saqlandi: %s\n", file)
	}
	return nil
}

func (c *Console) checksTransition(ctx context.Context, args []string, op func(context.Context, int64) (*api.Check, error)) error {
	flags := pflag.NewFlagSet("checks transition", pflag.ContinueOnError)
	id := flags.Int64("id", 0, "chek identifikatori")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("chek identifikatori kiritilishi shart (--id)")
	}

	if _, err := c.currentUser(ctx); err != nil {
		return err
	}

	check, err := op(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s: %s\n", check.Code, statusLabel(check.Status))
	return nil
}
