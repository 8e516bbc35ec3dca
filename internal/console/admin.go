package console

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
	"github.com/Shahriyor2077/ayoqsh-console/internal/util"
)

func (c *Console) cmdDashboard(ctx context.Context) error {
	if _, err := c.currentUser(ctx); err != nil {
		return err
	}

	stats, err := c.data.Stats(ctx)
	if err != nil {
		return err
	}
	c.renderStats(stats)
	return nil
}

func (c *Console) cmdStations(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	if _, err := c.currentUser(ctx); err != nil {
		return err
	}

	switch sub {
	case "list":
		stations, err := c.data.Stations(ctx)
		if err != nil {
			return err
		}
		c.table("ID\tNOMI\tMANZIL\tFAOL\tCHEKLAR", func(w *tabwriter.Writer) {
			for _, st := range stations {
				address := st.Address
				if address == "" {
					address = "-"
				}
				active := "yo'q"
				if st.IsActive {
					active = "ha"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", st.ID, st.Name, address, active, st.CheckCount)
			}
		})
		return nil
	case "create", "update":
		flags := pflag.NewFlagSet("stations "+sub, pflag.ContinueOnError)
		id := flags.Int64("id", 0, "shaxobcha identifikatori (update)")
		name := flags.String("name", "", "shaxobcha nomi")
		address := flags.String("address", "", "manzil")
		active := flags.Bool("active", true, "faol holat")
		if err := flags.Parse(rest); err != nil {
			return err
		}
		input := api.CreateStationInput{Name: *name, Address: *address}
		if flags.Changed("active") {
			input.IsActive = active
		}
		if sub == "create" {
			_, err := c.data.CreateStation(ctx, input)
			return err
		}
		if *id <= 0 {
			return errors.New("shaxobcha identifikatori kiritilishi shart (--id)")
		}
		_, err := c.data.UpdateStation(ctx, *id, input)
		return err
	case "delete":
		flags := pflag.NewFlagSet("stations delete", pflag.ContinueOnError)
		id := flags.Int64("id", 0, "shaxobcha identifikatori")
		if err := flags.Parse(rest); err != nil {
			return err
		}
		if *id <= 0 {
			return errors.New("shaxobcha identifikatori kiritilishi shart (--id)")
		}
		return c.data.DeleteStation(ctx, *id)
	default:
		return fmt.Errorf("noma'lum stations buyrug'i: %s", sub)
	}
}

func (c *Console) cmdUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	if _, err := c.currentUser(ctx); err != nil {
		return err
	}

	switch sub {
	case "list":
		flags := pflag.NewFlagSet("users list", pflag.ContinueOnError)
		role := flags.String("role", "", "rol bo'yicha filtr")
		if err := flags.Parse(rest); err != nil {
			return err
		}
		users, err := c.data.Users(ctx, *role)
		if err != nil {
			return err
		}
		c.table("ID\tLOGIN\tISM\tROL\tTELEFON\tBALANS", func(w *tabwriter.Writer) {
			for _, u := range users {
				phone := u.Phone
				if phone == "" {
					phone = "-"
				}
				balance := "-"
				if u.BalanceLiters != "" {
					balance = util.FormatLitersString(u.BalanceLiters) + " L"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.DisplayName(), u.Role, phone, balance)
			}
		})
		return nil
	case "create":
		flags := pflag.NewFlagSet("users create", pflag.ContinueOnError)
		username := flags.String("username", "", "login")
		password := flags.String("password", "", "parol")
		fullName := flags.String("name", "", "to'liq ism")
		role := flags.String("role", "", "rol: admin, moderator, operator, customer")
		stationID := flags.Int64("station", 0, "operator shaxobchasi")
		phone := flags.String("phone", "", "telefon")
		if err := flags.Parse(rest); err != nil {
			return err
		}
		input := api.CreateUserInput{
			Username: *username,
			Password: *password,
			FullName: *fullName,
			Role:     *role,
			Phone:    *phone,
		}
		if *stationID > 0 {
			input.StationID = stationID
		}
		_, err := c.data.CreateUser(ctx, input)
		return err
	case "update":
		flags := pflag.NewFlagSet("users update", pflag.ContinueOnError)
		id := flags.Int64("id", 0, "foydalanuvchi identifikatori")
		password := flags.String("password", "", "yangi parol")
		fullName := flags.String("name", "", "to'liq ism")
		phone := flags.String("phone", "", "telefon")
		stationID := flags.Int64("station", 0, "shaxobcha")
		if err := flags.Parse(rest); err != nil {
			return err
		}
		if *id <= 0 {
			return errors.New("foydalanuvchi identifikatori kiritilishi shart (--id)")
		}
		input := api.UpdateUserInput{Password: *password, FullName: *fullName, Phone: *phone}
		if *stationID > 0 {
			input.StationID = stationID
		}
		_, err := c.data.UpdateUser(ctx, *id, input)
		return err
	case "delete":
		flags := pflag.NewFlagSet("users delete", pflag.ContinueOnError)
		id := flags.Int64("id", 0, "foydalanuvchi identifikatori")
		if err := flags.Parse(rest); err != nil {
			return err
		}
		if *id <= 0 {
			return errors.New("foydalanuvchi identifikatori kiritilishi shart (--id)")
		}
		return c.data.DeleteUser(ctx, *id)
	default:
		return fmt.Errorf("noma'lum users buyrug'i: %s", sub)
	}
}

func (c *Console) cmdMessages(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]

	if _, err := c.currentUser(ctx); err != nil {
		return err
	}

	switch sub {
	case "list":
		messages, err := c.data.Messages(ctx)
		if err != nil {
			return err
		}
		c.table("SANA\tMATN\tQABUL QILUVCHILAR", func(w *tabwriter.Writer) {
			for _, m := range messages {
				fmt.Fprintf(w, "%s\t%s\t%d\n", m.CreatedAt.Format("02.01.2006 15:04"), m.Content, m.RecipientsCount)
			}
		})
		return nil
	case "send":
		flags := pflag.NewFlagSet("messages send", pflag.ContinueOnError)
		content := flags.String("text", "", "xabar matni")
		if err := flags.Parse(rest); err != nil {
			return err
		}
		_, err := c.data.SendMessage(ctx, *content)
		return err
	default:
		return fmt.Errorf("noma'lum messages buyrug'i: %s", sub)
	}
}

func (c *Console) cmdReport(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("report", pflag.ContinueOnError)
	order := flags.String("order", "desc", "balans bo'yicha tartib: asc yoki desc")
	top := flags.Int("top", 0, "faqat eng yuqori N mijoz")
	export := flags.Bool("export", false, "Excel faylga yuklab olish")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if _, err := c.currentUser(ctx); err != nil {
		return err
	}

	if *export {
		raw, err := c.data.ExportCustomersExcel(ctx)
		if err != nil {
			return err
		}
		name := exportFileName(time.Now())
		if err := os.WriteFile(name, raw, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Hisobot saqlandi: %s\n", name)
		return nil
	}

	var customers []api.TopCustomer
	var err error
	if *top > 0 {
		customers, err = c.data.TopCustomers(ctx, *order, *top)
	} else {
		customers, err = c.data.CustomersReport(ctx, *order)
	}
	if err != nil {
		return err
	}
	c.renderCustomers(customers)
	return nil
}
