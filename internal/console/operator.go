package console

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
	"github.com/Shahriyor2077/ayoqsh-console/internal/util"
)

// cmdOperator renders the operator panel: the operator's per-period output,
// their station's customers, and their recent checks.
func (c *Console) cmdOperator(ctx context.Context) error {
	user, err := c.currentUser(ctx)
	if err != nil {
		return err
	}

	stats, err := c.data.OperatorStats(ctx, user.ID)
	if err != nil {
		return err
	}
	c.table("DAVR\tCHEKLAR\tLITR", func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "Bugun\t%d\t%s\n", stats.Today.Checks, util.FormatLiters(stats.Today.Liters))
		fmt.Fprintf(w, "Oy\t%d\t%s\n", stats.Month.Checks, util.FormatLiters(stats.Month.Liters))
		fmt.Fprintf(w, "Jami\t%d\t%s\n", stats.Total.Checks, util.FormatLiters(stats.Total.Liters))
	})

	if user.StationID == nil {
		return errors.New("operator shaxobchaga biriktirilmagan")
	}

	customers, err := c.data.StationCustomers(ctx, *user.StationID)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out)
	c.table("MIJOZ\tTELEFON\tBALANS", func(w *tabwriter.Writer) {
		for _, cu := range customers {
			phone := cu.Phone
			if phone == "" {
				phone = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s L\n", cu.DisplayName(), phone, util.FormatLitersString(cu.BalanceLiters))
		}
	})

	checks, err := c.data.Checks(ctx, api.CheckFilter{OperatorID: user.ID})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out)
	c.renderChecks(checks)
	return nil
}
