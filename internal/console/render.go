package console

import (
	"encoding/base64"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
	"github.com/Shahriyor2077/ayoqsh-console/internal/util"
)

func (c *Console) table(header string, rows func(w *tabwriter.Writer)) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	w.Flush()
}

func (c *Console) renderChecks(checks []api.Check) {
	c.table("KOD\tLITR\tSHAXOBCHA\tOPERATOR\tMIJOZ\tHOLAT\tYARATILGAN\tAMAL QILADI", func(w *tabwriter.Writer) {
		for _, ch := range checks {
			station := "-"
			if ch.Station != nil {
				station = ch.Station.Name
			}
			operator := "-"
			if ch.Operator != nil {
				if ch.Operator.FullName != "" {
					operator = ch.Operator.FullName
				} else {
					operator = ch.Operator.Username
				}
			}
			customer := ch.CustomerName
			if customer == "" {
				customer = "-"
			}
			fmt.Fprintf(w, "%s\t%s L\t%s\t%s\t%s\t%s\t%s\t%s\n",
				ch.Code, util.FormatLiters(ch.AmountLiters), station, operator, customer,
				statusLabel(ch.Status),
				ch.CreatedAt.Format("02.01.2006 15:04"),
				ch.ExpiresAt.Format("02.01.2006"))
		}
	})
}

func statusLabel(status string) string {
	switch status {
	case api.CheckPending:
		return "Kutilmoqda"
	case api.CheckUsed:
		return "Ishlatilgan"
	case api.CheckCancelled:
		return "Bekor qilingan"
	case api.CheckExpired:
		return "Muddati o'tgan"
	default:
		return status
	}
}

func (c *Console) renderStats(stats *api.StatsResponse) {
	usedPercent, pendingPercent := 0, 0
	if stats.TotalChecks > 0 {
		usedPercent = int(math.Round(float64(stats.UsedChecks) / float64(stats.TotalChecks) * 100))
		pendingPercent = int(math.Round(float64(stats.PendingChecks) / float64(stats.TotalChecks) * 100))
	}
	avg := "0 L"
	if stats.UsedChecks > 0 && stats.UsedLiters > 0 {
		avg = fmt.Sprintf("%.1f L", stats.UsedLiters/float64(stats.UsedChecks))
	}

	c.table("KO'RSATKICH\tQIYMAT", func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "Mijozlar\t%d\n", stats.TotalCustomers)
		fmt.Fprintf(w, "Operatorlar\t%d\n", stats.TotalOperators)
		fmt.Fprintf(w, "Shaxobchalar\t%d\n", stats.TotalStations)
		fmt.Fprintf(w, "Jami litr\t%s L\n", util.FormatLiters(stats.TotalLiters))
		fmt.Fprintf(w, "Ishlatilgan\t%s L (%d ta chek, %d%%)\n", util.FormatLiters(stats.UsedLiters), stats.UsedChecks, usedPercent)
		fmt.Fprintf(w, "Kutilmoqda\t%s L (%d ta chek, %d%%)\n", util.FormatLiters(stats.PendingLiters), stats.PendingChecks, pendingPercent)
		fmt.Fprintf(w, "Jami cheklar\t%d\n", stats.TotalChecks)
		fmt.Fprintf(w, "O'rtacha chek\t%s\n", avg)
	})
}

func (c *Console) renderCustomers(customers []api.TopCustomer) {
	c.table("ID\tMIJOZ\tTELEFON\tBALANS\tISHLATILGAN", func(w *tabwriter.Writer) {
		for _, cu := range customers {
			name := cu.FullName
			if name == "" {
				name = "-"
			}
			phone := cu.Phone
			if phone == "" {
				phone = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s L\t%d\n",
				cu.ID, name, phone, util.FormatLitersString(cu.BalanceLiters), cu.UsedChecks)
		}
	})
}

// saveQR decodes a data-URL QR payload to a local image file next to the
// working directory and returns the file name.
func saveQR(check *api.Check) (string, error) {
	if check.QRCode == "" {
		return "", nil
	}
	parts := strings.SplitN(check.QRCode, ",", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("qr payload formati noma'lum")
	}
	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("qr payload dekodlanmadi: %w", err)
	}

	name := fmt.Sprintf("chek-%s.png", check.Code)
	if err := os.WriteFile(name, raw, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// exportFileName mirrors the web console's download name.
func exportFileName(now time.Time) string {
	return fmt.Sprintf("mijozlar-hisoboti-%s.xlsx", now.Format("2006-01-02"))
}
