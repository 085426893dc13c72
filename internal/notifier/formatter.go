package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrRicesun777/PriceOfEth/internal/model"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━\n"

// FormatShortUpdate formats the interval price notification.
func FormatShortUpdate(usd, eur float64, th model.AlertThresholds) string {
	var b strings.Builder
	b.WriteString("🌍 *Ethereum Price Update*\n")
	b.WriteString(divider)
	writePrices(&b, usd, eur)
	b.WriteString(divider)
	b.WriteString(formatAlert(eur, th))
	return b.String()
}

// FormatDailyUpdate formats the once-a-day notification that accompanies the
// chart. yesterdayEUR is nil when no reference value could be fetched.
func FormatDailyUpdate(usd, eur float64, yesterdayEUR *float64, th model.AlertThresholds, now time.Time) string {
	yesterday := "unknown"
	if yesterdayEUR != nil {
		yesterday = fmt.Sprintf("€%.2f", *yesterdayEUR)
	}

	var b strings.Builder
	b.WriteString("🌍 *Daily Ethereum Price Update*\n")
	b.WriteString(divider)
	writePrices(&b, usd, eur)
	b.WriteString(divider)
	b.WriteString(fmt.Sprintf("📅 *Date & Time:* `%s`\n", now.Format("02-01-2006 15:04")))
	b.WriteString(fmt.Sprintf("📉 *Yesterday:* `%s`\n", yesterday))
	b.WriteString(divider)
	b.WriteString(formatAlert(eur, th))
	return b.String()
}

func writePrices(b *strings.Builder, usd, eur float64) {
	b.WriteString(fmt.Sprintf("💵 *USD:* `$%.2f` 🇺🇸\n", usd))
	b.WriteString(fmt.Sprintf("💶 *EUR:* `€%.2f` 🇪🇺\n", eur))
}

// formatAlert returns the warning banner, or "" when eur sits inside the
// thresholds. Bounds are exclusive; the low check wins if both could match.
func formatAlert(eur float64, th model.AlertThresholds) string {
	switch {
	case eur < th.Low:
		return fmt.Sprintf("🚨 *ETH below €%.0f!*\n💶 *Current price:* €%.2f\n", th.Low, eur)
	case eur > th.High:
		return fmt.Sprintf("🚀 *ETH above €%.0f!*\n💶 *Current price:* €%.2f\n", th.High, eur)
	default:
		return ""
	}
}
