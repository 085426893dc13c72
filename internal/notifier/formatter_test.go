package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/MrRicesun777/PriceOfEth/internal/model"
)

var thresholds = model.AlertThresholds{Low: 2500, High: 4000}

func TestShortUpdateAlertBanner(t *testing.T) {
	cases := []struct {
		name string
		eur  float64
		want string // "" means no banner
	}{
		{"below low", 2400, "below €2500"},
		{"above high", 4100, "above €4000"},
		{"inside bounds", 2600, ""},
		{"exactly low", 2500, ""},
		{"exactly high", 4000, ""},
		{"just under low", 2499.99, "below €2500"},
		{"just over high", 4000.01, "above €4000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := FormatShortUpdate(2600, tc.eur, thresholds)
			hasBelow := strings.Contains(msg, "below €2500")
			hasAbove := strings.Contains(msg, "above €4000")
			switch tc.want {
			case "":
				if hasBelow || hasAbove {
					t.Errorf("unexpected alert in message:\n%s", msg)
				}
			default:
				if !strings.Contains(msg, tc.want) {
					t.Errorf("expected %q in message:\n%s", tc.want, msg)
				}
				if hasBelow && hasAbove {
					t.Error("below and above alerts are mutually exclusive")
				}
			}
		})
	}
}

func TestShortUpdateContainsBothCurrencies(t *testing.T) {
	msg := FormatShortUpdate(2600.5, 2400.25, thresholds)
	if !strings.Contains(msg, "$2600.50") {
		t.Errorf("missing USD value:\n%s", msg)
	}
	if !strings.Contains(msg, "€2400.25") {
		t.Errorf("missing EUR value:\n%s", msg)
	}
}

func TestDailyUpdateWithYesterday(t *testing.T) {
	yesterday := 2550.0
	now := time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC)
	msg := FormatDailyUpdate(2700, 2600, &yesterday, thresholds, now)
	if !strings.Contains(msg, "€2550.00") {
		t.Errorf("missing yesterday value:\n%s", msg)
	}
	if !strings.Contains(msg, "14-03-2025 16:00") {
		t.Errorf("missing timestamp:\n%s", msg)
	}
}

func TestDailyUpdateWithoutYesterday(t *testing.T) {
	now := time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC)
	msg := FormatDailyUpdate(2700, 2600, nil, thresholds, now)
	if !strings.Contains(msg, "unknown") {
		t.Errorf("expected placeholder for missing yesterday value:\n%s", msg)
	}
}
