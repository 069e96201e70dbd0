package ui

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/miragrio/HMCTS/internal/deadline"
)

// The form's fragments are always ISO; the locale only decides how stored
// dates are shown back in the modal and the recent-task list.
type userDateFormat struct {
	DisplayLayout string
}

func detectUserDateFormat() userDateFormat {
	tag := detectLocaleTag()
	if tag == language.Und {
		return userDateFormat{DisplayLayout: "02/01/2006"}
	}

	region, _ := tag.Region()
	switch region.String() {
	case "US":
		return userDateFormat{DisplayLayout: "01/02/2006"}
	case "CA", "CN", "JP", "KR", "HU", "LT":
		return userDateFormat{DisplayLayout: "2006-01-02"}
	default:
		return userDateFormat{DisplayLayout: "02/01/2006"}
	}
}

func detectLocaleTag() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			continue
		}
		raw = normalizeLocale(raw)
		if raw == "" {
			continue
		}
		if tag, err := language.Parse(raw); err == nil {
			return tag
		}
	}
	return language.Und
}

func normalizeLocale(raw string) string {
	locale := raw
	if idx := strings.Index(locale, "."); idx >= 0 {
		locale = locale[:idx]
	}
	if idx := strings.Index(locale, "@"); idx >= 0 {
		locale = locale[:idx]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	return strings.TrimSpace(locale)
}

// formatDeadlineDisplay renders a stored wall-clock deadline for reading.
// Values that do not parse are shown verbatim rather than hidden.
func (m Model) formatDeadlineDisplay(raw string) string {
	t, err := time.Parse(deadline.CombinedLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format(m.dateFormat.DisplayLayout + " 15:04")
}

func (m Model) formatCreatedAtDisplay(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.In(time.Local).Format(m.dateFormat.DisplayLayout + " 15:04")
}
