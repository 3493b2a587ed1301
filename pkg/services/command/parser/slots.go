package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// parseAmount coerces an amount slot into a positive decimal. Currency
// symbols and thousands separators from spoken phrasing are tolerated.
func parseAmount(raw string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimLeft(clean, "$€£¥")
	clean = strings.ReplaceAll(clean, ",", "")

	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("not a number: %q", raw)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be positive: %q", raw)
	}
	return amount, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// resolveDate turns a date slot into a calendar day relative to now.
// Supported: "today", "yesterday", "tomorrow", weekday names (the most
// recent such day at or before today) and ISO dates.
func resolveDate(raw string, now time.Time) (time.Time, error) {
	clean := strings.ToLower(strings.TrimSpace(raw))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch clean {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if wd, ok := weekdays[clean]; ok {
		back := (int(today.Weekday()) - int(wd) + 7) % 7
		return today.AddDate(0, 0, -back), nil
	}

	if parsed, err := time.ParseInLocation("2006-01-02", clean, now.Location()); err == nil {
		return parsed, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date: %q", raw)
}

// matchLen scores a fuzzy category hit: non-zero only when one of the two
// strings contains the other, case-insensitively, in which case the score is
// the length of the contained (shorter) string.
func matchLen(input, term string) int {
	a := strings.ToLower(strings.TrimSpace(input))
	b := strings.ToLower(strings.TrimSpace(term))
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		if len([]rune(a)) < len([]rune(b)) {
			return len([]rune(a))
		}
		return len([]rune(b))
	}
	return 0
}

// matchCategory returns every category sharing the best fuzzy score for the
// input. Zero results means no match; two or more means the input is
// ambiguous and the caller must clarify rather than guess.
func matchCategory(input string, categories []domain.Category) []domain.Category {
	best := 0
	var candidates []domain.Category

	for _, c := range categories {
		score := matchLen(input, c.Name)
		for _, alias := range c.Aliases {
			if s := matchLen(input, alias); s > score {
				score = s
			}
		}
		if score == 0 {
			continue
		}
		if score > best {
			best = score
			candidates = []domain.Category{c}
		} else if score == best {
			candidates = append(candidates, c)
		}
	}
	return candidates
}
