// Package extraction proposes license terms from the free text of an inquiry.
// Every field it fills is a suggestion for the agent to confirm or edit.
package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"ops-dashboard/internal/store"
)

// Defaults are the values that do not come from the text
type Defaults struct {
	Today          time.Time
	AgentName      string
	FollowUpMethod *string
}

// Draft is a pre-filled, editable license form
type Draft struct {
	LicenseType string   `json:"license_type,omitempty"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	SalesPerson string   `json:"sales_person"`
	Source      string   `json:"source,omitempty"`
	Price       *float64 `json:"price,omitempty"`

	start time.Time
	end   time.Time
}

// Start and End expose the proposed dates as times
func (d Draft) Start() time.Time { return d.start }
func (d Draft) End() time.Time   { return d.end }

const dateLayout = "2006-01-02"

type rule func(text string, draft *Draft)

// rules run in order; each one only fills its own fields
var rules = []rule{
	licenseTypeRule,
	priceRule,
	durationRule,
}

// Extract builds a draft from text. It never fails: unmatched rules leave
// their field empty, except the end date which falls back to one year.
func Extract(text string, defaults Defaults) Draft {
	today := truncateToDay(defaults.Today)
	draft := Draft{
		SalesPerson: defaults.AgentName,
		Source:      sourceFor(defaults.FollowUpMethod),
		start:       today,
		end:         addMonths(today, 12),
	}

	lowered := strings.ToLower(text)
	for _, apply := range rules {
		apply(lowered, &draft)
	}

	draft.StartDate = draft.start.Format(dateLayout)
	draft.EndDate = draft.end.Format(dateLayout)
	return draft
}

var licenseTypeKeywords = []struct {
	licenseType string
	keywords    []string
}{
	{store.LicenseTypeEnterprise, []string{"enterprise", "unlimited"}},
	{store.LicenseTypeProfessional, []string{"professional", "pro"}},
	{store.LicenseTypeBasic, []string{"basic", "starter"}},
}

func licenseTypeRule(text string, draft *Draft) {
	for _, candidate := range licenseTypeKeywords {
		for _, keyword := range candidate.keywords {
			if strings.Contains(text, keyword) {
				draft.LicenseType = candidate.licenseType
				return
			}
		}
	}
}

var pricePattern = regexp.MustCompile(`\$\s*(\d[\d,]*(?:\.\d+)?)`)

func priceRule(text string, draft *Draft) {
	match := pricePattern.FindStringSubmatch(text)
	if match == nil {
		return
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	if err != nil {
		return
	}
	draft.Price = &amount
}

var (
	yearsPattern  = regexp.MustCompile(`(\d+)\s*(?:years?|años?)`)
	monthsPattern = regexp.MustCompile(`(\d+)\s*(?:months?|mes(?:es)?)`)
)

func durationRule(text string, draft *Draft) {
	if n, ok := firstInt(yearsPattern, text); ok {
		draft.end = addMonths(draft.start, 12*n)
		return
	}
	if n, ok := firstInt(monthsPattern, text); ok {
		draft.end = addMonths(draft.start, n)
	}
}

func firstInt(pattern *regexp.Regexp, text string) (int, bool) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func sourceFor(followUpMethod *string) string {
	if followUpMethod == nil {
		return ""
	}
	switch *followUpMethod {
	case store.FollowUpMethodEmail:
		return store.LicenseSourceEmail
	case store.FollowUpMethodOtherChannel:
		return store.LicenseSourceOther
	}
	return ""
}

// addMonths moves t by n calendar months, clamping to the last day of the
// target month instead of overflowing into the next one.
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
