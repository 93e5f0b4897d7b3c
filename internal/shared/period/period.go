package period

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Period is the single structured (year, month) key used to scope payroll,
// allowance, expense and dashboard records to a calendar month.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year > 0
}

func (p Period) String() string {
	return fmt.Sprintf("%02d-%04d", p.Month, p.Year)
}

// FromQuery builds a Period from raw query-string values. Malformed values
// parse to zero and simply match no records downstream; this layer does not
// reject them.
func FromQuery(monthStr, yearStr string) Period {
	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)
	return Period{Month: month, Year: year}
}

func Current() Period {
	now := time.Now()
	return Period{Month: int(now.Month()), Year: now.Year()}
}

var legacyMonthRe = regexp.MustCompile(`^(\d{2})-(\d{4})$`)

// ParseLegacyMonth handles the dashboard's combined "MM-YYYY" month string,
// deriving the year from the trailing 4 digits. A non-matching string
// reports ok=false and the caller keeps whatever year was supplied
// separately.
func ParseLegacyMonth(s string) (month, year int, ok bool) {
	m := legacyMonthRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	month, _ = strconv.Atoi(m[1])
	year, _ = strconv.Atoi(m[2])
	return month, year, true
}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthName returns the short English month label, or "" when m is out of
// range.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNames[m-1]
}
