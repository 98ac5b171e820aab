package logstore

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ravimishra07/project-sam/internal/model"
)

// Question-routing patterns. Dates come in numeric day-month-year form or
// as "4 May 2025" / "4 may"; a missing year falls back to the pinned year.
var (
	numericDateRe = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})`)
	namedDateRe   = regexp.MustCompile(`(?i)(\d{1,2})\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*(\d{2,4})?`)
	moodBelowRe   = regexp.MustCompile(`below\s*(\d+)`)
)

var monthNumbers = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// crisisKeywords short-circuit routing: a question mentioning one of these
// searches for that keyword alone, not the whole question text.
var crisisKeywords = []string{"suicidal", "burnout"}

// Route answers a free-text question with structured retrieval: a date in
// the question selects that day's entry, "mood ... below N" filters by
// mood, a crisis keyword searches for it directly, and anything else runs
// a keyword search over the full question. defaultYear fills in dates
// given without a year.
func (s *Store) Route(question string, defaultYear int) []Hit {
	lower := strings.ToLower(question)

	if id, ok := detectDate(question, defaultYear); ok {
		if entry, found := s.Get(id); found {
			return []Hit{{ID: id, Entry: entry}}
		}
		// A dated question about a missing day gets no keyword fallback;
		// the prompt layer states that no logs matched.
		return nil
	}

	if strings.Contains(lower, "mood") {
		if m := moodBelowRe.FindStringSubmatch(lower); m != nil {
			threshold, err := strconv.ParseFloat(m[1], 64)
			if err == nil {
				return s.FilterMoodBelow(threshold)
			}
		}
	}

	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return s.SearchKeyword(kw)
		}
	}

	return s.SearchKeyword(question)
}

// detectDate extracts a date mention from the question and returns it as
// an entry identifier.
func detectDate(question string, defaultYear int) (string, bool) {
	if m := numericDateRe.FindStringSubmatch(question); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		return dateID(day, month, year)
	}

	if m := namedDateRe.FindStringSubmatch(question); m != nil {
		day, _ := strconv.Atoi(m[1])
		month := int(monthNumbers[strings.ToLower(m[2])[:3]])
		year := defaultYear
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		return dateID(day, month, year)
	}

	return "", false
}

func dateID(day, month, year int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes impossible dates (31 Apr becomes 1 May); treat
	// those as no date rather than pointing at the wrong entry.
	if t.Day() != day || int(t.Month()) != month {
		return "", false
	}
	return model.DateID(t), true
}
