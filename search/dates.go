// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/guidepost/core"
)

// ReferenceYear is assumed for dates written without a year.
const ReferenceYear = 2026

const monthAlternation = `(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)`

var (
	dayMonthPattern = regexp.MustCompile(`(\d{1,2})\s+` + monthAlternation + `(?:\s+(\d{4}))?`)
	monthDayPattern = regexp.MustCompile(monthAlternation + `\s+(\d{1,2})(?:\s+(\d{4}))?`)
)

// monthNames lists full names first so "march" is found before "mar".
var monthNames = []struct {
	name  string
	month time.Month
}{
	{"january", time.January}, {"february", time.February}, {"march", time.March},
	{"april", time.April}, {"may", time.May}, {"june", time.June},
	{"july", time.July}, {"august", time.August}, {"september", time.September},
	{"october", time.October}, {"november", time.November}, {"december", time.December},
	{"jan", time.January}, {"feb", time.February}, {"mar", time.March},
	{"apr", time.April}, {"jun", time.June}, {"jul", time.July},
	{"aug", time.August}, {"sep", time.September}, {"sept", time.September},
	{"oct", time.October}, {"nov", time.November}, {"dec", time.December},
}

func lookupMonth(name string) (time.Month, bool) {
	for _, m := range monthNames {
		if m.name == name {
			return m.month, true
		}
	}
	return 0, false
}

// IsMonthName reports whether w is a month name or abbreviation.
func IsMonthName(w string) bool {
	_, ok := lookupMonth(w)
	return ok
}

// ParseDate extracts the first calendar date written as "8 feb",
// "february 8" or either form followed by a four digit year. The year
// defaults to ReferenceYear. Day-first is tried before month-first, and a
// match naming an impossible date falls through to the next form.
func ParseDate(text string) (time.Time, bool) {
	t := strings.ToLower(text)

	if m := dayMonthPattern.FindStringSubmatch(t); m != nil {
		if d, ok := makeDate(m[1], m[2], m[3]); ok {
			return d, true
		}
	}
	if m := monthDayPattern.FindStringSubmatch(t); m != nil {
		if d, ok := makeDate(m[2], m[1], m[3]); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

func makeDate(dayText, monthText, yearText string) (time.Time, bool) {
	month, ok := lookupMonth(monthText)
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(dayText)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	year := ReferenceYear
	if yearText != "" {
		if year, err = strconv.Atoi(yearText); err != nil || year < 1 {
			return time.Time{}, false
		}
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

// FindMonth returns the month of the first month name or abbreviation
// appearing as a whole word in words, trying full names before
// abbreviations.
func FindMonth(words []string) (time.Month, bool) {
	for _, m := range monthNames {
		for _, w := range words {
			if w == m.name {
				return m.month, true
			}
		}
	}
	return 0, false
}

func eventSpan(e core.EventRecord) (start, end time.Time, ok bool) {
	if e.StartDate == "" || e.EndDate == "" {
		return start, end, false
	}
	start, okStart := ParseDate(e.StartDate)
	end, okEnd := ParseDate(e.EndDate)
	return start, end, okStart && okEnd
}

func within(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// EventOnDate reports whether date falls inside the event's inclusive date
// range. Events with a missing or unparseable date never match.
func EventOnDate(e core.EventRecord, date time.Time) bool {
	start, end, ok := eventSpan(e)
	return ok && within(date, start, end)
}

// EventInMonth reports whether the event touches month of year: its start
// or end lies in that month, or the range covers the 1st or the 28th.
func EventInMonth(e core.EventRecord, month time.Month, year int) bool {
	start, end, ok := eventSpan(e)
	if !ok {
		return false
	}
	if (start.Month() == month && start.Year() == year) || (end.Month() == month && end.Year() == year) {
		return true
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month, 28, 0, 0, 0, 0, time.UTC)
	return within(first, start, end) || within(last, start, end)
}
