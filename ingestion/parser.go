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

package ingestion

import (
	"net/url"
	"strings"

	"github.com/poiesic/guidepost/core"
)

// ShopsKey is the food collection parsed with the shop format.
const ShopsKey = "shops"

// City is appended to generated map searches.
const City = "Kingston, ON"

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// MapsURL builds a Google Maps search URL for a venue. It returns an empty
// string when location is empty.
func MapsURL(name, location string) string {
	if location == "" {
		return ""
	}
	query := location + ", " + City
	if name != "" {
		query = name + ", " + query
	}
	return mapsSearchURL + strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}

// ParseCollection parses the text of one source file into a collection.
// Entries without a name are dropped.
func ParseCollection(category core.Category, key, content string) core.Collection {
	collection := core.Collection{Category: category, Key: key}
	switch category {
	case core.CategoryFood:
		if key == ShopsKey {
			for _, entry := range splitShopEntries(content) {
				collection.Records = appendNamed(collection.Records, ParseShopEntry(entry))
			}
			break
		}
		for _, entry := range splitEntries(content, "Business Name:") {
			collection.Records = appendNamed(collection.Records, ParseFoodEntry(entry))
		}
	case core.CategoryPlace:
		for _, entry := range splitEntries(content, "Place Name:") {
			collection.Records = appendNamed(collection.Records, ParsePlaceEntry(entry))
		}
	case core.CategoryEvent:
		for _, line := range strings.Split(content, "\n") {
			if event, ok := ParseEventLine(line); ok {
				collection.Records = appendNamed(collection.Records, event)
			}
		}
	}
	return collection
}

func appendNamed(records []core.Record, r core.Record) []core.Record {
	if r.Title() == "" {
		return records
	}
	return append(records, r)
}

// field returns the value after prefix when line starts with it.
func field(line, prefix string) (string, bool) {
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
}

func entryLines(entry string) []string {
	var lines []string
	for _, line := range strings.Split(entry, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ParseFoodEntry parses a "Business Name:" block.
func ParseFoodEntry(entry string) core.FoodRecord {
	var r core.FoodRecord
	for _, line := range entryLines(entry) {
		if v, ok := field(line, "Business Name:"); ok {
			r.Name = v
		} else if v, ok := field(line, "Location:"); ok {
			r.Location = v
		} else if v, ok := field(line, "Location URL:"); ok {
			r.URL = v
		} else if v, ok := field(line, "Hours:"); ok {
			r.Hours = v
		} else if v, ok := field(line, "Local Sourcing:"); ok {
			r.LocalSourcing = v
		} else if v, ok := field(line, "Veg/Vegan Options:"); ok {
			r.VegVegan = v
		} else if v, ok := field(line, "Green Plate Certification:"); ok {
			r.Certification = core.ParseCertification(v)
		} else if v, ok := field(line, "Notes:"); ok {
			r.Notes = v
		}
	}
	if r.URL == "" && r.Name != "" {
		r.URL = MapsURL(r.Name, r.Location)
	}
	return r
}

// ParseShopEntry parses a "Store Name:" or "Business Name:" block from the
// shops file.
func ParseShopEntry(entry string) core.FoodRecord {
	var r core.FoodRecord
	for _, line := range entryLines(entry) {
		if line == "---" {
			continue
		}
		if v, ok := field(line, "Store Name:"); ok {
			r.Name = v
		} else if v, ok := field(line, "Business Name:"); ok {
			r.Name = v
		} else if v, ok := field(line, "Location:"); ok {
			r.Location = v
		} else if v, ok := field(line, "Location URL:"); ok {
			r.URL = v
		} else if v, ok := field(line, "Hours of Operation:"); ok {
			r.Hours = v
		} else if v, ok := field(line, "Hours:"); ok {
			r.Hours = v
		} else if v, ok := field(line, "Info:"); ok {
			r.Notes = v
		} else if v, ok := field(line, "Notes:"); ok {
			r.Notes = v
		} else if v, ok := field(line, "Local Sourcing:"); ok {
			r.LocalSourcing = v
		} else if v, ok := field(line, "Category:"); ok {
			r.Category = v
		}
	}
	if r.URL == "" && r.Name != "" {
		r.URL = MapsURL(r.Name, r.Location)
	}
	return r
}

// ParsePlaceEntry parses a "Place Name:" block.
func ParsePlaceEntry(entry string) core.PlaceRecord {
	var r core.PlaceRecord
	for _, line := range entryLines(entry) {
		if v, ok := field(line, "Place Name:"); ok {
			r.Name = v
		} else if v, ok := field(line, "Location:"); ok {
			r.Location = v
		} else if v, ok := field(line, "Location URL:"); ok {
			r.URL = v
		} else if v, ok := field(line, "About:"); ok {
			r.About = v
		} else if v, ok := field(line, "Hours:"); ok {
			r.Hours = v
		} else if v, ok := field(line, "Fees:"); ok {
			r.Fees = v
		} else if v, ok := field(line, "Accessibility:"); ok {
			r.Accessibility = core.ParseAccessibility(v)
		} else if v, ok := field(line, "Washrooms:"); ok {
			r.Washrooms = core.ParseWashrooms(v)
		}
	}
	if r.URL == "" && r.Name != "" {
		r.URL = MapsURL(r.Name, r.Location)
	}
	return r
}

// ParseEventLine parses "Name | Start | End | Venue | Location | URL".
// Lines with fewer than four fields are rejected.
func ParseEventLine(line string) (core.EventRecord, bool) {
	if !strings.Contains(line, "|") {
		return core.EventRecord{}, false
	}
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) < 4 {
		return core.EventRecord{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	at := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
	return core.EventRecord{
		Name:      parts[0],
		StartDate: parts[1],
		EndDate:   parts[2],
		Venue:     parts[3],
		Location:  at(4),
		URL:       at(5),
	}, true
}

// splitEntries splits content into blocks, each starting at a line with the
// marker prefix. Header blocks are dropped.
func splitEntries(content, marker string) []string {
	var entries []string
	var current []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, marker) && len(current) > 0 {
			entries = append(entries, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		entries = append(entries, strings.Join(current, "\n"))
	}
	return keepEntries(entries, "===")
}

// splitShopEntries splits the shops file. Blocks start at a "Store Name:" or
// "Business Name:" line and end at a "---" or "END OF" line.
func splitShopEntries(content string) []string {
	var entries []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			entries = append(entries, strings.Join(current, "\n"))
		}
		current = nil
	}
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Store Name:") || strings.HasPrefix(line, "Business Name:"):
			flush()
			current = []string{line}
		case trimmed == "---" || strings.HasPrefix(trimmed, "END OF"):
			flush()
		default:
			current = append(current, line)
		}
	}
	flush()
	return keepEntries(entries, "====")
}

func keepEntries(entries []string, rule string) []string {
	kept := entries[:0]
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" || strings.HasPrefix(e, "KINGSTON") || strings.HasPrefix(e, rule) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
