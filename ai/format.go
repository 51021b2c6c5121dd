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

package ai

import (
	"fmt"
	"strings"

	"github.com/poiesic/guidepost/core"
	"github.com/poiesic/guidepost/search"
)

// NoContextText is the context text used when nothing was assembled.
const NoContextText = "No relevant data found."

// FormatContext renders an assembled result as prompt text. Food
// collections get a heading each, places and events share fixed headings.
// Entries are numbered per collection and list only the fields they carry.
func FormatContext(result *search.Result) string {
	if result == nil {
		return NoContextText
	}

	var parts []string
	if food := formatSection(&result.Food, func(key string) string {
		return strings.ToUpper(strings.ReplaceAll(key, "_", " "))
	}); food != "" {
		parts = append(parts, food)
	}
	if places := formatSection(&result.Place, func(string) string { return "PLACES TO VISIT" }); places != "" {
		parts = append(parts, places)
	}
	if events := formatSection(&result.Event, func(string) string { return "EVENTS" }); events != "" {
		parts = append(parts, events)
	}

	if len(parts) == 0 {
		return NoContextText
	}
	return strings.Join(parts, "\n\n")
}

func formatSection(section *search.Section, heading func(key string) string) string {
	var lines []string
	for _, col := range section.Collections {
		if len(col.Records) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("\n=== %s ===", heading(col.Key)))
		for i, record := range col.Records {
			lines = append(lines, fmt.Sprintf("\n%d. %s", i+1, record.Title()))
			lines = appendFields(lines, record)
		}
	}
	return strings.Join(lines, "\n")
}

func appendFields(lines []string, record core.Record) []string {
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, "   "+label+": "+value)
		}
	}
	switch r := record.(type) {
	case core.FoodRecord:
		add("Location", r.Location)
		add("Find Location", r.URL)
		add("Hours", r.Hours)
		add("Notes", r.Notes)
		add("Category", r.Category)
		add("Local Sourcing", r.LocalSourcing)
		add("Veg/Vegan", r.VegVegan)
		add("Green Plate Certification", r.Certification.String())
	case core.PlaceRecord:
		add("Location", r.Location)
		add("Find Location", r.URL)
		add("About", r.About)
		add("Hours", r.Hours)
		add("Fees", r.Fees)
		add("Accessibility", r.Accessibility.String())
		add("Washrooms", r.Washrooms.String())
	case core.EventRecord:
		add("Date", r.DateRange())
		add("Venue", r.Venue)
		add("Location", r.Location)
		add("Find Location", r.URL)
	}
	return lines
}
