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

package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Category is a top-level corpus category.
type Category int

const (
	// CategoryFood covers food venues and shop-like sub-collections.
	CategoryFood Category = iota + 1
	// CategoryPlace covers points of interest.
	CategoryPlace
	// CategoryEvent covers dated events.
	CategoryEvent
)

// Categories lists every category in presentation order.
var Categories = []Category{CategoryFood, CategoryPlace, CategoryEvent}

func (c Category) String() string {
	switch c {
	case CategoryFood:
		return "food"
	case CategoryPlace:
		return "place"
	case CategoryEvent:
		return "event"
	}
	return "unknown"
}

// Certification is the Green Plate certification level of a food venue.
type Certification int

const (
	CertificationNone Certification = iota
	CertificationBronze
	CertificationSilver
	CertificationGold
)

// ParseCertification maps free text to a Certification.
// Unrecognized values map to CertificationNone.
func ParseCertification(s string) Certification {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gold":
		return CertificationGold
	case "silver":
		return CertificationSilver
	case "bronze":
		return CertificationBronze
	}
	return CertificationNone
}

// Priority returns the ranking weight: Gold=3, Silver=2, Bronze=1, otherwise 0.
func (c Certification) Priority() int {
	switch c {
	case CertificationGold:
		return 3
	case CertificationSilver:
		return 2
	case CertificationBronze:
		return 1
	}
	return 0
}

func (c Certification) String() string {
	switch c {
	case CertificationGold:
		return "Gold"
	case CertificationSilver:
		return "Silver"
	case CertificationBronze:
		return "Bronze"
	}
	return ""
}

// Accessibility describes how accessible a place is.
type Accessibility int

const (
	AccessibilityUnknown Accessibility = iota
	AccessibilityFull
	AccessibilityPartial
	AccessibilityWithAssistance
	AccessibilityLimited
)

// ParseAccessibility normalizes a free-text accessibility description.
func ParseAccessibility(s string) Accessibility {
	raw := strings.TrimSpace(s)
	lower := strings.ToLower(raw)
	switch {
	case lower == "" || lower == "null" || lower == "none":
		return AccessibilityUnknown
	case strings.Contains(lower, "full access") || lower == "yes":
		return AccessibilityFull
	case strings.Contains(lower, "partial"):
		return AccessibilityPartial
	case strings.Contains(lower, "accessible with assistance"):
		return AccessibilityWithAssistance
	case strings.Contains(lower, "limited"):
		return AccessibilityLimited
	case strings.Contains(lower, "full") && strings.Contains(lower, "access"):
		return AccessibilityFull
	}
	return AccessibilityUnknown
}

func (a Accessibility) String() string {
	switch a {
	case AccessibilityFull:
		return "Full Access"
	case AccessibilityPartial:
		return "Partial Access"
	case AccessibilityWithAssistance:
		return "Accessible with Assistance"
	case AccessibilityLimited:
		return "Limited"
	}
	return ""
}

// Washrooms describes washroom availability at a place.
type Washrooms int

const (
	WashroomsUnknown Washrooms = iota
	WashroomsAvailable
	WashroomsPartial
	WashroomsNotAvailable
)

// ParseWashrooms normalizes a free-text washroom description.
func ParseWashrooms(s string) Washrooms {
	lower := strings.ToLower(strings.TrimSpace(s))
	switch {
	case lower == "" || lower == "null" || lower == "none":
		return WashroomsUnknown
	case strings.Contains(lower, "washrooms available") || lower == "available" || lower == "yes":
		return WashroomsAvailable
	case strings.Contains(lower, "partial"):
		return WashroomsPartial
	case strings.Contains(lower, "not available") || strings.Contains(lower, "not accessible") || lower == "no":
		return WashroomsNotAvailable
	case strings.Contains(lower, "available"):
		return WashroomsAvailable
	case strings.Contains(lower, "not"):
		return WashroomsNotAvailable
	}
	return WashroomsUnknown
}

func (w Washrooms) String() string {
	switch w {
	case WashroomsAvailable:
		return "Available"
	case WashroomsPartial:
		return "Partially Available"
	case WashroomsNotAvailable:
		return "Not Available"
	}
	return ""
}

// Record is one corpus entry. The set of implementations is closed:
// FoodRecord, PlaceRecord and EventRecord.
type Record interface {
	// Kind returns the category the record belongs to.
	Kind() Category
	// Title returns the display name of the record.
	Title() string
	// Where returns the free-text location of the record.
	Where() string
	// TextValues returns every non-empty textual field, in field order.
	TextValues() []string

	sealed()
}

// FoodRecord is a food venue or, for shop-like sub-collections, a store.
type FoodRecord struct {
	Name          string
	Location      string
	URL           string
	Hours         string
	Notes         string
	LocalSourcing string
	VegVegan      string
	Certification Certification
	Category      string // Only set for shop-like sub-collections
}

// PlaceRecord is a point of interest.
type PlaceRecord struct {
	Name          string
	Location      string
	URL           string
	About         string
	Hours         string
	Fees          string
	Accessibility Accessibility
	Washrooms     Washrooms
}

// EventRecord is a dated event. Dates are kept as source text and
// parsed on demand.
type EventRecord struct {
	Name      string
	StartDate string
	EndDate   string
	Venue     string
	Location  string
	URL       string
}

var (
	_ Record = FoodRecord{}
	_ Record = PlaceRecord{}
	_ Record = EventRecord{}
)

func (FoodRecord) Kind() Category { return CategoryFood }
func (r FoodRecord) Title() string { return r.Name }
func (r FoodRecord) Where() string { return r.Location }
func (FoodRecord) sealed() {}
func (PlaceRecord) Kind() Category { return CategoryPlace }
func (r PlaceRecord) Title() string { return r.Name }
func (r PlaceRecord) Where() string { return r.Location }
func (PlaceRecord) sealed() {}
func (EventRecord) Kind() Category { return CategoryEvent }
func (r EventRecord) Title() string { return r.Name }
func (r EventRecord) Where() string { return r.Location }
func (EventRecord) sealed() {}

func (r FoodRecord) TextValues() []string {
	return nonEmpty(r.Name, r.Location, r.URL, r.Hours, r.Notes, r.LocalSourcing,
		r.VegVegan, r.Certification.String(), r.Category)
}

func (r PlaceRecord) TextValues() []string {
	return nonEmpty(r.Name, r.Location, r.URL, r.About, r.Hours, r.Fees,
		r.Accessibility.String(), r.Washrooms.String())
}

func (r EventRecord) TextValues() []string {
	return nonEmpty(r.Name, r.StartDate, r.EndDate, r.DateRange(), r.Venue, r.Location, r.URL)
}

// DateRange returns the display form of the event dates: a single date when
// start and end agree, "start - end" otherwise.
func (r EventRecord) DateRange() string {
	switch {
	case r.StartDate != "" && r.EndDate != "":
		if r.StartDate == r.EndDate {
			return r.StartDate
		}
		return r.StartDate + " - " + r.EndDate
	case r.StartDate != "":
		return r.StartDate
	}
	return ""
}

// RecordID returns the content ID of a record.
func RecordID(r Record) ID {
	return IDFromContent(r.Kind().String() + "\x00" + strings.Join(r.TextValues(), "\x00"))
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Collection is a named, ordered group of records of one category,
// corresponding to one source file.
type Collection struct {
	Category Category
	Key      string
	Records  []Record
}

// Checkpoint remembers which version of a source file was last loaded.
type Checkpoint struct {
	Source   string // "<category>/<key>"
	Checksum ID
	LoadedAt time.Time
}
