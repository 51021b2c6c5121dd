package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "plain text", content: "Pan Chancho"},
		{name: "empty string", content: ""},
		{name: "long content", content: "Bakery and cafe on Princess Street with local sourcing and vegan options"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)
			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	if IDFromContent("content1") == IDFromContent("content2") {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestCertificationPriority(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"Gold", 3},
		{" gold ", 3},
		{"SILVER", 2},
		{"Bronze", 1},
		{"null", 0},
		{"", 0},
		{"Platinum", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseCertification(tt.input).Priority(); got != tt.want {
				t.Errorf("ParseCertification(%q).Priority() = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAccessibility(t *testing.T) {
	tests := []struct {
		input string
		want  Accessibility
	}{
		{"Full Access", AccessibilityFull},
		{"yes", AccessibilityFull},
		{"Partial access (main floor only)", AccessibilityPartial},
		{"Accessible with assistance", AccessibilityWithAssistance},
		{"Limited", AccessibilityLimited},
		{"null", AccessibilityUnknown},
		{"", AccessibilityUnknown},
		{"stairs everywhere", AccessibilityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseAccessibility(tt.input); got != tt.want {
				t.Errorf("ParseAccessibility(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseWashrooms(t *testing.T) {
	tests := []struct {
		input string
		want  Washrooms
	}{
		{"Washrooms available", WashroomsAvailable},
		{"Yes", WashroomsAvailable},
		{"Partially available", WashroomsPartial},
		{"Not available", WashroomsNotAvailable},
		{"no", WashroomsNotAvailable},
		{"None", WashroomsUnknown},
		{"", WashroomsUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseWashrooms(tt.input); got != tt.want {
				t.Errorf("ParseWashrooms(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTextValues_OmitsEmptyFields(t *testing.T) {
	food := FoodRecord{Name: "Pan Chancho", Location: "44 Princess St", Certification: CertificationNone}
	got := food.TextValues()
	if len(got) != 2 || got[0] != "Pan Chancho" || got[1] != "44 Princess St" {
		t.Errorf("FoodRecord.TextValues() = %v", got)
	}

	place := PlaceRecord{Name: "Fort Henry", Accessibility: AccessibilityPartial}
	got = place.TextValues()
	if len(got) != 2 || got[1] != "Partial Access" {
		t.Errorf("PlaceRecord.TextValues() = %v", got)
	}
}

func TestEventRecord_DateRange(t *testing.T) {
	tests := []struct {
		name  string
		event EventRecord
		want  string
	}{
		{"range", EventRecord{StartDate: "January 29, 2026", EndDate: "February 7, 2026"}, "January 29, 2026 - February 7, 2026"},
		{"single day", EventRecord{StartDate: "March 3, 2026", EndDate: "March 3, 2026"}, "March 3, 2026"},
		{"start only", EventRecord{StartDate: "March 3, 2026"}, "March 3, 2026"},
		{"no dates", EventRecord{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.DateRange(); got != tt.want {
				t.Errorf("DateRange() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordID_DependsOnKind(t *testing.T) {
	food := FoodRecord{Name: "Same"}
	place := PlaceRecord{Name: "Same"}
	if RecordID(food) == RecordID(place) {
		t.Errorf("RecordID() collided across record kinds")
	}
	if RecordID(food) != RecordID(FoodRecord{Name: "Same"}) {
		t.Errorf("RecordID() not deterministic")
	}
}
