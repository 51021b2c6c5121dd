package core

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/mus-format/mus-go/varint"
)

func TestCollectionMUS_TaggedVariants(t *testing.T) {
	col := Collection{
		Category: CategoryFood,
		Key:      "mixed",
		Records: []Record{
			FoodRecord{Name: "Pan Chancho", Certification: CertificationGold, Category: "Bakery"},
			PlaceRecord{Name: "Fort Henry", Accessibility: AccessibilityLimited, Washrooms: WashroomsPartial},
			EventRecord{Name: "Winterfest", StartDate: "February 7, 2026", EndDate: "February 8, 2026"},
		},
	}

	buf := make([]byte, CollectionMUS.Size(col))
	n := CollectionMUS.Marshal(col, buf)
	if n != len(buf) {
		t.Fatalf("Marshal() wrote %d bytes, Size() reported %d", n, len(buf))
	}

	got, m, err := CollectionMUS.Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if m != n {
		t.Errorf("Unmarshal() read %d bytes, want %d", m, n)
	}
	if !reflect.DeepEqual(got, col) {
		t.Errorf("Unmarshal() = %#v, want %#v", got, col)
	}
}

func TestRecordMUS_UnknownTag(t *testing.T) {
	buf := make([]byte, varint.Int.Size(9))
	varint.Int.Marshal(9, buf)
	_, _, err := RecordMUS.Unmarshal(buf)
	if !errors.Is(err, ErrUnknownRecordKind) {
		t.Errorf("Unmarshal() error = %v, want %v", err, ErrUnknownRecordKind)
	}
}

func TestCheckpointMUS(t *testing.T) {
	cp := Checkpoint{
		Source:   "food/bakeries",
		Checksum: IDFromContent("file body"),
		LoadedAt: time.Date(2026, 2, 8, 10, 30, 0, 0, time.UTC),
	}
	buf := make([]byte, CheckpointMUS.Size(cp))
	CheckpointMUS.Marshal(cp, buf)

	got, _, err := CheckpointMUS.Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Source != cp.Source || got.Checksum != cp.Checksum || !got.LoadedAt.Equal(cp.LoadedAt) {
		t.Errorf("Unmarshal() = %+v, want %+v", got, cp)
	}
}
