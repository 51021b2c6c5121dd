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
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the persisted domain types. Each follows the
// Marshal/Unmarshal/Size contract of mus-go serializers.
var (
	IDMUS         = idMUS{}
	RecordMUS     = recordMUS{}
	CollectionMUS = collectionMUS{}
	CheckpointMUS = checkpointMUS{}
)

const (
	foodTag  = 1
	placeTag = 2
	eventTag = 3
)

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	u, n, err := varint.Uint64.Unmarshal(bs)
	return ID(u), n, err
}

func (idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

// marshalStrings writes a fixed sequence of string fields.
func marshalStrings(bs []byte, values ...string) (n int) {
	for _, v := range values {
		n += ord.String.Marshal(v, bs[n:])
	}
	return n
}

func unmarshalStrings(bs []byte, targets ...*string) (n int, err error) {
	for _, t := range targets {
		var m int
		*t, m, err = ord.String.Unmarshal(bs[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func sizeStrings(values ...string) (size int) {
	for _, v := range values {
		size += ord.String.Size(v)
	}
	return size
}

func unmarshalEnum(bs []byte, target *int) (n int, err error) {
	*target, n, err = varint.Int.Unmarshal(bs)
	return n, err
}

type recordMUS struct{}

func (recordMUS) Marshal(v Record, bs []byte) (n int) {
	switch r := v.(type) {
	case FoodRecord:
		n = varint.Int.Marshal(foodTag, bs)
		n += marshalStrings(bs[n:], r.Name, r.Location, r.URL, r.Hours, r.Notes,
			r.LocalSourcing, r.VegVegan, r.Category)
		n += varint.Int.Marshal(int(r.Certification), bs[n:])
	case PlaceRecord:
		n = varint.Int.Marshal(placeTag, bs)
		n += marshalStrings(bs[n:], r.Name, r.Location, r.URL, r.About, r.Hours, r.Fees)
		n += varint.Int.Marshal(int(r.Accessibility), bs[n:])
		n += varint.Int.Marshal(int(r.Washrooms), bs[n:])
	case EventRecord:
		n = varint.Int.Marshal(eventTag, bs)
		n += marshalStrings(bs[n:], r.Name, r.StartDate, r.EndDate, r.Venue, r.Location, r.URL)
	}
	return n
}

func (recordMUS) Unmarshal(bs []byte) (v Record, n int, err error) {
	tag, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	var m int
	switch tag {
	case foodTag:
		var r FoodRecord
		m, err = unmarshalStrings(bs[n:], &r.Name, &r.Location, &r.URL, &r.Hours, &r.Notes,
			&r.LocalSourcing, &r.VegVegan, &r.Category)
		n += m
		if err != nil {
			return nil, n, err
		}
		var cert int
		m, err = unmarshalEnum(bs[n:], &cert)
		n += m
		r.Certification = Certification(cert)
		v = r
	case placeTag:
		var r PlaceRecord
		m, err = unmarshalStrings(bs[n:], &r.Name, &r.Location, &r.URL, &r.About, &r.Hours, &r.Fees)
		n += m
		if err != nil {
			return nil, n, err
		}
		var access, washrooms int
		if m, err = unmarshalEnum(bs[n:], &access); err != nil {
			return nil, n + m, err
		}
		n += m
		m, err = unmarshalEnum(bs[n:], &washrooms)
		n += m
		r.Accessibility = Accessibility(access)
		r.Washrooms = Washrooms(washrooms)
		v = r
	case eventTag:
		var r EventRecord
		m, err = unmarshalStrings(bs[n:], &r.Name, &r.StartDate, &r.EndDate, &r.Venue, &r.Location, &r.URL)
		n += m
		v = r
	default:
		return nil, n, fmt.Errorf("%w: %d", ErrUnknownRecordKind, tag)
	}
	if err != nil {
		return nil, n, err
	}
	return v, n, nil
}

func (recordMUS) Size(v Record) (size int) {
	switch r := v.(type) {
	case FoodRecord:
		return varint.Int.Size(foodTag) +
			sizeStrings(r.Name, r.Location, r.URL, r.Hours, r.Notes, r.LocalSourcing, r.VegVegan, r.Category) +
			varint.Int.Size(int(r.Certification))
	case PlaceRecord:
		return varint.Int.Size(placeTag) +
			sizeStrings(r.Name, r.Location, r.URL, r.About, r.Hours, r.Fees) +
			varint.Int.Size(int(r.Accessibility)) +
			varint.Int.Size(int(r.Washrooms))
	case EventRecord:
		return varint.Int.Size(eventTag) +
			sizeStrings(r.Name, r.StartDate, r.EndDate, r.Venue, r.Location, r.URL)
	}
	return 0
}

type collectionMUS struct{}

func (collectionMUS) Marshal(v Collection, bs []byte) (n int) {
	n = varint.Int.Marshal(int(v.Category), bs)
	n += ord.String.Marshal(v.Key, bs[n:])
	n += varint.Int.Marshal(len(v.Records), bs[n:])
	for _, r := range v.Records {
		n += RecordMUS.Marshal(r, bs[n:])
	}
	return n
}

func (collectionMUS) Unmarshal(bs []byte) (v Collection, n int, err error) {
	var cat, count, m int
	if cat, n, err = varint.Int.Unmarshal(bs); err != nil {
		return v, n, err
	}
	v.Category = Category(cat)
	if v.Key, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + m, err
	}
	n += m
	if count, m, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return v, n + m, err
	}
	n += m
	if count < 0 {
		return v, n, fmt.Errorf("negative record count %d", count)
	}
	v.Records = make([]Record, 0, min(count, len(bs)))
	for range count {
		var r Record
		if r, m, err = RecordMUS.Unmarshal(bs[n:]); err != nil {
			return v, n + m, err
		}
		n += m
		v.Records = append(v.Records, r)
	}
	return v, n, nil
}

func (collectionMUS) Size(v Collection) (size int) {
	size = varint.Int.Size(int(v.Category)) + ord.String.Size(v.Key) + varint.Int.Size(len(v.Records))
	for _, r := range v.Records {
		size += RecordMUS.Size(r)
	}
	return size
}

type checkpointMUS struct{}

func (checkpointMUS) Marshal(v Checkpoint, bs []byte) (n int) {
	n = ord.String.Marshal(v.Source, bs)
	n += IDMUS.Marshal(v.Checksum, bs[n:])
	n += varint.Int64.Marshal(v.LoadedAt.UnixNano(), bs[n:])
	return n
}

func (checkpointMUS) Unmarshal(bs []byte) (v Checkpoint, n int, err error) {
	var (
		m     int
		nanos int64
	)
	if v.Source, n, err = ord.String.Unmarshal(bs); err != nil {
		return v, n, err
	}
	if v.Checksum, m, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + m, err
	}
	n += m
	if nanos, m, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return v, n + m, err
	}
	n += m
	v.LoadedAt = time.Unix(0, nanos).UTC()
	return v, n, nil
}

func (checkpointMUS) Size(v Checkpoint) (size int) {
	return ord.String.Size(v.Source) + IDMUS.Size(v.Checksum) + varint.Int64.Size(v.LoadedAt.UnixNano())
}
