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

import "fmt"

// ValidateCategory checks that c is one of the known categories.
func ValidateCategory(c Category) error {
	switch c {
	case CategoryFood, CategoryPlace, CategoryEvent:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
}

// ValidateRecord validates a Record according to domain rules.
//
// Validation rules:
//   - Record must not be nil
//   - Name must not be empty
//
// Event dates are not validated here; unparseable dates simply never
// match a date filter.
func ValidateRecord(record Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}
	if record.Title() == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyName)
	}
	return nil
}

// ValidateCollection validates a Collection and every record in it.
func ValidateCollection(c *Collection) error {
	if c == nil {
		return fmt.Errorf("%w: collection is nil", ErrInvalidCollection)
	}
	if err := ValidateCategory(c.Category); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCollection, err)
	}
	if c.Key == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCollection, ErrEmptyKey)
	}
	for i, r := range c.Records {
		if err := ValidateRecord(r); err != nil {
			return fmt.Errorf("%w: record %d: %w", ErrInvalidCollection, i, err)
		}
		if r.Kind() != c.Category {
			return fmt.Errorf("%w: record %d: %w", ErrInvalidCollection, i, ErrCategoryMismatch)
		}
	}
	return nil
}
