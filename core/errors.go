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

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecord indicates a Record failed validation.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrInvalidCollection indicates a Collection failed validation.
	ErrInvalidCollection = errors.New("invalid collection")

	// ErrEmptyName indicates the record has no display name.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyKey indicates a collection has no key.
	ErrEmptyKey = errors.New("collection key cannot be empty")

	// ErrInvalidCategory indicates an unknown Category value.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrCategoryMismatch indicates a record does not belong to its collection's category.
	ErrCategoryMismatch = errors.New("record category does not match collection")

	// ErrUnknownRecordKind indicates serialized data carries an unknown record tag.
	ErrUnknownRecordKind = errors.New("unknown record kind")
)
