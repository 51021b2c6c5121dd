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

package badger

import (
	"fmt"

	"github.com/poiesic/guidepost/core"
)

const (
	collectionPrefix = "col"
	checkpointPrefix = "chkpt"
)

// makeCollectionKey generates a key for a collection.
// Format: prefix:category:key
func makeCollectionKey(category core.Category, key string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", collectionPrefix, category, key))
}

// makeCollectionPrefix generates the key prefix shared by every collection
// of a category.
func makeCollectionPrefix(category core.Category) []byte {
	return []byte(fmt.Sprintf("%s:%s:", collectionPrefix, category))
}

// makeCheckpointKey generates a key for a source file checkpoint.
func makeCheckpointKey(source string) []byte {
	return []byte(fmt.Sprintf("%s:%s", checkpointPrefix, source))
}
