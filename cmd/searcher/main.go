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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/guidepost"
	"github.com/poiesic/guidepost/ai"
	"github.com/poiesic/guidepost/core"
)

func init() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	db, err := guidepost.OpenDatabase("./guide_db")
	if err != nil {
		panic(err)
	}
	defer db.Close()
	guide, err := guidepost.NewGuide(db.CorpusRepository())
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	if err := guide.Reload(ctx); err != nil {
		panic(err)
	}

	question := "good places to eat"
	if len(os.Args) > 1 {
		question = strings.Join(os.Args[1:], " ")
	}
	result := guide.BuildContext(question)

	fmt.Printf("Found %d records\n", result.Len())
	for _, cat := range core.Categories {
		section := result.Section(cat)
		if section.Len() > 0 {
			fmt.Printf("%s: %d\n", cat, section.Len())
		}
	}
	fmt.Println(ai.FormatContext(result))
}
