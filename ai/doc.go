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

// Package ai is the answer layer on top of the context assembler.
//
// It turns an assembled search.Result into prompt text, builds the guide
// prompt in the requested language, and cleans the model's reply. The
// language model itself sits behind the Responder interface so the rest of
// the system never depends on a concrete provider.
//
// # Implementation Packages
//
//   - ai/openai: Responder backed by an OpenAI-compatible chat API (OpenRouter by default)
//   - ai/mock: test doubles
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithToken(os.Getenv("OPENROUTER_API_KEY")))
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	prompt := ai.BuildPrompt(question, ai.FormatContext(result), ai.LanguageEnglish)
//	reply, err := provider.Responder().Respond(ctx, prompt)
//	answer := ai.CleanResponse(reply)
package ai
