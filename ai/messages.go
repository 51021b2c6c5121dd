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

// Fixed replies used when no context can be assembled for a question.
const (
	NoPlaceDataMessage = "I don't have any places data available at the moment. " +
		"However, I can help you with restaurants, cafes, or events. Would you like to see those instead?"

	NoDataMessage = "I couldn't find any relevant information in the database. Please try rephrasing your question."

	NotSpecificMessage = "I found some information, but it might not match your exact query. " +
		"Try asking more specifically, for example: 'show me places to visit', " +
		"'what restaurants are there?', or 'events in February'."
)
