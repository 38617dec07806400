// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package snippets implements the in-memory code snippet library behind
// the Code Library panel.
package snippets

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Snippet is one saved code fragment.
type Snippet struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// =============================================================================
// LIBRARY
// =============================================================================

// Library holds snippets for the process lifetime.
type Library struct {
	mu       sync.Mutex
	snippets map[string]Snippet
}

// NewLibrary creates an empty snippet library.
func NewLibrary() *Library {
	return &Library{snippets: make(map[string]Snippet)}
}

// SeedDemo loads the starter snippets shown on first launch.
func (l *Library) SeedDemo() {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range []Snippet{
		{
			ID:        newSnippetID(),
			Title:     "React useEffect Hook",
			Language:  "typescript",
			Code:      "useEffect(() => {\n  // Effect logic\n  return () => cleanup();\n}, [deps]);",
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:        newSnippetID(),
			Title:     "Fetch API Wrapper",
			Language:  "javascript",
			Code:      "async function fetchData(url) {\n  const res = await fetch(url);\n  return res.json();\n}",
			CreatedAt: now.Add(-48 * time.Hour),
		},
	} {
		l.snippets[s.ID] = s
	}
}

// List returns all snippets, newest first.
func (l *Library) List() []Snippet {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Snippet, 0, len(l.snippets))
	for _, s := range l.snippets {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Filter returns snippets whose title or language contains the query,
// case-insensitive. Empty query returns all snippets in List order.
func (l *Library) Filter(query string) []Snippet {
	all := l.List()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all
	}

	var results []Snippet
	for _, s := range all {
		if strings.Contains(strings.ToLower(s.Title), query) ||
			strings.Contains(strings.ToLower(s.Language), query) {
			results = append(results, s)
		}
	}
	return results
}

// Add saves a new snippet and returns it.
func (l *Library) Add(title, language, code string) Snippet {
	s := Snippet{
		ID:        newSnippetID(),
		Title:     title,
		Language:  language,
		Code:      code,
		CreatedAt: time.Now(),
	}
	l.mu.Lock()
	l.snippets[s.ID] = s
	l.mu.Unlock()
	return s
}

// Delete removes a snippet. Idempotent.
func (l *Library) Delete(id string) {
	l.mu.Lock()
	delete(l.snippets, id)
	l.mu.Unlock()
}

// Count returns the number of snippets.
func (l *Library) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.snippets)
}

func newSnippetID() string {
	return "snip_" + uuid.NewString()
}
