// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package projects implements the in-memory project list behind the
// Projects panel.
package projects

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Project is one workspace entry in the Projects panel.
type Project struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Files        int       `json:"files"`
	LastModified time.Time `json:"last_modified"`
}

// List holds projects for the process lifetime.
type List struct {
	mu       sync.Mutex
	projects map[string]Project
}

// NewList creates an empty project list.
func NewList() *List {
	return &List{projects: make(map[string]Project)}
}

// SeedDemo loads the starter projects shown on first launch.
func (l *List) SeedDemo() {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range []Project{
		{ID: newProjectID(), Name: "VOXLAY Dashboard", Description: "Main dashboard application", Files: 24, LastModified: now.Add(-time.Hour)},
		{ID: newProjectID(), Name: "API Integration", Description: "Backend API services", Files: 12, LastModified: now.Add(-24 * time.Hour)},
		{ID: newProjectID(), Name: "Mobile App", Description: "React Native mobile application", Files: 45, LastModified: now.Add(-48 * time.Hour)},
	} {
		l.projects[p.ID] = p
	}
}

// All returns the projects, most recently modified first.
func (l *List) All() []Project {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Project, 0, len(l.projects))
	for _, p := range l.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastModified.After(out[j].LastModified)
	})
	return out
}

// Add creates a project with the given name and description.
func (l *List) Add(name, description string) Project {
	p := Project{
		ID:           newProjectID(),
		Name:         name,
		Description:  description,
		LastModified: time.Now(),
	}
	l.mu.Lock()
	l.projects[p.ID] = p
	l.mu.Unlock()
	return p
}

// Delete removes a project. Idempotent.
func (l *List) Delete(id string) {
	l.mu.Lock()
	delete(l.projects, id)
	l.mu.Unlock()
}

// Count returns the number of projects.
func (l *List) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.projects)
}

func newProjectID() string {
	return "proj_" + uuid.NewString()
}
