// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package projects

import "testing"

func TestSeedDemoOrder(t *testing.T) {
	l := NewList()
	l.SeedDemo()

	all := l.All()
	if len(all) != 3 {
		t.Fatalf("Count = %d, want 3", len(all))
	}
	want := []string{"VOXLAY Dashboard", "API Integration", "Mobile App"}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("Project %d = %q, want %q", i, all[i].Name, name)
		}
	}
}

func TestAddAndDelete(t *testing.T) {
	l := NewList()

	p := l.Add("CLI Tool", "Terminal utilities")
	if p.ID == "" {
		t.Fatal("Expected a generated ID")
	}

	all := l.All()
	if len(all) != 1 || all[0].Name != "CLI Tool" {
		t.Fatalf("All() = %v", all)
	}

	l.Delete(p.ID)
	l.Delete(p.ID) // idempotent
	if l.Count() != 0 {
		t.Errorf("Count = %d, want 0", l.Count())
	}
}
