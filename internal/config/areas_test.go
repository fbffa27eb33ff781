package config

import (
	"testing"
)

func TestCompilePatterns(t *testing.T) {
	t.Run("empty list yields nil set", func(t *testing.T) {
		s, err := CompilePatterns(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s != nil {
			t.Fatalf("expected nil set for empty pattern list, got %v", s)
		}
		if s.Match("anything") {
			t.Error("empty set must never match")
		}
	})

	t.Run("malformed pattern", func(t *testing.T) {
		_, err := CompilePatterns([]string{"eth.*", "eth["})
		if err == nil {
			t.Fatal("expected compile error for malformed pattern")
		}
	})

	t.Run("patterns returns a copy", func(t *testing.T) {
		s, err := CompilePatterns([]string{"eth.*"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := s.Patterns()
		got[0] = "mutated"
		if s.Patterns()[0] != "eth.*" {
			t.Error("Patterns must return a copy")
		}
	})
}

func TestPatternSetMatch(t *testing.T) {
	tests := []struct {
		name      string
		patterns  []string
		candidate string
		want      bool
	}{
		{"wildcard suffix matches", []string{"eth.*"}, "eth0", true},
		{"wildcard suffix matches longer", []string{"eth.*"}, "eth12", true},
		{"anchored, no substring match", []string{"eth0"}, "eth01", false},
		{"anchored, no prefix match", []string{"eth0"}, "xeth0", false},
		{"exact match", []string{"eth0"}, "eth0", true},
		{"case insensitive", []string{"eth.*"}, "ETH0", true},
		{"case insensitive pattern", []string{"RSW.*"}, "rsw001", true},
		{"one of several patterns", []string{"fsw.*", "rsw.*"}, "rsw001", true},
		{"none of several patterns", []string{"fsw.*", "rsw.*"}, "ssw001", false},
		{"wildcard matches anything", []string{".*"}, "anything-at all", true},
		{"empty candidate against wildcard", []string{".*"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := CompilePatterns(tt.patterns)
			if err != nil {
				t.Fatalf("compile failed: %v", err)
			}
			if got := s.Match(tt.candidate); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestAreaRegistryAddArea(t *testing.T) {
	t.Run("distinct ids register", func(t *testing.T) {
		r := NewAreaRegistry()
		for _, id := range []string{"spine", "leaf", "pod1"} {
			if err := r.AddArea(id, []string{".*"}, nil); err != nil {
				t.Fatalf("AddArea(%s) failed: %v", id, err)
			}
		}
		if r.Len() != 3 {
			t.Errorf("Len() = %d, want 3", r.Len())
		}
		if got := r.IDs(); len(got) != 3 || got[0] != "spine" {
			t.Errorf("IDs() = %v, want registration order", got)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		r := NewAreaRegistry()
		if err := r.AddArea("spine", []string{".*"}, nil); err != nil {
			t.Fatalf("first AddArea failed: %v", err)
		}
		err := r.AddArea("spine", []string{"x.*"}, nil)
		if !IsKind(err, KindDuplicateArea) {
			t.Errorf("expected DuplicateArea, got %v", err)
		}
	})

	t.Run("both pattern lists empty", func(t *testing.T) {
		r := NewAreaRegistry()
		err := r.AddArea("spine", nil, []string{})
		if !IsKind(err, KindEmptyAreaRule) {
			t.Errorf("expected EmptyAreaRule, got %v", err)
		}
	})

	t.Run("malformed neighbor pattern", func(t *testing.T) {
		r := NewAreaRegistry()
		err := r.AddArea("spine", []string{"rsw["}, nil)
		if !IsKind(err, KindPatternCompile) {
			t.Errorf("expected PatternCompile, got %v", err)
		}
		ce := err.(*ConfigError)
		if ce.Field != "areas[spine].neighbor_regexes" {
			t.Errorf("unexpected field: %s", ce.Field)
		}
	})

	t.Run("malformed interface pattern", func(t *testing.T) {
		r := NewAreaRegistry()
		err := r.AddArea("spine", nil, []string{"eth("})
		if !IsKind(err, KindPatternCompile) {
			t.Errorf("expected PatternCompile, got %v", err)
		}
	})
}

func TestAreaRegistryMatches(t *testing.T) {
	r := NewAreaRegistry()
	if err := r.AddArea("spine", []string{"rsw.*"}, []string{"eth.*"}); err != nil {
		t.Fatalf("AddArea failed: %v", err)
	}
	// neighbor-only area: its interface matcher is empty and never matches
	if err := r.AddArea("leaf", []string{"fsw.*"}, nil); err != nil {
		t.Fatalf("AddArea failed: %v", err)
	}

	tests := []struct {
		name      string
		areaID    string
		candidate string
		kind      MatchKind
		want      bool
	}{
		{"neighbor match", "spine", "rsw001", MatchNeighbor, true},
		{"neighbor no match", "spine", "fsw001", MatchNeighbor, false},
		{"interface match", "spine", "eth0", MatchInterface, true},
		{"interface anchored", "spine", "peth0", MatchInterface, false},
		{"empty interface matcher never matches", "leaf", "eth0", MatchInterface, false},
		{"neighbor-only area still matches neighbors", "leaf", "fsw001", MatchNeighbor, true},
		{"unknown area never matches", "pod9", "eth0", MatchInterface, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Matches(tt.areaID, tt.candidate, tt.kind); got != tt.want {
				t.Errorf("Matches(%s, %q, %s) = %v, want %v",
					tt.areaID, tt.candidate, tt.kind, got, tt.want)
			}
		})
	}
}
