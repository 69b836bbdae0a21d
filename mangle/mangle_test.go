package mangle

import (
	"testing"

	"github.com/elm-js/codegen/jsast"
)

func TestLocalEscapesReservedWords(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"x", "x"},
		{"delete", "delete_"},
		{"class", "class_"},
		{"value", "value"},
	}
	m := New()
	for _, tt := range tests {
		if got := m.Local(tt.name); got != tt.want {
			t.Errorf("Local(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFreshIsMonotonicAndUnique(t *testing.T) {
	m := New()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		name := m.Fresh()
		if seen[name] {
			t.Fatalf("Fresh() produced a repeat: %q", name)
		}
		seen[name] = true
	}
	if got := m.Counter(); got != 50 {
		t.Errorf("Counter() = %d, want 50", got)
	}
}

func TestGlobalJoinsModulePathWithDollar(t *testing.T) {
	m := New()
	got := m.Global("Json.Decode", "map2")
	want := "Json$Decode$map2"
	if got != want {
		t.Errorf("Global() = %q, want %q", got, want)
	}
}

func TestDefineGlobalRendersVarDecl(t *testing.T) {
	m := New()
	stmt := m.DefineGlobal("Main", "x", &jsast.Int{Value: 1})
	got := stmt.String()
	want := "var Main$x = 1;"
	if got != want {
		t.Errorf("DefineGlobal().String() = %q, want %q", got, want)
	}
}
