package hook

import "testing"

func TestIsKnownName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"pre-commit", true},
		{"pre-push", true},
		{"commit-msg", true},
		{"deploy", false},
		{"pre_commit", false}, // git uses hyphens
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKnownName(tt.name); got != tt.want {
				t.Errorf("IsKnownName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
