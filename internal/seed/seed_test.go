package seed

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestAvailable(t *testing.T) {
	examples := Available()
	if len(examples) == 0 {
		t.Fatal("no bundled examples")
	}
	for _, want := range []string{"commit_msg", "pre_commit", "pre_push"} {
		if !slices.Contains(examples, want) {
			t.Errorf("Available() = %v, missing %s", examples, want)
		}
	}
	if !slices.IsSorted(examples) {
		t.Errorf("Available() = %v, want sorted", examples)
	}
}

func TestSeedWritesExecutableScript(t *testing.T) {
	root := t.TempDir()

	target, err := Seed(root, "pre_commit")
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if target != filepath.Join(root, TargetDir, "pre_commit.sh") {
		t.Errorf("target = %q", target)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("seeded file missing: %v", err)
	}
	if info.Mode().Perm()&0o111 == 0 {
		t.Errorf("seeded file is not executable: %v", info.Mode())
	}
	if info.Size() == 0 {
		t.Error("seeded file is empty")
	}
}

func TestSeedRefusesOverwrite(t *testing.T) {
	root := t.TempDir()

	if _, err := Seed(root, "pre_commit"); err != nil {
		t.Fatalf("first Seed() error = %v", err)
	}
	_, err := Seed(root, "pre_commit")
	var exists *ExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("second Seed() error = %v, want ExistsError", err)
	}
}

func TestSeedUnknownExample(t *testing.T) {
	if _, err := Seed(t.TempDir(), "no_such_example"); err == nil {
		t.Fatal("Seed() should fail for unknown example")
	}
}
