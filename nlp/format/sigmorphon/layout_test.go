package sigmorphon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("a\tb\tc\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func buildRelease(t *testing.T) string {
	root := t.TempDir()
	touch(t, filepath.Join(root, GOLD_TEST_DIR, "fin.tst"))
	touch(t, filepath.Join(root, GOLD_TEST_DIR, "zul.tst"))
	touch(t, filepath.Join(root, GOLD_TEST_DIR, "aka.tst"))
	touch(t, filepath.Join(root, DEVELOPMENT_DIR, "uralic", "fin.trn"))
	touch(t, filepath.Join(root, DEVELOPMENT_DIR, "uralic", "fin.dev"))
	touch(t, filepath.Join(root, DEVELOPMENT_DIR, "uralic", "fin.tst"))
	touch(t, filepath.Join(root, SURPRISE_DIR, "niger-congo", "zul.trn"))
	touch(t, filepath.Join(root, SURPRISE_DIR, "niger-congo", "zul.dev"))
	// aka is missing its dev file
	touch(t, filepath.Join(root, SURPRISE_DIR, "niger-congo", "aka.trn"))
	return root
}

func TestDiscover(t *testing.T) {
	root := buildRelease(t)
	langs, errs := Discover(root)
	if len(langs) != 2 {
		t.Fatalf("Expected 2 languages, got %d: %v", len(langs), langs)
	}
	if langs[0].Code != "fin" || langs[1].Code != "zul" {
		t.Errorf("Expected sorted languages fin, zul; got %s, %s", langs[0].Code, langs[1].Code)
	}
	fin := langs[0]
	if fin.Family != "uralic" {
		t.Errorf("Expected family uralic, got %s", fin.Family)
	}
	if fin.Train != filepath.Join(root, DEVELOPMENT_DIR, "uralic", "fin.trn") {
		t.Errorf("Unexpected train path %s", fin.Train)
	}
	if fin.Test != filepath.Join(root, GOLD_TEST_DIR, "fin.tst") {
		t.Errorf("Unexpected test path %s", fin.Test)
	}
	if fin.NoGold != filepath.Join(root, DEVELOPMENT_DIR, "uralic", "fin.tst") {
		t.Errorf("Unexpected no-gold path %s", fin.NoGold)
	}
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %v", errs)
	}
	var missing *MissingPathError
	if !errors.As(errs[0], &missing) {
		t.Fatalf("Expected MissingPathError, got %v", errs[0])
	}
	if missing.Lang != "aka" || missing.Kind != "dev" {
		t.Errorf("Expected missing aka dev, got %s %s", missing.Lang, missing.Kind)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	langs, errs := Discover(filepath.Join(t.TempDir(), "nothing"))
	if len(langs) != 0 || len(errs) != 1 {
		t.Errorf("Expected no languages and one error, got %v %v", langs, errs)
	}
}

func TestLayout(t *testing.T) {
	paths := Layout("out", "uralic", "fin")
	expected := Paths{
		Train:  filepath.Join("out", "uralic", "fin.trn"),
		Dev:    filepath.Join("out", "uralic", "fin.dev"),
		Test:   filepath.Join("out", "uralic", "fin.tst"),
		NoGold: filepath.Join("out", "uralic", "fin.tst.nogold"),
	}
	if paths != expected {
		t.Errorf("Expected %v, got %v", expected, paths)
	}
}

func TestDiscoverSplit(t *testing.T) {
	root := t.TempDir()
	paths := Layout(root, "uralic", "fin")
	touch(t, paths.Train)
	touch(t, paths.Dev)
	touch(t, paths.Test)
	touch(t, paths.NoGold)
	langs, errs := DiscoverSplit(root)
	if len(errs) != 0 {
		t.Fatal(errs)
	}
	if len(langs) != 1 || langs[0].Code != "fin" || langs[0].Paths != paths {
		t.Errorf("Unexpected languages %v", langs)
	}
}

func TestSelect(t *testing.T) {
	langs := []Language{{Code: "aka"}, {Code: "fin"}, {Code: "zul"}}
	selected := Select(langs, []string{"zul", "aka"})
	if len(selected) != 2 || selected[0].Code != "aka" || selected[1].Code != "zul" {
		t.Errorf("Unexpected selection %v", selected)
	}
	if len(Select(langs, nil)) != 3 {
		t.Error("Empty selection should keep all languages")
	}
}
