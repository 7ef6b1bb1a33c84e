package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	return store
}

func TestListInstancesMissingDirectory(t *testing.T) {
	store := newTestStorage(t)

	names, err := store.ListInstances()
	if err != nil {
		t.Fatalf("Expected no error for a missing directory, got: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected empty result, got %v", names)
	}
}

func TestListInstancesSortedAndFiltered(t *testing.T) {
	store := newTestStorage(t)

	dir := filepath.Join(store.GetBaseDir(), "externalCredentials")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	files := []string{
		"foo.externalCredential-meta.xml",
		"bar.externalCredential-meta.xml",
		"template.externalCredential-meta.xml",
		"notes.txt",
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// Subdirectories are not instances
	if err := os.MkdirAll(filepath.Join(dir, "sub.externalCredential-meta.xml"), 0755); err != nil {
		t.Fatal(err)
	}

	names, err := store.ListInstances()
	if err != nil {
		t.Fatalf("ListInstances failed: %v", err)
	}

	want := []string{"bar", "foo"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListInstances() = %v, want %v", names, want)
	}
}

func TestInitLibraryWritesStarterTemplates(t *testing.T) {
	store := newTestStorage(t)

	if err := store.InitLibrary(); err != nil {
		t.Fatalf("InitLibrary failed: %v", err)
	}

	for _, rule := range store.Rules() {
		path := rule.TemplatePath(store.GetBaseDir())
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Expected template %s to exist: %v", path, err)
		}
		if len(content) == 0 {
			t.Errorf("Template %s is empty", path)
		}
		if !store.TemplateExists(rule) {
			t.Errorf("TemplateExists false for %s", rule.Dir)
		}
	}
}

func TestInitLibraryKeepsExistingTemplates(t *testing.T) {
	store := newTestStorage(t)

	rule := store.Rules()[0]
	dir := filepath.Join(store.GetBaseDir(), rule.Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	custom := []byte("<custom/>")
	if err := os.WriteFile(rule.TemplatePath(store.GetBaseDir()), custom, 0644); err != nil {
		t.Fatal(err)
	}

	if err := store.InitLibrary(); err != nil {
		t.Fatalf("InitLibrary failed: %v", err)
	}

	content, err := os.ReadFile(rule.TemplatePath(store.GetBaseDir()))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != string(custom) {
		t.Error("InitLibrary overwrote an existing template")
	}
}

func TestExistingFiles(t *testing.T) {
	store := newTestStorage(t)

	if existing := store.ExistingFiles("weather"); len(existing) != 0 {
		t.Errorf("Expected no existing files, got %v", existing)
	}

	rule := store.Rules()[2] // named credential
	dir := filepath.Join(store.GetBaseDir(), rule.Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(rule.DestPath(store.GetBaseDir(), "weather"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	existing := store.ExistingFiles("weather")
	if len(existing) != 1 {
		t.Fatalf("Expected 1 existing file, got %v", existing)
	}
	if existing[0] != rule.DestPath(store.GetBaseDir(), "weather") {
		t.Errorf("Unexpected existing path %s", existing[0])
	}
}

func TestNewStorageEnvOverride(t *testing.T) {
	t.Setenv("MCP_SETUP_DIR", "/tmp/custom-metadata")

	store, err := NewStorage("")
	if err != nil {
		t.Fatal(err)
	}
	if store.GetBaseDir() != "/tmp/custom-metadata" {
		t.Errorf("Expected env override, got %s", store.GetBaseDir())
	}
}
