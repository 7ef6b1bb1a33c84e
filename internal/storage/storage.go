// Package storage handles all file system operations against the Salesforce
// metadata directory tree.
package storage

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sfdx-tools/mcp-setup/internal/models"
)

//go:embed templates/*.xml
var starterTemplates embed.FS

// DefaultRoot is the metadata root used when no override is given. The tool
// is expected to run from the top of a Salesforce DX project.
const DefaultRoot = "force-app/main/default"

// Storage handles template and instance files under one metadata root
type Storage struct {
	rootPath string
	rules    []models.FileRule
}

// NewStorage creates a new storage instance. An empty rootPath falls back to
// the MCP_SETUP_DIR environment variable, then to DefaultRoot.
func NewStorage(rootPath string) (*Storage, error) {
	if rootPath == "" {
		rootPath = os.Getenv("MCP_SETUP_DIR")
	}
	if rootPath == "" {
		rootPath = DefaultRoot
	}

	return &Storage{
		rootPath: rootPath,
		rules:    models.DefaultRules(),
	}, nil
}

// GetBaseDir returns the metadata root path
func (s *Storage) GetBaseDir() string {
	return s.rootPath
}

// Rules returns the file rules in render order
func (s *Storage) Rules() []models.FileRule {
	return s.rules
}

// InitLibrary creates the four metadata directories and writes the starter
// template files. Existing template files are left untouched.
func (s *Storage) InitLibrary() error {
	for _, rule := range s.rules {
		dir := filepath.Join(s.rootPath, rule.Dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		templatePath := rule.TemplatePath(s.rootPath)
		if _, err := os.Stat(templatePath); err == nil {
			continue
		}

		content, err := starterTemplates.ReadFile("templates/" + rule.TemplateFile)
		if err != nil {
			return fmt.Errorf("failed to read starter template %s: %w", rule.TemplateFile, err)
		}
		if err := os.WriteFile(templatePath, content, 0644); err != nil {
			return fmt.Errorf("failed to write template %s: %w", templatePath, err)
		}
	}

	return nil
}

// ListInstances returns the names of previously configured instances, sorted
// ascending. The external-credential directory is the source of truth: one
// instance file per configured integration. A missing directory yields an
// empty list, not an error.
func (s *Storage) ListInstances() ([]string, error) {
	dir := filepath.Join(s.rootPath, "externalCredentials")

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), models.ExternalCredentialSuffix)
		if !ok || name == models.TemplateBase {
			continue
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// TemplateExists reports whether the rule's template file is present.
func (s *Storage) TemplateExists(rule models.FileRule) bool {
	info, err := os.Stat(rule.TemplatePath(s.rootPath))
	return err == nil && !info.IsDir()
}

// ExistingFiles returns the destination paths that already exist for an
// instance name, across all four rule directories.
func (s *Storage) ExistingFiles(name string) []string {
	var existing []string
	for _, rule := range s.rules {
		dest := rule.DestPath(s.rootPath, name)
		if info, err := os.Stat(dest); err == nil && !info.IsDir() {
			existing = append(existing, dest)
		}
	}
	return existing
}
