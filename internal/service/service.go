// Package service provides the business logic shared by the wizard, the TUI,
// and the headless CLI.
package service

import (
	"fmt"

	"github.com/sfdx-tools/mcp-setup/internal/errors"
	"github.com/sfdx-tools/mcp-setup/internal/models"
	"github.com/sfdx-tools/mcp-setup/internal/renderer"
	"github.com/sfdx-tools/mcp-setup/internal/storage"
	"github.com/sfdx-tools/mcp-setup/internal/validation"
	"github.com/sahilm/fuzzy"
)

// Service provides instance management on top of one metadata root
type Service struct {
	storage *storage.Storage
}

// NewService creates a new service instance rooted at rootPath (empty means
// environment override or the default DX project layout).
func NewService(rootPath string) (*Service, error) {
	store, err := storage.NewStorage(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &Service{storage: store}, nil
}

// Storage exposes the underlying storage layer
func (s *Service) Storage() *storage.Storage {
	return s.storage
}

// InitLibrary scaffolds the metadata directories and starter templates.
func (s *Service) InitLibrary() error {
	return s.storage.InitLibrary()
}

// ListInstances returns configured instance names, sorted ascending.
func (s *Service) ListInstances() ([]string, error) {
	return s.storage.ListInstances()
}

// FilterInstances returns the instance names fuzzy-matching a filter query,
// best matches first. An empty query returns all instances.
func (s *Service) FilterInstances(query string) ([]string, error) {
	names, err := s.storage.ListInstances()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return names, nil
	}

	matches := fuzzy.Find(query, names)
	filtered := make([]string, len(matches))
	for i, m := range matches {
		filtered[i] = names[m.Index]
	}
	return filtered, nil
}

// ExistingFiles returns the destination files that already exist for an
// instance name, used for the overwrite guard.
func (s *Service) ExistingFiles(name string) []string {
	return s.storage.ExistingFiles(name)
}

// PlannedFiles returns the (template → destination) pairs the four rules
// would produce for an instance name, for summary display.
func (s *Service) PlannedFiles(name string) [][2]string {
	rules := s.storage.Rules()
	planned := make([][2]string, len(rules))
	root := s.storage.GetBaseDir()
	for i, rule := range rules {
		planned[i] = [2]string{rule.TemplatePath(root), rule.DestPath(root, name)}
	}
	return planned
}

// CreateInstance renders all four metadata files for the answer set. A
// missing template fails that one rule and the remaining rules are still
// attempted; the per-rule outcomes are returned for display.
func (s *Service) CreateInstance(answers models.Answers) []models.RenderResult {
	replacements := answers.Replacements()
	root := s.storage.GetBaseDir()

	results := make([]models.RenderResult, 0, len(s.storage.Rules()))
	for _, rule := range s.storage.Rules() {
		result := models.RenderResult{
			Rule:     rule,
			DestPath: rule.DestPath(root, answers.Name),
		}

		if !s.storage.TemplateExists(rule) {
			result.Skipped = true
			result.Err = errors.TemplateMissingError(rule.TemplatePath(root))
			results = append(results, result)
			continue
		}

		if err := renderer.RenderFile(rule.TemplatePath(root), result.DestPath, replacements); err != nil {
			result.Err = errors.StorageError("render "+rule.Label, err)
		}
		results = append(results, result)
	}

	return results
}

// CreateInstanceChecked validates the answer set and refuses to overwrite
// existing files unless force is set. This is the headless entry point; the
// interactive surfaces run their own confirmation flow instead.
func (s *Service) CreateInstanceChecked(answers models.Answers, force bool) ([]models.RenderResult, error) {
	if result := validation.Answers(answers); !result.Valid() {
		return nil, errors.ValidationError(result.Error())
	}

	if existing := s.storage.ExistingFiles(answers.Name); len(existing) > 0 && !force {
		return nil, errors.AlreadyExistsError(fmt.Sprintf("instance '%s'", answers.Name)).
			WithDetails("use --force to overwrite")
	}

	return s.CreateInstance(answers), nil
}
