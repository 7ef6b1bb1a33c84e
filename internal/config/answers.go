// Package config loads wizard answers from a YAML file, for prefilled or
// fully scripted runs.
package config

import (
	"fmt"
	"os"

	"github.com/sfdx-tools/mcp-setup/internal/models"
	"github.com/sfdx-tools/mcp-setup/internal/validation"
	"gopkg.in/yaml.v3"
)

// AnswersFile is the on-disk shape of a preset answers file.
type AnswersFile struct {
	Name      string `yaml:"name"`
	ServerURL string `yaml:"server_url"`
	AuthURL   string `yaml:"auth_url"`
	Namespace string `yaml:"namespace,omitempty"`
}

// LoadAnswers reads and validates an answers file. All fields except
// namespace are required; values pass the same predicates interactive input
// does.
func LoadAnswers(path string) (models.Answers, error) {
	var answers models.Answers

	data, err := os.ReadFile(path)
	if err != nil {
		return answers, fmt.Errorf("failed to read answers file: %w", err)
	}

	var file AnswersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return answers, fmt.Errorf("failed to parse answers file: %w", err)
	}

	answers = models.Answers{
		Name:      file.Name,
		ServerURL: file.ServerURL,
		AuthURL:   file.AuthURL,
		Namespace: file.Namespace,
	}

	if result := validation.Answers(answers); !result.Valid() {
		return answers, fmt.Errorf("invalid answers file %s: %s", path, result.Error())
	}

	return answers, nil
}

// SaveAnswers writes an answer set back to a YAML file, so a completed
// wizard run can be replayed with --answers.
func SaveAnswers(path string, answers models.Answers) error {
	file := AnswersFile{
		Name:      answers.Name,
		ServerURL: answers.ServerURL,
		AuthURL:   answers.AuthURL,
		Namespace: answers.Namespace,
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write answers file: %w", err)
	}

	return nil
}
