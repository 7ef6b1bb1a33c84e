package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sfdx-tools/mcp-setup/internal/models"
)

func TestLoadAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	content := `name: weather_api
server_url: https://mcp.example.com/api
auth_url: https://auth.example.com/oauth/token
namespace: acme
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	answers, err := LoadAnswers(path)
	if err != nil {
		t.Fatalf("LoadAnswers failed: %v", err)
	}

	if answers.Name != "weather_api" {
		t.Errorf("Name = %q", answers.Name)
	}
	if answers.ServerURL != "https://mcp.example.com/api" {
		t.Errorf("ServerURL = %q", answers.ServerURL)
	}
	if answers.Namespace != "acme" {
		t.Errorf("Namespace = %q", answers.Namespace)
	}
}

func TestLoadAnswersRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	content := `name: 3weather
server_url: ftp://x
auth_url: https://auth.example.com/oauth/token
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAnswers(path); err == nil {
		t.Fatal("Expected validation error for invalid answers file")
	}
}

func TestLoadAnswersMissingFile(t *testing.T) {
	if _, err := LoadAnswers(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Expected error for missing answers file")
	}
}

func TestSaveAndReloadAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	original := models.Answers{
		Name:      "stock_api",
		ServerURL: "https://mcp.example.com/stocks",
		AuthURL:   "https://auth.example.com/oauth/token",
	}

	if err := SaveAnswers(path, original); err != nil {
		t.Fatalf("SaveAnswers failed: %v", err)
	}

	reloaded, err := LoadAnswers(path)
	if err != nil {
		t.Fatalf("LoadAnswers failed: %v", err)
	}
	if reloaded != original {
		t.Errorf("Round trip mismatch: %+v != %+v", reloaded, original)
	}
}
