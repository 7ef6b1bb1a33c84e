package service

import (
	"os"
	"strings"
	"testing"

	"github.com/sfdx-tools/mcp-setup/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	if err := svc.InitLibrary(); err != nil {
		t.Fatalf("Failed to init library: %v", err)
	}
	return svc
}

func testAnswers() models.Answers {
	return models.Answers{
		Name:      "weather_api",
		ServerURL: "https://mcp.example.com/api",
		AuthURL:   "https://auth.example.com/oauth/token",
	}
}

func TestCreateInstance(t *testing.T) {
	svc := newTestService(t)

	results := svc.CreateInstance(testAnswers())
	if len(results) != 4 {
		t.Fatalf("Expected 4 render results, got %d", len(results))
	}

	for _, result := range results {
		if result.Err != nil {
			t.Errorf("Rule %s failed: %v", result.Rule.Label, result.Err)
			continue
		}
		content, err := os.ReadFile(result.DestPath)
		if err != nil {
			t.Errorf("Destination %s missing: %v", result.DestPath, err)
			continue
		}
		if strings.Contains(string(content), models.TokenName) {
			t.Errorf("Destination %s still contains token %s", result.DestPath, models.TokenName)
		}
		if !strings.Contains(string(content), "weather_api") {
			t.Errorf("Destination %s does not contain the instance name", result.DestPath)
		}
	}

	names, err := svc.ListInstances()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "weather_api" {
		t.Errorf("Expected instance list [weather_api], got %v", names)
	}
}

func TestCreateInstanceMissingTemplateContinues(t *testing.T) {
	svc := newTestService(t)

	// Remove one template; the remaining rules must still render
	missing := svc.Storage().Rules()[1]
	if err := os.Remove(missing.TemplatePath(svc.Storage().GetBaseDir())); err != nil {
		t.Fatal(err)
	}

	results := svc.CreateInstance(testAnswers())
	if len(results) != 4 {
		t.Fatalf("Expected 4 render results, got %d", len(results))
	}

	var skipped, succeeded int
	for _, result := range results {
		if result.Skipped {
			skipped++
			if result.Rule.Dir != missing.Dir {
				t.Errorf("Unexpected skipped rule %s", result.Rule.Dir)
			}
			continue
		}
		if result.Err != nil {
			t.Errorf("Rule %s failed: %v", result.Rule.Label, result.Err)
			continue
		}
		succeeded++
	}
	if skipped != 1 || succeeded != 3 {
		t.Errorf("Expected 1 skipped and 3 succeeded, got %d and %d", skipped, succeeded)
	}
}

func TestCreateInstanceCheckedRefusesOverwrite(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.CreateInstanceChecked(testAnswers(), false); err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	if _, err := svc.CreateInstanceChecked(testAnswers(), false); err == nil {
		t.Fatal("Expected second create without force to fail")
	}

	if _, err := svc.CreateInstanceChecked(testAnswers(), true); err != nil {
		t.Errorf("Expected forced create to succeed, got: %v", err)
	}
}

func TestCreateInstanceCheckedValidates(t *testing.T) {
	svc := newTestService(t)

	bad := testAnswers()
	bad.Name = "3weather"
	if _, err := svc.CreateInstanceChecked(bad, false); err == nil {
		t.Fatal("Expected validation failure for invalid name")
	}
}

func TestFilterInstances(t *testing.T) {
	svc := newTestService(t)

	for _, name := range []string{"weather_api", "stock_api", "calendar"} {
		a := testAnswers()
		a.Name = name
		if _, err := svc.CreateInstanceChecked(a, false); err != nil {
			t.Fatal(err)
		}
	}

	all, err := svc.FilterInstances("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 instances, got %v", all)
	}

	matched, err := svc.FilterInstances("weather")
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 || matched[0] != "weather_api" {
		t.Errorf("Expected fuzzy match [weather_api], got %v", matched)
	}
}
