package wizard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sfdx-tools/mcp-setup/internal/models"
	"github.com/sfdx-tools/mcp-setup/internal/validation"
)

func testVariable() models.Variable {
	return models.Variable{
		Key:      models.TokenName,
		Prompt:   "Integration name",
		Validate: validation.Identifier,
		ErrorMsg: "bad name",
	}
}

func TestCollectReturnsValueUnchanged(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader("weather_api\n"), &out)

	value, err := c.Collect(testVariable())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if value != "weather_api" {
		t.Errorf("Collect() = %q, want %q", value, "weather_api")
	}
}

func TestCollectRepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader("3bad\nalso-bad\nweather_api\n"), &out)

	value, err := c.Collect(testVariable())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if value != "weather_api" {
		t.Errorf("Collect() = %q, want %q", value, "weather_api")
	}
	if n := strings.Count(out.String(), "bad name"); n != 2 {
		t.Errorf("Expected 2 error messages, got %d", n)
	}
}

func TestCollectErrorsOnClosedInput(t *testing.T) {
	var out bytes.Buffer
	c := NewCollector(strings.NewReader(""), &out)

	if _, err := c.Collect(testVariable()); err == nil {
		t.Fatal("Expected an error when input is exhausted")
	}
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"yes", false},
		{"", false},
		{"anything", false},
	}

	for _, tc := range cases {
		var out bytes.Buffer
		c := NewCollector(strings.NewReader(tc.answer+"\n"), &out)
		got, err := c.Confirm("Proceed?")
		if err != nil {
			t.Fatalf("Confirm(%q) failed: %v", tc.answer, err)
		}
		if got != tc.want {
			t.Errorf("Confirm(%q) = %v, want %v", tc.answer, got, tc.want)
		}
	}
}
