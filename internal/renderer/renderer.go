// Package renderer performs literal token substitution on template files.
//
// Templates are treated as opaque text: no XML parsing, no templating
// language. Every literal occurrence of each token is replaced verbatim, in
// order, so templates stay valid metadata files even when unrendered. The
// operator is responsible for choosing token strings that do not collide
// with replacement values.
package renderer

import (
	"fmt"
	"os"
	"strings"

	"github.com/sfdx-tools/mcp-setup/internal/models"
)

// Render applies the replacement list to content and returns the result.
// Replacements apply in slice order; later tokens see the output of earlier
// substitutions.
func Render(content string, replacements []models.Replacement) string {
	for _, r := range replacements {
		content = strings.ReplaceAll(content, r.Token, r.Value)
	}
	return content
}

// RenderFile reads the template at templatePath, substitutes all tokens, and
// writes the result to destPath, creating or overwriting it. The template
// file is never modified.
func RenderFile(templatePath, destPath string, replacements []models.Replacement) error {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", templatePath, err)
	}

	rendered := Render(string(content), replacements)

	if err := os.WriteFile(destPath, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}

	return nil
}
