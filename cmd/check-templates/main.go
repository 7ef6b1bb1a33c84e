// check-templates audits the metadata template files: it verifies each of
// the four templates exists and reports which substitution tokens each one
// carries. Useful after hand-editing templates, since a typo in a token
// silently survives rendering.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sfdx-tools/mcp-setup/internal/models"
	"github.com/sfdx-tools/mcp-setup/internal/storage"
	"github.com/sfdx-tools/mcp-setup/internal/ui"
)

func main() {
	var dir string
	flag.StringVar(&dir, "dir", "", "Metadata root directory")
	flag.Parse()

	store, err := storage.NewStorage(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		os.Exit(1)
	}

	tokens := []string{
		models.TokenName,
		models.TokenServerURL,
		models.TokenAuthURL,
		models.TokenNamespacePrefix,
		models.TokenNamespace,
	}

	failed := false
	for _, rule := range store.Rules() {
		path := rule.TemplatePath(store.GetBaseDir())
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Println(ui.Error(fmt.Sprintf("%s: template missing (%s)", rule.Label, path)))
			failed = true
			continue
		}

		text := string(content)
		var present []string
		for _, token := range tokens {
			count := strings.Count(text, token)
			if token == models.TokenNamespace {
				// A bare NAMESPACE also matches inside NAMESPACE_PREFIX
				count -= strings.Count(text, models.TokenNamespacePrefix)
			}
			if count > 0 {
				present = append(present, token)
			}
		}

		if len(present) == 0 {
			fmt.Println(ui.Warning(fmt.Sprintf("%s: no substitution tokens found", rule.Label)))
			continue
		}
		fmt.Println(ui.Success(fmt.Sprintf("%s: %s", rule.Label, strings.Join(present, ", "))))
	}

	if failed {
		os.Exit(1)
	}
}
