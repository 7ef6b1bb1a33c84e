package wizard

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/sfdx-tools/mcp-setup/internal/models"
)

const instructionsTemplate = `# Next steps

The metadata files for **%[1]s** are ready. To finish the setup:

1. Deploy the metadata to your org:

   ` + "```" + `
   sf project deploy start --source-dir %[2]s
   ` + "```" + `

2. Assign the permission set to the users who may call the MCP server:

   ` + "```" + `
   sf org assign permset --name %[1]s_Perm_Set
   ` + "```" + `

3. In Setup → Named Credentials → External Credentials, open **%[1]s**,
   create a principal, and authenticate it against the auth provider.
`

// Instructions renders the closing next-steps block for a finished run. The
// text is informational only; nothing further is automated.
func Instructions(answers models.Answers, baseDir string) string {
	markdown := fmt.Sprintf(instructionsTemplate, answers.Name, baseDir)

	rendered, err := glamour.Render(markdown, "auto")
	if err != nil {
		// Fall back to the raw markdown when the terminal renderer fails
		return markdown
	}
	return rendered
}

func (w *Wizard) printInstructions(answers models.Answers) {
	fmt.Fprintln(w.out, Instructions(answers, w.svc.Storage().GetBaseDir()))
}
