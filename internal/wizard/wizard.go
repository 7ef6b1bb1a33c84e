// Package wizard implements the interactive setup flow: a fixed sequence of
// prompts, two confirmation gates, and one render pass over the four
// metadata file rules.
package wizard

import (
	"fmt"
	"io"

	"github.com/sfdx-tools/mcp-setup/internal/config"
	"github.com/sfdx-tools/mcp-setup/internal/errors"
	"github.com/sfdx-tools/mcp-setup/internal/models"
	"github.com/sfdx-tools/mcp-setup/internal/service"
	"github.com/sfdx-tools/mcp-setup/internal/ui"
)

// Wizard drives one setup run from banner to closing instructions.
type Wizard struct {
	svc       *service.Service
	collector *Collector
	out       io.Writer

	// Prefill holds answers loaded from an --answers file. Valid prefilled
	// values are accepted without prompting.
	Prefill *models.Answers

	// SaveAnswersPath, when set, writes the accepted answers back to a YAML
	// file after a successful run.
	SaveAnswersPath string
}

// New creates a wizard reading from in and writing to out.
func New(svc *service.Service, in io.Reader, out io.Writer) *Wizard {
	return &Wizard{
		svc:       svc,
		collector: NewCollector(in, out),
		out:       out,
	}
}

// Run executes the wizard. Cancellation at either confirmation returns an
// error with code CANCELLED, which callers map to exit status 0.
func (w *Wizard) Run() error {
	w.printBanner()

	if err := w.collector.WaitForEnter(); err != nil {
		return err
	}

	if err := w.showExistingInstances(); err != nil {
		return err
	}

	answers, err := w.collectAnswers()
	if err != nil {
		return err
	}

	w.printSummary(answers)

	ok, err := w.collector.Confirm("Create these files?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(w.out, ui.Warning("Setup cancelled. No files were created."))
		return errors.CancelledError("setup cancelled at review")
	}

	if existing := w.svc.ExistingFiles(answers.Name); len(existing) > 0 {
		fmt.Fprintln(w.out)
		fmt.Fprintln(w.out, ui.Warning(fmt.Sprintf("Instance '%s' already has files:", answers.Name)))
		for _, path := range existing {
			fmt.Fprintln(w.out, ui.StyleTextMuted.Render("  "+path))
		}
		ok, err := w.collector.Confirm("Overwrite them?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w.out, ui.Warning("Setup cancelled. No files were created."))
			return errors.CancelledError("setup cancelled at overwrite check")
		}
	}

	fmt.Fprintln(w.out)
	results := w.svc.CreateInstance(answers)
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintln(w.out, ui.Error(fmt.Sprintf("%s: %v", result.Rule.Label, result.Err)))
			continue
		}
		fmt.Fprintln(w.out, ui.Success(fmt.Sprintf("%s → %s", result.Rule.Label, result.DestPath)))
	}

	if w.SaveAnswersPath != "" {
		if err := config.SaveAnswers(w.SaveAnswersPath, answers); err != nil {
			fmt.Fprintln(w.out, ui.Warning(fmt.Sprintf("Could not save answers: %v", err)))
		} else {
			fmt.Fprintln(w.out, ui.Info("Answers saved to "+w.SaveAnswersPath))
		}
	}

	w.printInstructions(answers)
	return nil
}

func (w *Wizard) printBanner() {
	fmt.Fprintln(w.out, ui.StyleBanner.Render(ui.StyleTitle.Render("MCP Server Setup")))
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, ui.StyleText.Render("This wizard generates the four Salesforce metadata files for one"))
	fmt.Fprintln(w.out, ui.StyleText.Render("MCP server integration. You will be asked for:"))
	fmt.Fprintln(w.out)
	for _, v := range Catalog() {
		marker := ""
		if v.Optional {
			marker = ui.StyleTextDim.Render(" (optional)")
		}
		fmt.Fprintln(w.out, ui.StyleText.Render("  • "+v.Prompt)+marker)
	}
	fmt.Fprintln(w.out)
}

func (w *Wizard) showExistingInstances() error {
	names, err := w.svc.ListInstances()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, ui.Info("Already configured instances:"))
	for _, name := range names {
		fmt.Fprintln(w.out, ui.StyleTextMuted.Render("  - "+name))
	}
	return nil
}

func (w *Wizard) collectAnswers() (models.Answers, error) {
	var answers models.Answers

	for _, v := range Catalog() {
		if w.Prefill != nil {
			prefilled := w.Prefill.Get(v.Key)
			if v.Validate(prefilled) == nil && (prefilled != "" || v.Optional) {
				fmt.Fprintln(w.out, ui.Info(fmt.Sprintf("%s: %s", v.Prompt, displayValue(prefilled))))
				answers.Set(v.Key, prefilled)
				continue
			}
		}

		value, err := w.collector.Collect(v)
		if err != nil {
			return answers, err
		}
		answers.Set(v.Key, value)
	}

	return answers, nil
}

func (w *Wizard) printSummary(answers models.Answers) {
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, ui.StyleTitle.Render("Review"))
	fmt.Fprintln(w.out, ui.StyleText.Render("  Name:            ")+answers.Name)
	fmt.Fprintln(w.out, ui.StyleText.Render("  MCP server URL:  ")+answers.ServerURL)
	fmt.Fprintln(w.out, ui.StyleText.Render("  Auth URL:        ")+answers.AuthURL)
	fmt.Fprintln(w.out, ui.StyleText.Render("  Namespace:       ")+displayValue(answers.Namespace))
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, ui.StyleText.Render("Planned files:"))
	for _, pair := range w.svc.PlannedFiles(answers.Name) {
		fmt.Fprintln(w.out, ui.StyleTextMuted.Render("  "+pair[0]))
		fmt.Fprintln(w.out, ui.StyleTextMuted.Render("    → ")+ui.StyleText.Render(pair[1]))
	}
	fmt.Fprintln(w.out)
}

func displayValue(value string) string {
	if value == "" {
		return ui.StyleTextDim.Render("(none)")
	}
	return value
}
