package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sfdx-tools/mcp-setup/internal/models"
	"github.com/sfdx-tools/mcp-setup/internal/ui"
)

// Collector asks for variable values over a line-based console protocol.
// It blocks on each prompt until a line arrives; the only escape is
// interrupting the process.
type Collector struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewCollector creates a collector reading lines from in and writing
// prompts to out.
func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// readLine reads one input line. Closed input is an error: the wizard has
// no way to make progress without an answer.
func (c *Collector) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("input closed before the wizard finished")
	}
	return c.scanner.Text(), nil
}

// Collect prompts for one variable and re-prompts until its validation
// passes. The accepted value is returned exactly as entered.
func (c *Collector) Collect(v models.Variable) (string, error) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, ui.StyleFormLabel.Render(v.Prompt))
	for _, line := range strings.Split(v.Description, "\n") {
		fmt.Fprintln(c.out, ui.StyleFormHelp.Render("  "+line))
	}

	hint := "> "
	if v.Optional {
		hint = ui.StyleTextDim.Render("(press Enter to skip) ") + "> "
	}

	for {
		fmt.Fprint(c.out, hint)
		value, err := c.readLine()
		if err != nil {
			return "", err
		}

		if err := v.Validate(value); err != nil {
			fmt.Fprintln(c.out, ui.Error(v.ErrorMsg))
			continue
		}
		return value, nil
	}
}

// Confirm asks a yes/no question. Only a case-insensitive "y" counts as
// yes; anything else is a no.
func (c *Collector) Confirm(question string) (bool, error) {
	fmt.Fprint(c.out, ui.StyleText.Render(question)+" [y/N] ")
	answer, err := c.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// WaitForEnter blocks until the user acknowledges with Enter.
func (c *Collector) WaitForEnter() error {
	fmt.Fprint(c.out, ui.StyleTextDim.Render("Press Enter to continue..."))
	_, err := c.readLine()
	return err
}
