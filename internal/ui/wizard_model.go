package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sfdx-tools/mcp-setup/internal/models"
	"github.com/sfdx-tools/mcp-setup/internal/service"
)

// wizardState tracks which screen the TUI wizard is on
type wizardState int

const (
	stateWelcome wizardState = iota
	stateCollect
	stateReview
	stateOverwrite
	stateResults
)

// WizardModel is the bubbletea model for the full-screen wizard surface. It
// walks the same fixed sequence as the line-based wizard: welcome, one input
// per catalog variable, review, optional overwrite gate, results.
type WizardModel struct {
	svc       *service.Service
	variables []models.Variable
	existing  []string

	state    wizardState
	input    textinput.Model
	current  int
	inputErr string

	answers  models.Answers
	conflict []string
	results  []models.RenderResult

	// Outcome flags read by the caller after the program exits
	Cancelled bool
	Completed bool

	width  int
	height int
}

// NewWizardModel creates the TUI wizard over the given service and catalog.
func NewWizardModel(svc *service.Service, variables []models.Variable) (*WizardModel, error) {
	existing, err := svc.ListInstances()
	if err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Width = 60
	input.CharLimit = 0
	input.Focus()

	return &WizardModel{
		svc:       svc,
		variables: variables,
		existing:  existing,
		state:     stateWelcome,
		input:     input,
	}, nil
}

// Init implements tea.Model
func (m *WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.state != stateResults {
				m.Cancelled = true
			}
			return m, tea.Quit
		}

		switch m.state {
		case stateWelcome:
			if msg.Type == tea.KeyEnter {
				m.state = stateCollect
				m.prepareInput()
			}
			return m, nil

		case stateCollect:
			if msg.Type == tea.KeyEnter {
				return m.submitField()
			}

		case stateReview:
			switch msg.String() {
			case "y", "Y":
				return m.confirmReview()
			case "n", "N":
				m.Cancelled = true
				return m, tea.Quit
			}
			return m, nil

		case stateOverwrite:
			switch msg.String() {
			case "y", "Y":
				return m.render()
			case "n", "N":
				m.Cancelled = true
				return m, tea.Quit
			}
			return m, nil

		case stateResults:
			if msg.Type == tea.KeyEnter {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *WizardModel) prepareInput() {
	v := m.variables[m.current]
	m.input.SetValue(m.answers.Get(v.Key))
	m.input.Placeholder = ""
	if v.Optional {
		m.input.Placeholder = "press Enter to skip"
	}
	m.input.CursorEnd()
	m.inputErr = ""
}

func (m *WizardModel) submitField() (tea.Model, tea.Cmd) {
	v := m.variables[m.current]
	value := m.input.Value()

	if err := v.Validate(value); err != nil {
		m.inputErr = v.ErrorMsg
		return m, nil
	}

	m.answers.Set(v.Key, value)
	m.current++
	if m.current >= len(m.variables) {
		m.state = stateReview
		return m, nil
	}
	m.prepareInput()
	return m, nil
}

func (m *WizardModel) confirmReview() (tea.Model, tea.Cmd) {
	m.conflict = m.svc.ExistingFiles(m.answers.Name)
	if len(m.conflict) > 0 {
		m.state = stateOverwrite
		return m, nil
	}
	return m.render()
}

func (m *WizardModel) render() (tea.Model, tea.Cmd) {
	m.results = m.svc.CreateInstance(m.answers)
	m.Completed = true
	m.state = stateResults
	return m, nil
}

// Answers returns the collected answer set.
func (m *WizardModel) Answers() models.Answers {
	return m.answers
}

// View implements tea.Model
func (m *WizardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleBanner.Render(StyleTitle.Render("MCP Server Setup")) + "\n\n")

	switch m.state {
	case stateWelcome:
		b.WriteString(StyleText.Render("This wizard generates the four Salesforce metadata files for one") + "\n")
		b.WriteString(StyleText.Render("MCP server integration. You will be asked for:") + "\n\n")
		for _, v := range m.variables {
			marker := ""
			if v.Optional {
				marker = StyleTextDim.Render(" (optional)")
			}
			b.WriteString(StyleText.Render("  • "+v.Prompt) + marker + "\n")
		}
		if len(m.existing) > 0 {
			b.WriteString("\n" + Info("Already configured instances:") + "\n")
			for _, name := range m.existing {
				b.WriteString(StyleTextMuted.Render("  - "+name) + "\n")
			}
		}
		b.WriteString("\n" + StyleTextDim.Render("Enter to begin • Esc to quit"))

	case stateCollect:
		v := m.variables[m.current]
		b.WriteString(StyleTextDim.Render(fmt.Sprintf("Step %d of %d", m.current+1, len(m.variables))) + "\n\n")
		b.WriteString(StyleFormLabel.Render(v.Prompt) + "\n")
		for _, line := range strings.Split(v.Description, "\n") {
			b.WriteString(StyleFormHelp.Render("  "+line) + "\n")
		}
		b.WriteString("\n" + m.input.View() + "\n")
		if m.inputErr != "" {
			b.WriteString("\n" + Error(m.inputErr) + "\n")
		}
		b.WriteString("\n" + StyleTextDim.Render("Enter to accept • Esc to quit"))

	case stateReview:
		b.WriteString(StyleTitle.Render("Review") + "\n\n")
		b.WriteString(m.summary())
		b.WriteString("\n" + StyleTextDim.Render("y to create files • n/Esc to cancel"))

	case stateOverwrite:
		b.WriteString(Warning(fmt.Sprintf("Instance '%s' already has files:", m.answers.Name)) + "\n")
		for _, path := range m.conflict {
			b.WriteString(StyleTextMuted.Render("  "+path) + "\n")
		}
		b.WriteString("\n" + StyleTextDim.Render("y to overwrite • n/Esc to cancel"))

	case stateResults:
		for _, result := range m.results {
			if result.Err != nil {
				b.WriteString(Error(fmt.Sprintf("%s: %v", result.Rule.Label, result.Err)) + "\n")
				continue
			}
			b.WriteString(Success(fmt.Sprintf("%s → %s", result.Rule.Label, result.DestPath)) + "\n")
		}
		b.WriteString("\n" + StyleTextDim.Render("Enter to finish"))
	}

	return b.String() + "\n"
}

func (m *WizardModel) summary() string {
	var b strings.Builder
	namespace := m.answers.Namespace
	if namespace == "" {
		namespace = "(none)"
	}
	b.WriteString(StyleText.Render("  Name:            ") + m.answers.Name + "\n")
	b.WriteString(StyleText.Render("  MCP server URL:  ") + m.answers.ServerURL + "\n")
	b.WriteString(StyleText.Render("  Auth URL:        ") + m.answers.AuthURL + "\n")
	b.WriteString(StyleText.Render("  Namespace:       ") + namespace + "\n\n")
	b.WriteString(StyleText.Render("Planned files:") + "\n")
	for _, pair := range m.svc.PlannedFiles(m.answers.Name) {
		b.WriteString(StyleTextMuted.Render("  "+pair[0]) + "\n")
		b.WriteString(StyleTextMuted.Render("    → ") + StyleText.Render(pair[1]) + "\n")
	}
	return b.String()
}
