package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sfdx-tools/mcp-setup/internal/cli"
	"github.com/sfdx-tools/mcp-setup/internal/config"
	"github.com/sfdx-tools/mcp-setup/internal/errors"
	"github.com/sfdx-tools/mcp-setup/internal/service"
	"github.com/sfdx-tools/mcp-setup/internal/ui"
	"github.com/sfdx-tools/mcp-setup/internal/wizard"

	tea "github.com/charmbracelet/bubbletea"
)

var version = "0.1.0"

func printHelp() {
	fmt.Printf(`mcp-setup - Salesforce MCP server metadata setup

USAGE:
    mcp-setup [OPTIONS] [COMMAND]

OPTIONS:
    --help          Show this help information
    --version       Print version information
    --init          Create the metadata directories and starter templates
    --dir           Metadata root directory (default: force-app/main/default)
    --answers       YAML file with preset answers (prefills the wizard)
    --save-answers  Write accepted answers to a YAML file after the run
    --tui           Run the full-screen wizard instead of the line-based one

COMMANDS:
    (no command)       Start the interactive setup wizard
    list, ls           List configured instances
    new, create        Create an instance without prompting
    help               Show CLI command help

EXAMPLES:
    mcp-setup                                       # Interactive wizard
    mcp-setup --init                                # Scaffold templates
    mcp-setup --tui                                 # Full-screen wizard
    mcp-setup --answers weather.yaml                # Prefilled wizard run
    mcp-setup list --format text                    # List instances
    mcp-setup new --name weather_api \
      --server-url https://mcp.example.com/api \
      --auth-url https://auth.example.com/oauth/token

STORAGE:
    Default directory: force-app/main/default
    Override with: --dir <path> or MCP_SETUP_DIR=<path>
`)
}

func main() {
	var showVersion bool
	var initLib bool
	var showHelp bool
	var useTUI bool
	var dir string
	var answersPath string
	var saveAnswersPath string

	flag.BoolVar(&showVersion, "version", false, "Print version information")
	flag.BoolVar(&initLib, "init", false, "Create the metadata directories and starter templates")
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.BoolVar(&useTUI, "tui", false, "Run the full-screen wizard")
	flag.StringVar(&dir, "dir", "", "Metadata root directory")
	flag.StringVar(&answersPath, "answers", "", "YAML file with preset answers")
	flag.StringVar(&saveAnswersPath, "save-answers", "", "Write accepted answers to a YAML file")
	flag.Parse()

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("mcp-setup version %s\n", version)
		os.Exit(0)
	}

	svc, err := service.NewService(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		os.Exit(1)
	}

	if initLib {
		if err := svc.InitLibrary(); err != nil {
			fmt.Fprintln(os.Stderr, ui.Error("Error initializing metadata directories: "+err.Error()))
			os.Exit(1)
		}
		fmt.Println(ui.Success("Initialized metadata directories under " + svc.Storage().GetBaseDir()))
		return
	}

	// Check for command line arguments for CLI mode
	args := flag.Args()
	if len(args) > 0 {
		cliHandler := cli.NewCLI(svc)
		if err := cliHandler.ExecuteCommand(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if useTUI {
		runTUI(svc)
		return
	}

	// Default: line-based wizard on stdin/stdout
	w := wizard.New(svc, os.Stdin, os.Stdout)
	w.SaveAnswersPath = saveAnswersPath
	if answersPath != "" {
		prefill, err := config.LoadAnswers(answersPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
			os.Exit(1)
		}
		w.Prefill = &prefill
	}

	if err := w.Run(); err != nil {
		if errors.IsCancelled(err) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		os.Exit(1)
	}
}

func runTUI(svc *service.Service) {
	model, err := ui.NewWizardModel(svc, wizard.Catalog())
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		os.Exit(1)
	}

	m, ok := final.(*ui.WizardModel)
	if !ok || !m.Completed {
		if ok && m.Cancelled {
			fmt.Println(ui.Warning("Setup cancelled. No files were created."))
		}
		return
	}

	// The alt screen is gone at this point; repeat the outcome inline
	fmt.Println(ui.Success("Metadata files created for " + m.Answers().Name))
	fmt.Println(wizard.Instructions(m.Answers(), svc.Storage().GetBaseDir()))
}
