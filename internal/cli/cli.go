// Package cli provides the headless command-line interface for scripted use.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sfdx-tools/mcp-setup/internal/config"
	"github.com/sfdx-tools/mcp-setup/internal/models"
	"github.com/sfdx-tools/mcp-setup/internal/service"
	"github.com/sfdx-tools/mcp-setup/internal/ui"
)

// CLI provides headless command-line interface functionality
type CLI struct {
	service *service.Service
}

// NewCLI creates a new CLI instance
func NewCLI(svc *service.Service) *CLI {
	return &CLI{service: svc}
}

// ExecuteCommand processes a CLI command and returns the result
func (c *CLI) ExecuteCommand(args []string) error {
	if len(args) == 0 {
		return c.printUsage()
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "list", "ls", "instances":
		return c.listInstances(commandArgs)
	case "new", "create":
		return c.createInstance(commandArgs)
	case "help":
		return c.printUsage()
	default:
		return fmt.Errorf("unknown command '%s', run 'mcp-setup help' for usage", command)
	}
}

// listInstances handles the list command
func (c *CLI) listInstances(args []string) error {
	var filter, format string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--filter":
			if i+1 < len(args) {
				filter = args[i+1]
				i++
			}
		case "--format":
			if i+1 < len(args) {
				format = args[i+1]
				i++
			}
		default:
			return fmt.Errorf("unknown flag '%s' for list", args[i])
		}
	}

	names, err := c.service.FilterInstances(filter)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal instances: %w", err)
		}
		fmt.Println(string(data))
	case "ids", "":
		for _, name := range names {
			fmt.Println(name)
		}
	case "text":
		if len(names) == 0 {
			fmt.Println("No configured instances.")
			return nil
		}
		fmt.Printf("Configured instances (%d):\n", len(names))
		for _, name := range names {
			fmt.Println("  - " + name)
		}
	default:
		return fmt.Errorf("unknown format '%s' (expected text, json, or ids)", format)
	}

	return nil
}

// createInstance handles the new command: fully specified answers from flags
// or an answers file, no prompting.
func (c *CLI) createInstance(args []string) error {
	var answers models.Answers
	var force bool

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--answers":
			if i+1 >= len(args) {
				return fmt.Errorf("--answers requires a file path")
			}
			loaded, err := config.LoadAnswers(args[i+1])
			if err != nil {
				return err
			}
			answers = loaded
			i++
		case "--name":
			if i+1 >= len(args) {
				return fmt.Errorf("--name requires a value")
			}
			answers.Name = args[i+1]
			i++
		case "--server-url":
			if i+1 >= len(args) {
				return fmt.Errorf("--server-url requires a value")
			}
			answers.ServerURL = args[i+1]
			i++
		case "--auth-url":
			if i+1 >= len(args) {
				return fmt.Errorf("--auth-url requires a value")
			}
			answers.AuthURL = args[i+1]
			i++
		case "--namespace":
			if i+1 >= len(args) {
				return fmt.Errorf("--namespace requires a value")
			}
			answers.Namespace = args[i+1]
			i++
		case "--force":
			force = true
		default:
			return fmt.Errorf("unknown flag '%s' for new", args[i])
		}
	}

	results, err := c.service.CreateInstanceChecked(answers, force)
	if err != nil {
		return err
	}

	var failed []string
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintln(os.Stderr, ui.Error(fmt.Sprintf("%s: %v", result.Rule.Label, result.Err)))
			failed = append(failed, result.Rule.Label)
			continue
		}
		fmt.Println(ui.Success(fmt.Sprintf("%s → %s", result.Rule.Label, result.DestPath)))
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed rules: %s", strings.Join(failed, ", "))
	}
	return nil
}

func (c *CLI) printUsage() error {
	fmt.Println(`mcp-setup commands:

  list, ls, instances    List configured instances
    --filter <query>     Fuzzy-filter instance names
    --format <fmt>       Output format: text, json, ids (default: ids)

  new, create            Create an instance without prompting
    --name <name>        Integration name
    --server-url <url>   MCP server URL
    --auth-url <url>     Auth provider URL
    --namespace <ns>     Managed-package namespace (optional)
    --answers <file>     Load answers from a YAML file
    --force              Overwrite existing instance files

  help                   Show this help`)
	return nil
}
