package wizard

import (
	"github.com/sfdx-tools/mcp-setup/internal/models"
	"github.com/sfdx-tools/mcp-setup/internal/validation"
)

// Catalog returns the ordered list of variables the wizard collects. The
// order is both the display order and the collection order.
func Catalog() []models.Variable {
	return []models.Variable{
		{
			Key:    models.TokenName,
			Prompt: "Integration name",
			Description: "API name for this MCP server integration. Used in every\n" +
				"generated file name and metadata label.",
			Validate: validation.Identifier,
			ErrorMsg: "Name must start with a letter and contain only letters, digits, and underscores.",
		},
		{
			Key:    models.TokenServerURL,
			Prompt: "MCP server URL",
			Description: "Endpoint of the MCP server, e.g.\n" +
				"https://mcp.example.com/api",
			Validate: validation.URL,
			ErrorMsg: "Server URL must start with http:// or https://.",
		},
		{
			Key:    models.TokenAuthURL,
			Prompt: "Auth provider URL",
			Description: "OAuth token endpoint of the authentication provider, e.g.\n" +
				"https://auth.example.com/oauth/token",
			Validate: validation.URL,
			ErrorMsg: "Auth provider URL must start with http:// or https://.",
		},
		{
			Key:    models.TokenNamespace,
			Prompt: "Package namespace",
			Description: "Managed-package namespace, if the metadata is deployed\n" +
				"inside one. Leave empty for an unmanaged deployment.",
			Validate: validation.OptionalNamespace,
			ErrorMsg: "Namespace must start with a letter and contain only letters, digits, and underscores.",
			Optional: true,
		},
	}
}
