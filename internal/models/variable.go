package models

// Variable represents one configuration value the wizard collects
type Variable struct {
	Key         string              // Token name, e.g. "MCP_NAME"
	Prompt      string              // Short label shown at the input line
	Description string              // Multi-line help text shown above the prompt
	Validate    func(string) error  // Predicate over the raw input line
	ErrorMsg    string              // Message shown when validation fails
	Optional    bool                // Empty input allowed (press Enter to skip)
}

// Answers holds the validated values collected during one wizard run.
// Built field-by-field during collection, read-only afterward.
type Answers struct {
	Name      string // Instance name, used in every destination file name
	ServerURL string // MCP server endpoint URL
	AuthURL   string // OAuth token endpoint URL
	Namespace string // Managed-package namespace, may be empty
}

// Set stores a collected value under its variable key.
func (a *Answers) Set(key, value string) {
	switch key {
	case TokenName:
		a.Name = value
	case TokenServerURL:
		a.ServerURL = value
	case TokenAuthURL:
		a.AuthURL = value
	case TokenNamespace:
		a.Namespace = value
	}
}

// Get returns the collected value for a variable key.
func (a Answers) Get(key string) string {
	switch key {
	case TokenName:
		return a.Name
	case TokenServerURL:
		return a.ServerURL
	case TokenAuthURL:
		return a.AuthURL
	case TokenNamespace:
		return a.Namespace
	case TokenNamespacePrefix:
		return a.NamespacePrefix()
	}
	return ""
}

// NamespacePrefix derives the namespace-prefix token value: empty when no
// namespace was given, otherwise the namespace followed by "__".
func (a Answers) NamespacePrefix() string {
	if a.Namespace == "" {
		return ""
	}
	return a.Namespace + "__"
}
