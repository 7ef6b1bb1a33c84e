package models

import "path/filepath"

// FileRule describes one metadata artifact: where its template lives and how
// the destination file name is derived from the instance name.
type FileRule struct {
	Label        string // Human-readable artifact type for status output
	Dir          string // Directory name under the metadata root
	TemplateFile string // Fixed template file name inside Dir
	DestFile     func(name string) string
}

// TemplateBase is the base name shared by all template files. Instance
// scanning excludes it so templates never show up as configured instances.
const TemplateBase = "template"

// ExternalCredentialSuffix is the file suffix the instance scanner matches.
const ExternalCredentialSuffix = ".externalCredential-meta.xml"

// DefaultRules returns the four fixed metadata file rules, in render order.
func DefaultRules() []FileRule {
	return []FileRule{
		{
			Label:        "External Credential",
			Dir:          "externalCredentials",
			TemplateFile: TemplateBase + ExternalCredentialSuffix,
			DestFile: func(name string) string {
				return name + ExternalCredentialSuffix
			},
		},
		{
			Label:        "External Service Registration",
			Dir:          "externalServiceRegistrations",
			TemplateFile: TemplateBase + ".externalServiceRegistration-meta.xml",
			DestFile: func(name string) string {
				return name + ".externalServiceRegistration-meta.xml"
			},
		},
		{
			Label:        "Named Credential",
			Dir:          "namedCredentials",
			TemplateFile: TemplateBase + ".namedCredential-meta.xml",
			DestFile: func(name string) string {
				return name + ".namedCredential-meta.xml"
			},
		},
		{
			Label:        "Permission Set",
			Dir:          "permissionsets",
			TemplateFile: TemplateBase + ".permissionset-meta.xml",
			DestFile: func(name string) string {
				return name + "_Perm_Set.permissionset-meta.xml"
			},
		},
	}
}

// TemplatePath returns the rule's template path under the given root.
func (r FileRule) TemplatePath(root string) string {
	return filepath.Join(root, r.Dir, r.TemplateFile)
}

// DestPath returns the rule's destination path for an instance name.
func (r FileRule) DestPath(root, name string) string {
	return filepath.Join(root, r.Dir, r.DestFile(name))
}

// RenderResult records the outcome of rendering one file rule.
type RenderResult struct {
	Rule     FileRule
	DestPath string
	Skipped  bool  // Template was missing; rule skipped
	Err      error // Non-nil when the rule failed
}
