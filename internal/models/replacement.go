package models

// Token strings replaced literally in template bodies. They are chosen so
// that no token is a substring of a plausible replacement value; the only
// overlap in the set itself is TokenNamespacePrefix containing TokenNamespace,
// which Replacements resolves by applying the longer token first.
const (
	TokenName            = "MCP_NAME"
	TokenServerURL       = "MCP_SERVER_URL"
	TokenAuthURL         = "AUTH_PROVIDER_URL"
	TokenNamespace       = "NAMESPACE"
	TokenNamespacePrefix = "NAMESPACE_PREFIX"
)

// Replacement is one literal token substitution applied to template content.
type Replacement struct {
	Token string
	Value string
}

// Replacements derives the ordered substitution list for a set of answers.
// Application order is significant: NAMESPACE_PREFIX must be replaced before
// NAMESPACE, since the latter is a prefix of the former.
func (a Answers) Replacements() []Replacement {
	return []Replacement{
		{Token: TokenName, Value: a.Name},
		{Token: TokenServerURL, Value: a.ServerURL},
		{Token: TokenAuthURL, Value: a.AuthURL},
		{Token: TokenNamespacePrefix, Value: a.NamespacePrefix()},
		{Token: TokenNamespace, Value: a.Namespace},
	}
}
