package scopes

import (
	"slices"
	"strings"
)

// GetScopesByGroup returns all scopes for a given role group
func GetScopesByGroup(group string) []string {
	if scopes, exists := ScopeGroups[group]; exists {
		return scopes
	}
	return []string{}
}

// GetScopeDescription returns the description for a given scope
func GetScopeDescription(scope string) string {
	if desc, exists := ScopeDescriptions[scope]; exists {
		return desc
	}
	return "No description available"
}

// GetAllScopes returns all defined scopes
func GetAllScopes() []string {
	allScopes := []string{}
	for _, scopes := range ScopeCategories {
		allScopes = append(allScopes, scopes...)
	}
	return allScopes
}

// ValidateScope checks if a scope is valid
func ValidateScope(scope string) bool {
	if scope == ScopeAll {
		return true
	}

	for _, scopes := range ScopeCategories {
		if slices.Contains(scopes, scope) {
			return true
		}
	}
	return false
}

// GetScopeCategory returns the category of a scope
func GetScopeCategory(scope string) string {
	for category, scopes := range ScopeCategories {
		if slices.Contains(scopes, scope) {
			return category
		}
	}
	return "Unknown"
}

// ValidateGroup checks if a role group exists
func ValidateGroup(group string) bool {
	_, exists := ScopeGroups[group]
	return exists
}

// ExpandWildcardScope expands a wildcard scope to all matching scopes
// e.g., "interviews:*" -> ["interviews:read", "interviews:write", ...]
func ExpandWildcardScope(wildcardScope string) []string {
	if wildcardScope == ScopeAll {
		return GetAllScopes()
	}

	if !strings.HasSuffix(wildcardScope, ":*") {
		return []string{wildcardScope}
	}

	prefix := strings.TrimSuffix(wildcardScope, ":*")
	expanded := []string{}

	for _, scopes := range ScopeCategories {
		for _, scope := range scopes {
			if strings.HasPrefix(scope, prefix+":") {
				expanded = append(expanded, scope)
			}
		}
	}

	return expanded
}
