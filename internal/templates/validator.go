package templates

import (
	"fmt"
	"regexp"
	"strings"
)

// Swift identifier validation regex (ASCII subset).
// Swift identifiers must start with a letter or underscore and contain only letters, digits, and underscores.
var swiftIdentifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ValidateSwiftIdentifier checks if a string can prefix Swift type names.
func ValidateSwiftIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if !swiftIdentifierRegex.MatchString(name) {
		return fmt.Errorf("invalid Swift identifier %q: must start with a letter or underscore and contain only letters, digits, and underscores", name)
	}

	if isReservedWord(name) {
		return fmt.Errorf("invalid Swift identifier %q: cannot use reserved word", name)
	}

	return nil
}

// ValidateFileComponent checks if a module name is safe to use as a file name prefix.
func ValidateFileComponent(name string) error {
	if name == "" {
		return fmt.Errorf("module name cannot be empty")
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("module name %q contains a path separator", name)
	}

	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("module name %q contains a NUL byte", name)
	}

	return nil
}

// CheckParams returns a description of every problem found in p.
// Problems never block generation.
func CheckParams(p Params) []string {
	var problems []string

	if err := ValidateSwiftIdentifier(p.ModuleName); err != nil {
		problems = append(problems, err.Error())
	}
	if err := ValidateFileComponent(p.ModuleName); err != nil {
		problems = append(problems, err.Error())
	}
	if p.AppName == "" {
		problems = append(problems, "app name is empty")
	}
	if p.Author == "" {
		problems = append(problems, "author name is empty")
	}

	return problems
}

// isReservedWord checks if a name is a Swift keyword that cannot be used bare.
func isReservedWord(name string) bool {
	reserved := map[string]bool{
		"_":              true,
		"as":             true,
		"associatedtype": true,
		"break":          true,
		"case":           true,
		"catch":          true,
		"class":          true,
		"continue":       true,
		"default":        true,
		"defer":          true,
		"deinit":         true,
		"do":             true,
		"else":           true,
		"enum":           true,
		"extension":      true,
		"fallthrough":    true,
		"false":          true,
		"fileprivate":    true,
		"for":            true,
		"func":           true,
		"guard":          true,
		"if":             true,
		"import":         true,
		"in":             true,
		"init":           true,
		"inout":          true,
		"internal":       true,
		"is":             true,
		"let":            true,
		"nil":            true,
		"open":           true,
		"operator":       true,
		"private":        true,
		"protocol":       true,
		"public":         true,
		"repeat":         true,
		"rethrows":       true,
		"return":         true,
		"self":           true,
		"Self":           true,
		"static":         true,
		"struct":         true,
		"subscript":      true,
		"super":          true,
		"switch":         true,
		"throw":          true,
		"throws":         true,
		"true":           true,
		"try":            true,
		"typealias":      true,
		"var":            true,
		"where":          true,
		"while":          true,
	}
	return reserved[name]
}
