// Package templates renders the Swift sources and XIB layout that make up a
// generated VIPER module.
package templates

import "time"

// Params are the invocation inputs for one generator run.
type Params struct {
	// ModuleName is the type-name prefix of every generated declaration (e.g., "Home").
	ModuleName string

	// AppName is the application name written into each file header.
	AppName string

	// Author is the name written into the "Created by" and copyright lines.
	Author string
}

// DateLayouts are the Go time layouts used for the header dates.
type DateLayouts struct {
	// Long formats the "Created by ... on <date>" value.
	Long string

	// Year formats the copyright year.
	Year string
}

// Default date layouts.
const (
	DefaultLongLayout = "2006-01-02"
	DefaultYearLayout = "2006"
)

// DefaultDateLayouts returns the layouts used when none are configured.
func DefaultDateLayouts() DateLayouts {
	return DateLayouts{
		Long: DefaultLongLayout,
		Year: DefaultYearLayout,
	}
}

// Context is the data passed to every template.
type Context struct {
	Params

	// Date is the long date, formatted once per run.
	Date string

	// Year is the copyright year, formatted once per run.
	Year string

	// FileName is the name of the file being rendered. Set per artifact.
	FileName string
}

// NewContext formats now with layouts and returns the render context.
// Empty layouts fall back to the defaults.
func NewContext(p Params, now time.Time, layouts DateLayouts) Context {
	if layouts.Long == "" {
		layouts.Long = DefaultLongLayout
	}
	if layouts.Year == "" {
		layouts.Year = DefaultYearLayout
	}

	return Context{
		Params: p,
		Date:   now.Format(layouts.Long),
		Year:   now.Format(layouts.Year),
	}
}

// Artifact is a rendered file ready to be written.
type Artifact struct {
	// Kind identifies which template produced the artifact.
	Kind Kind

	// FileName is the module name plus the kind's suffix (e.g., "HomeWireframe.swift").
	FileName string

	// Content is the rendered text.
	Content []byte
}
