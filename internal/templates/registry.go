package templates

import (
	"fmt"
	"strings"
)

// Kind identifies one of the generated artifacts.
type Kind string

const (
	// Wireframe builds the module's object graph and exposes its view controller.
	Wireframe Kind = "wireframe"

	// DataManager is the empty data-manager protocol.
	DataManager Kind = "data-manager"

	// Interactor holds business logic and depends on the data manager.
	Interactor Kind = "interactor"

	// Presenter mediates between the interactor and the view controller.
	Presenter Kind = "presenter"

	// ViewController is the UIKit screen.
	ViewController Kind = "view-controller"

	// Layout is the XIB document for the view controller.
	Layout Kind = "layout"
)

// Spec describes how an artifact kind is rendered and named.
type Spec struct {
	// Kind is the artifact identifier.
	Kind Kind

	// Suffix is appended to the module name to form the file name.
	Suffix string

	// Template is the name of the embedded template.
	Template string

	// Description is shown next to the file in the generation summary.
	Description string
}

// specs lists every artifact in write order.
var specs = []Spec{
	{Kind: Wireframe, Suffix: "Wireframe.swift", Template: "Wireframe.swift.tmpl", Description: "Wireframe and module delegate"},
	{Kind: DataManager, Suffix: "DataManager.swift", Template: "DataManager.swift.tmpl", Description: "Data manager protocol"},
	{Kind: Interactor, Suffix: "Interactor.swift", Template: "Interactor.swift.tmpl", Description: "Interactor"},
	{Kind: Presenter, Suffix: "Presenter.swift", Template: "Presenter.swift.tmpl", Description: "Presenter"},
	{Kind: ViewController, Suffix: "ViewController.swift", Template: "ViewController.swift.tmpl", Description: "View controller"},
	{Kind: Layout, Suffix: "ViewController.xib", Template: "ViewController.xib.tmpl", Description: "View controller layout"},
}

// Get returns the spec for a kind.
func Get(kind Kind) (Spec, error) {
	for _, s := range specs {
		if s.Kind == kind {
			return s, nil
		}
	}
	return Spec{}, fmt.Errorf("unknown artifact kind %q; valid kinds: %s", kind, strings.Join(KindNames(), ", "))
}

// KindNames returns all kind names in write order.
func KindNames() []string {
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, string(s.Kind))
	}
	return names
}

// FileName returns the file name for the kind in module moduleName.
func (s Spec) FileName(moduleName string) string {
	return moduleName + s.Suffix
}

// FileNames returns the six file names for moduleName in write order.
func FileNames(moduleName string) []string {
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.FileName(moduleName))
	}
	return names
}
