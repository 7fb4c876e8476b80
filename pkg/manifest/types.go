// Package manifest loads and runs declarative check-suite documents: YAML
// files declaring resource instances and the properties expected of them,
// evaluated through the generated verification entry points.
package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hostspec/hostspec/pkg/verify"
)

// Reserved declaration keys. Everything else in a declaration mapping is a
// declared check.
const (
	keyResource = "resource"
	keyName     = "name"
	keyBackend  = "backend"
)

// Suite is a parsed check-suite document. Declarations keep document order.
type Suite struct {
	Name         string
	Declarations []Declaration
}

// Declaration declares one resource instance and the checks to verify
// against it.
type Declaration struct {
	// ID is the declaration's document key, used in reports.
	ID string
	// Resource is the snake_case resource type name.
	Resource string
	// Subject is the resource's subject name (the "name" key).
	Subject string
	// Backend optionally overrides the backend selector for this declaration.
	Backend string
	// Checks holds the declared member expectations in document order.
	Checks []verify.DeclaredCheck
}

// suiteDoc is the raw document shape. Checks stays a yaml.Node so the
// declaration order and each declaration's member order survive parsing.
type suiteDoc struct {
	Suite  string            `yaml:"suite"`
	Vars   map[string]string `yaml:"vars"`
	Checks yaml.Node         `yaml:"checks"`
}

// decodeSuite walks the raw document into an ordered Suite.
func decodeSuite(doc suiteDoc) (Suite, error) {
	suite := Suite{Name: doc.Suite}

	// An absent checks key leaves a zero node; an explicit empty `checks:`
	// parses as a null scalar. Both mean no declarations.
	if doc.Checks.Kind == 0 || doc.Checks.Tag == "!!null" {
		return suite, nil
	}
	if doc.Checks.Kind != yaml.MappingNode {
		return suite, fmt.Errorf("checks must be a mapping of declarations")
	}

	// A mapping node's content alternates key, value.
	for i := 0; i+1 < len(doc.Checks.Content); i += 2 {
		id := doc.Checks.Content[i].Value
		decl, err := decodeDeclaration(id, doc.Checks.Content[i+1])
		if err != nil {
			return suite, err
		}
		suite.Declarations = append(suite.Declarations, decl)
	}
	return suite, nil
}

func decodeDeclaration(id string, node *yaml.Node) (Declaration, error) {
	if node.Kind != yaml.MappingNode {
		return Declaration{}, fmt.Errorf("declaration %s must be a mapping", id)
	}

	decl := Declaration{ID: id}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		valNode := node.Content[i+1]

		switch key {
		case keyResource:
			if err := valNode.Decode(&decl.Resource); err != nil {
				return decl, fmt.Errorf("declaration %s: resource: %w", id, err)
			}
		case keyName:
			if err := valNode.Decode(&decl.Subject); err != nil {
				return decl, fmt.Errorf("declaration %s: name: %w", id, err)
			}
		case keyBackend:
			if err := valNode.Decode(&decl.Backend); err != nil {
				return decl, fmt.Errorf("declaration %s: backend: %w", id, err)
			}
		default:
			var v any
			if err := valNode.Decode(&v); err != nil {
				return decl, fmt.Errorf("declaration %s: %s: %w", id, key, err)
			}
			decl.Checks = append(decl.Checks, verify.DeclaredCheck{Name: key, Expectation: v})
		}
	}
	return decl, nil
}
