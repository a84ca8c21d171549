// Package ingest defines the hierarchical dataset reader contract the
// merger-tree builder depends on to pull halo catalogs out of a simulation
// snapshot file. The real reader (an HDF5 binding, most likely) is an
// external collaborator; only the narrow interface and a test double live
// here.
package ingest

import (
	"strings"

	apperrors "github.com/galform/mergertree/pkg/errors"
)

// Dataset is a single named array read from a group.
type Dataset interface {
	Name() string
	Float64() ([]float64, error)
	Int64() ([]int64, error)
}

// Attribute is a single named scalar value attached to a group.
type Attribute interface {
	Name() string
	Float64() (float64, error)
	Int64() (int64, error)
	String() (string, error)
}

// Group is a node in the hierarchical namespace. Dataset, Attribute and
// Group each look up a direct member of the receiver by name; they do not
// split on '/'. ResolveDataset and ResolveAttribute walk a '/'-separated
// path through Group before the final lookup.
type Group interface {
	Dataset(path string) (Dataset, error)
	Attribute(path string) (Attribute, error)
	Group(name string) (Group, error)
}

// splitPath separates a '/'-separated path into its leading group
// components and its final (dataset or attribute) component.
func splitPath(path string) (groups []string, leaf string) {
	parts := strings.Split(path, "/")
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// ResolveDataset walks root through path's group components and returns the
// dataset named by the final component.
func ResolveDataset(root Group, path string) (Dataset, error) {
	groups, leaf := splitPath(path)
	g, err := descend(root, groups)
	if err != nil {
		return nil, err
	}
	return g.Dataset(leaf)
}

// ResolveAttribute walks root through path's group components and returns
// the attribute named by the final component.
func ResolveAttribute(root Group, path string) (Attribute, error) {
	groups, leaf := splitPath(path)
	g, err := descend(root, groups)
	if err != nil {
		return nil, err
	}
	return g.Attribute(leaf)
}

func descend(root Group, groups []string) (Group, error) {
	current := root
	for _, name := range groups {
		next, err := current.Group(name)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeInvalidData, "group not found while resolving path: "+name, err)
		}
		current = next
	}
	return current, nil
}
