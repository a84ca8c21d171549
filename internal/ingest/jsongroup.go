package ingest

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonGroup is a Group backed by a decoded JSON object: nested objects are
// subgroups, arrays are datasets, and scalars are attributes. It exists for
// local testing and small catalogs without a real HDF5 binding: one concrete
// filesystem-backed implementation alongside the narrow interface a
// production HDF5 binding would satisfy.
type jsonGroup struct {
	data map[string]interface{}
}

// LoadJSONGroup reads path as a JSON document and returns its root as a
// Group.
func LoadJSONGroup(path string) (Group, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return &jsonGroup{data: data}, nil
}

func (g *jsonGroup) Group(name string) (Group, error) {
	v, ok := g.data[name]
	if !ok {
		return nil, fmt.Errorf("group %q not found", name)
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%q is not a group", name)
	}
	return &jsonGroup{data: m}, nil
}

func (g *jsonGroup) Dataset(name string) (Dataset, error) {
	v, ok := g.data[name]
	if !ok {
		return nil, fmt.Errorf("dataset %q not found", name)
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%q is not a dataset", name)
	}
	return &jsonDataset{name: name, values: arr}, nil
}

func (g *jsonGroup) Attribute(name string) (Attribute, error) {
	v, ok := g.data[name]
	if !ok {
		return nil, fmt.Errorf("attribute %q not found", name)
	}
	return &jsonAttribute{name: name, value: v}, nil
}

type jsonDataset struct {
	name   string
	values []interface{}
}

func (d *jsonDataset) Name() string { return d.name }

func (d *jsonDataset) Float64() ([]float64, error) {
	out := make([]float64, len(d.values))
	for i, v := range d.values {
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("dataset %q element %d is not numeric", d.name, i)
		}
		out[i] = f
	}
	return out, nil
}

func (d *jsonDataset) Int64() ([]int64, error) {
	out := make([]int64, len(d.values))
	for i, v := range d.values {
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("dataset %q element %d is not numeric", d.name, i)
		}
		out[i] = int64(f)
	}
	return out, nil
}

type jsonAttribute struct {
	name  string
	value interface{}
}

func (a *jsonAttribute) Name() string { return a.name }

func (a *jsonAttribute) Float64() (float64, error) {
	f, ok := a.value.(float64)
	if !ok {
		return 0, fmt.Errorf("attribute %q is not numeric", a.name)
	}
	return f, nil
}

func (a *jsonAttribute) Int64() (int64, error) {
	f, ok := a.value.(float64)
	if !ok {
		return 0, fmt.Errorf("attribute %q is not numeric", a.name)
	}
	return int64(f), nil
}

func (a *jsonAttribute) String() (string, error) {
	s, ok := a.value.(string)
	if !ok {
		return "", fmt.Errorf("attribute %q is not a string", a.name)
	}
	return s, nil
}
