package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/types"
)

// Report is the public surface of a single package.
type Report struct {
	// Name is the package name, which is not part of the encoded report.
	Name string `json:"-"`

	Functions  []string            `json:"functions"`
	Classes    map[string][]string `json:"classes"`
	Constants  []string            `json:"constants"`
	Submodules []string            `json:"submodules"`
}

// NewReport returns a Report whose collections are empty rather than nil,
// so that it encodes as [] and {} instead of null.
func NewReport() *Report {
	return &Report{
		Functions:  []string{},
		Classes:    map[string][]string{},
		Constants:  []string{},
		Submodules: []string{},
	}
}

// TypeCount returns the number of types in the report.
func (r *Report) TypeCount() int { return len(r.Classes) }

// LoadedPackage is a package as returned by a PackageLoader.
type LoadedPackage struct {
	Path     string
	Name     string
	Dir      string
	Files    []string
	Types    *types.Package
	Children []string
	Errors   []string
}

// SkipReason says why a name was left out of a report.
type SkipReason string

const (
	SkipUnexported SkipReason = "unexported"
	SkipInvalid    SkipReason = "invalid"
	SkipFiltered   SkipReason = "filtered"
	SkipCapped     SkipReason = "capped"
)

// Category is the bucket an accepted name lands in.
type Category string

const (
	CategoryFunction  Category = "function"
	CategoryType      Category = "type"
	CategoryConstant  Category = "constant"
	CategorySubmodule Category = "submodule"
	CategoryMember    Category = "member"
)

// Outcome records what happened to one name during classification.
// Exactly one of Category and Skip is set.
type Outcome struct {
	Name     string     `json:"name"`
	Owner    string     `json:"owner,omitempty"`
	Category Category   `json:"category,omitempty"`
	Skip     SkipReason `json:"skip,omitempty"`
}

func (o Outcome) Skipped() bool { return o.Skip != "" }

// Result maps import paths to reports, keeping the order in which paths
// were first added.
type Result struct {
	order   []string
	reports map[string]*Report
}

func NewResult() *Result {
	return &Result{reports: make(map[string]*Report)}
}

// Set stores r under path. Re-setting an existing path replaces the report
// but keeps its original position.
func (res *Result) Set(path string, r *Report) {
	if res.reports == nil {
		res.reports = make(map[string]*Report)
	}
	if _, ok := res.reports[path]; !ok {
		res.order = append(res.order, path)
	}
	res.reports[path] = r
}

func (res *Result) Get(path string) (*Report, bool) {
	r, ok := res.reports[path]
	return r, ok
}

func (res *Result) Paths() []string {
	out := make([]string, len(res.order))
	copy(out, res.order)
	return out
}

func (res *Result) Len() int { return len(res.order) }

// MarshalJSON encodes the result as a JSON object in insertion order.
func (res *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, path := range res.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(path)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(res.reports[path])
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", path, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, recording key order as it goes.
func (res *Result) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	*res = Result{reports: make(map[string]*Report)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		path, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", tok)
		}
		r := NewReport()
		if err := dec.Decode(r); err != nil {
			return fmt.Errorf("decoding %s: %w", path, err)
		}
		res.Set(path, r)
	}
	_, err = dec.Token()
	return err
}
