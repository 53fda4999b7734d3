// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/renamerc/pkg/convention"
	"github.com/walteh/renamerc/pkg/wildcard"
)

// 📄 Format is a catalog file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", errors.Errorf("unsupported catalog file extension %q", ext)
	}
}

// PatternList accepts either a list of patterns or a single string separated
// by ';' or ','.
type PatternList []string

func splitPatterns(list string) PatternList {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(strings.ReplaceAll(list, ",", ";"), ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PatternList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*p = splitPatterns(value.Value)
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return errors.Errorf("decoding pattern list: %w", err)
	}
	*p = list
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PatternList) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = splitPatterns(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return errors.Errorf("decoding pattern list: %w", err)
	}
	*p = list
	return nil
}

// CandidateSpec is the file form of a prefix or suffix candidate.
type CandidateSpec struct {
	Label    string `json:"label" yaml:"label"`
	Literal  string `json:"literal" yaml:"literal"`
	Priority bool   `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// GroupSpec is the file form of a rule group.
type GroupSpec struct {
	ID          string          `json:"id" yaml:"id"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Extensions  PatternList     `json:"extensions" yaml:"extensions"`
	Prefixes    []CandidateSpec `json:"prefixes,omitempty" yaml:"prefixes,omitempty"`
	Suffixes    []CandidateSpec `json:"suffixes,omitempty" yaml:"suffixes,omitempty"`
}

// 📚 File is the decoded catalog file shared by every format
type File struct {
	ToolName         string      `json:"tool_name,omitempty" yaml:"tool_name,omitempty"`
	FieldOrder       []Field     `json:"field_order,omitempty" yaml:"field_order,omitempty"`
	NamingConvention string      `json:"naming_convention,omitempty" yaml:"naming_convention,omitempty"`
	PrefixPrecision  *int        `json:"prefix_precision,omitempty" yaml:"prefix_precision,omitempty"`
	SuffixPrecision  *int        `json:"suffix_precision,omitempty" yaml:"suffix_precision,omitempty"`
	FoldCase         bool        `json:"fold_case,omitempty" yaml:"fold_case,omitempty"`
	IgnorePatterns   PatternList `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"`
	RuleGroups       []GroupSpec `json:"rule_groups" yaml:"rule_groups"`
}

// 🎯 Load reads and builds a catalog from a file; the format follows the
// file extension.
func Load(ctx context.Context, path string) (*Catalog, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading catalog")

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading catalog file: %w", err)
	}

	cat, err := Parse(ctx, data, format)
	if err != nil {
		return nil, errors.Errorf("loading catalog %s: %w", path, err)
	}
	return cat, nil
}

// 📝 Parse decodes data in the given format and builds the catalog.
func Parse(ctx context.Context, data []byte, format Format) (*Catalog, error) {
	var (
		f   *File
		err error
	)
	switch format {
	case FormatJSON:
		f, err = parseJSON(data)
	case FormatYAML:
		f, err = parseYAML(data)
	case FormatHCL:
		f, err = parseHCL(data)
	default:
		return nil, errors.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, err
	}

	cat, err := f.Build()
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Int("groups", len(cat.Groups)).
		Strs("categories", cat.Categories()).
		Msg("catalog built")

	return cat, nil
}

func parseJSON(data []byte) (*File, error) {
	var f File
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &f, nil
}

func parseYAML(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &f, nil
}

type hclCandidate struct {
	Label    string `hcl:"label,label"`
	Literal  string `hcl:"literal"`
	Priority *bool  `hcl:"priority,optional"`
}

type hclGroup struct {
	ID          string         `hcl:"id,label"`
	Description *string        `hcl:"description,optional"`
	Extensions  []string       `hcl:"extensions"`
	Prefixes    []hclCandidate `hcl:"prefix,block"`
	Suffixes    []hclCandidate `hcl:"suffix,block"`
}

type hclFile struct {
	ToolName         *string    `hcl:"tool_name,optional"`
	FieldOrder       []string   `hcl:"field_order,optional"`
	NamingConvention *string    `hcl:"naming_convention,optional"`
	PrefixPrecision  *int       `hcl:"prefix_precision,optional"`
	SuffixPrecision  *int       `hcl:"suffix_precision,optional"`
	FoldCase         *bool      `hcl:"fold_case,optional"`
	IgnorePatterns   []string   `hcl:"ignore_patterns,optional"`
	RuleGroups       []hclGroup `hcl:"rule_group,block"`
}

func parseHCL(data []byte) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, "catalog.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &raw); diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	f := &File{
		PrefixPrecision: raw.PrefixPrecision,
		SuffixPrecision: raw.SuffixPrecision,
		IgnorePatterns:  raw.IgnorePatterns,
	}
	if raw.ToolName != nil {
		f.ToolName = *raw.ToolName
	}
	if raw.NamingConvention != nil {
		f.NamingConvention = *raw.NamingConvention
	}
	if raw.FoldCase != nil {
		f.FoldCase = *raw.FoldCase
	}
	for _, name := range raw.FieldOrder {
		field, err := ParseField(name)
		if err != nil {
			return nil, errors.Errorf("decoding HCL field_order: %w", err)
		}
		f.FieldOrder = append(f.FieldOrder, field)
	}
	for _, g := range raw.RuleGroups {
		spec := GroupSpec{ID: g.ID, Extensions: g.Extensions}
		if g.Description != nil {
			spec.Description = *g.Description
		}
		spec.Prefixes = fromHCLCandidates(g.Prefixes)
		spec.Suffixes = fromHCLCandidates(g.Suffixes)
		f.RuleGroups = append(f.RuleGroups, spec)
	}
	return f, nil
}

func fromHCLCandidates(in []hclCandidate) []CandidateSpec {
	out := make([]CandidateSpec, 0, len(in))
	for _, c := range in {
		out = append(out, CandidateSpec{
			Label:    c.Label,
			Literal:  c.Literal,
			Priority: c.Priority != nil && *c.Priority,
		})
	}
	return out
}

// 🏗️ Build applies defaults, registers every group and compiles the result.
// Groups sharing an id are merged.
func (f *File) Build() (*Catalog, error) {
	cat := New()
	if f.ToolName != "" {
		cat.ToolName = f.ToolName
	}
	if len(f.FieldOrder) > 0 {
		cat.FieldOrder = append([]Field(nil), f.FieldOrder...)
	}
	if f.NamingConvention != "" {
		conv, err := convention.Parse(f.NamingConvention)
		if err != nil {
			return nil, &ConfigurationError{Err: err}
		}
		cat.Convention = conv
	}
	if f.PrefixPrecision != nil {
		cat.PrefixPrecision = *f.PrefixPrecision
	}
	if f.SuffixPrecision != nil {
		cat.SuffixPrecision = *f.SuffixPrecision
	}
	cat.MatchOptions = wildcard.Options{FoldCase: f.FoldCase}
	cat.IgnorePatterns = append([]string(nil), f.IgnorePatterns...)

	for _, spec := range f.RuleGroups {
		g, err := cat.Define(spec.ID, strings.Join(spec.Extensions, ";"))
		if err != nil {
			return nil, err
		}
		if spec.Description != "" {
			g.Description = spec.Description
		}
		for _, c := range spec.Prefixes {
			g.DefinePrefix(c.Label, c.Literal, c.Priority)
		}
		for _, c := range spec.Suffixes {
			g.DefineSuffix(c.Label, c.Literal, c.Priority)
		}
	}

	if err := cat.Compile(); err != nil {
		return nil, err
	}
	return cat, nil
}

// ToFile converts the catalog back to its file form. Candidates are written
// in precedence order without priority flags.
func (c *Catalog) ToFile() *File {
	pp, sp := c.PrefixPrecision, c.SuffixPrecision
	f := &File{
		ToolName:         c.ToolName,
		FieldOrder:       append([]Field(nil), c.FieldOrder...),
		NamingConvention: c.Convention.String(),
		PrefixPrecision:  &pp,
		SuffixPrecision:  &sp,
		FoldCase:         c.MatchOptions.FoldCase,
		IgnorePatterns:   append(PatternList(nil), c.IgnorePatterns...),
	}
	for _, g := range c.Groups {
		spec := GroupSpec{
			ID:          g.ID,
			Description: g.Description,
			Extensions:  append(PatternList(nil), g.ExtensionPatterns...),
		}
		for _, p := range g.Prefixes {
			spec.Prefixes = append(spec.Prefixes, CandidateSpec{Label: p.Label, Literal: p.Literal})
		}
		for _, s := range g.Suffixes {
			spec.Suffixes = append(spec.Suffixes, CandidateSpec{Label: s.Label, Literal: s.Literal})
		}
		f.RuleGroups = append(f.RuleGroups, spec)
	}
	return f
}
