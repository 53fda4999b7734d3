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
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/convention"
	"github.com/walteh/renamerc/pkg/wildcard"
)

const (
	// DefaultToolName namespaces exported session state keys.
	DefaultToolName = "renamerc"
	// DefaultPrecision is the counter width used when none is configured.
	DefaultPrecision = 2
	// MaxPrecision is the widest supported counter.
	MaxPrecision = 9
)

// 🏷️ Candidate is one allowed prefix or suffix literal. An empty Literal
// means "no decoration required".
type Candidate struct {
	Label   string `json:"label" yaml:"label"`
	Literal string `json:"literal" yaml:"literal"`
}

// 📐 RuleGroup is the naming rule for one sub-domain, such as "Textures/Defaults"
type RuleGroup struct {
	ID          string
	Category    string
	Subcategory string
	Description string

	// ExtensionPatterns are wildcard patterns matched against the item extension
	ExtensionPatterns []string
	// Prefixes and Suffixes are ordered by precedence
	Prefixes []Candidate
	Suffixes []Candidate

	extensions wildcard.Set
	compiled   bool
}

// NewRuleGroup creates a group from a "Category/Subcategory" id and an extension
// list such as ".fbx; .ma, .mb".
func NewRuleGroup(id, extensions, description string, opts wildcard.Options) (*RuleGroup, error) {
	g, err := newGroup(id, description)
	if err != nil {
		return nil, err
	}
	if err := g.SetExtensions(SplitExtensions(extensions), opts); err != nil {
		return nil, err
	}
	return g, nil
}

func newGroup(id, description string) (*RuleGroup, error) {
	parts := strings.Split(id, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, configErrorf(id, "id must have the form Category/Subcategory")
	}
	return &RuleGroup{
		ID:          id,
		Category:    parts[0],
		Subcategory: parts[1],
		Description: description,
	}, nil
}

// SplitExtensions removes spaces, treats ',' like ';' and splits on ';'.
// Empty segments are kept so that compiling reports them.
func SplitExtensions(list string) []string {
	list = strings.ReplaceAll(list, " ", "")
	list = strings.ReplaceAll(list, ",", ";")
	if list == "" {
		return nil
	}
	return strings.Split(list, ";")
}

// SetExtensions replaces and compiles the extension patterns.
func (g *RuleGroup) SetExtensions(patterns []string, opts wildcard.Options) error {
	g.ExtensionPatterns = patterns
	return g.Compile(opts)
}

// Compile compiles the extension patterns. A group without patterns, or with
// an empty or malformed one, is a ConfigurationError.
func (g *RuleGroup) Compile(opts wildcard.Options) error {
	g.compiled = false
	if len(g.ExtensionPatterns) == 0 {
		return configErrorf(g.ID, "no extension patterns")
	}
	set, err := wildcard.CompileSet(g.ExtensionPatterns, opts)
	if err != nil {
		return &ConfigurationError{GroupID: g.ID, Err: errors.Errorf("bad extension list %q: %w", strings.Join(g.ExtensionPatterns, ";"), err)}
	}
	g.extensions = set
	g.compiled = true
	return nil
}

// 🔍 VerifyExtension reports whether ext (with its leading dot) matches one of
// the group's patterns. A group that was never compiled successfully matches
// nothing.
func (g *RuleGroup) VerifyExtension(ext string) bool {
	if !g.compiled {
		return false
	}
	return g.extensions.Match(ext)
}

// DefinePrefix adds a prefix candidate, at the front when priority is set.
func (g *RuleGroup) DefinePrefix(label, literal string, priority bool) {
	g.Prefixes = define(g.Prefixes, Candidate{Label: label, Literal: literal}, priority)
}

// DefineSuffix adds a suffix candidate, at the front when priority is set.
func (g *RuleGroup) DefineSuffix(label, literal string, priority bool) {
	g.Suffixes = define(g.Suffixes, Candidate{Label: label, Literal: literal}, priority)
}

func define(list []Candidate, c Candidate, priority bool) []Candidate {
	if priority {
		return append([]Candidate{c}, list...)
	}
	return append(list, c)
}

// HasPrefix reports whether literal equals one of the prefix candidates.
func (g *RuleGroup) HasPrefix(literal string) bool {
	return hasLiteral(g.Prefixes, literal)
}

// HasSuffix reports whether literal equals one of the suffix candidates.
func (g *RuleGroup) HasSuffix(literal string) bool {
	return hasLiteral(g.Suffixes, literal)
}

func hasLiteral(list []Candidate, literal string) bool {
	for _, c := range list {
		if c.Literal == literal {
			return true
		}
	}
	return false
}

// 📚 Catalog holds every rule group plus the global naming settings
type Catalog struct {
	ToolName        string
	FieldOrder      []Field
	Convention      convention.Convention
	IgnorePatterns  []string
	PrefixPrecision int
	SuffixPrecision int
	// MatchOptions controls case folding for extension and ignore patterns
	MatchOptions wildcard.Options
	// Groups are kept in registration order
	Groups []*RuleGroup

	ignore wildcard.Set
}

// 🏭 New creates an empty catalog with default settings
func New() *Catalog {
	return &Catalog{
		ToolName:        DefaultToolName,
		FieldOrder:      append([]Field(nil), DefaultFieldOrder...),
		Convention:      convention.PascalCase,
		PrefixPrecision: DefaultPrecision,
		SuffixPrecision: DefaultPrecision,
	}
}

// Define returns the group with id, creating and registering it when absent.
// Extensions are appended to an existing group.
func (c *Catalog) Define(id, extensions string) (*RuleGroup, error) {
	if g := c.FindGroupByID(id); g != nil {
		if extra := SplitExtensions(extensions); len(extra) > 0 {
			if err := g.SetExtensions(append(g.ExtensionPatterns, extra...), c.MatchOptions); err != nil {
				return nil, err
			}
		}
		return g, nil
	}

	g, err := NewRuleGroup(id, extensions, "", c.MatchOptions)
	if err != nil {
		return nil, err
	}
	c.Groups = append(c.Groups, g)
	return g, nil
}

// FindGroupByID returns the group with id, or nil.
func (c *Catalog) FindGroupByID(id string) *RuleGroup {
	for _, g := range c.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// FindGroupsByCategory returns the groups of category in registration order.
func (c *Catalog) FindGroupsByCategory(category string) []*RuleGroup {
	var out []*RuleGroup
	for _, g := range c.Groups {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out
}

// FindCandidateOptions concatenates the prefix and suffix candidates of every
// group in category, keeping each group's order.
func (c *Catalog) FindCandidateOptions(category string) (prefixes, suffixes []Candidate) {
	for _, g := range c.FindGroupsByCategory(category) {
		prefixes = append(prefixes, g.Prefixes...)
		suffixes = append(suffixes, g.Suffixes...)
	}
	return prefixes, suffixes
}

// Categories returns the distinct categories in registration order.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, g := range c.Groups {
		if !seen[g.Category] {
			seen[g.Category] = true
			out = append(out, g.Category)
		}
	}
	return out
}

// SetIgnorePatterns replaces and compiles the ignore patterns.
func (c *Catalog) SetIgnorePatterns(patterns []string) error {
	c.IgnorePatterns = patterns
	return c.compileIgnore()
}

func (c *Catalog) compileIgnore() error {
	set, err := wildcard.CompileSet(c.IgnorePatterns, c.MatchOptions)
	if err != nil {
		return &ConfigurationError{Err: errors.Errorf("bad ignore pattern: %w", err)}
	}
	c.ignore = set
	return nil
}

// IsIgnored reports whether directory matches an ignore pattern.
func (c *Catalog) IsIgnored(directory string) bool {
	return c.ignore.Match(directory)
}

// Compile checks global settings and compiles every pattern. It must be called
// after editing patterns or MatchOptions directly.
func (c *Catalog) Compile() error {
	if c.PrefixPrecision < 0 || c.PrefixPrecision > MaxPrecision {
		return configErrorf("", "prefix precision %d out of range 0..%d", c.PrefixPrecision, MaxPrecision)
	}
	if c.SuffixPrecision < 0 || c.SuffixPrecision > MaxPrecision {
		return configErrorf("", "suffix precision %d out of range 0..%d", c.SuffixPrecision, MaxPrecision)
	}
	if !c.Convention.Valid() {
		return configErrorf("", "invalid naming convention %d", int(c.Convention))
	}
	for _, f := range c.FieldOrder {
		if _, ok := fieldNames[f]; !ok {
			return configErrorf("", "invalid field %d in field order", int(f))
		}
	}
	if err := c.compileIgnore(); err != nil {
		return err
	}
	for _, g := range c.Groups {
		if err := g.Compile(c.MatchOptions); err != nil {
			return err
		}
	}
	return nil
}
