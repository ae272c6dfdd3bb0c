// Package inflect converts English words between singular and plural and
// between naming conventions (PascalCase, camelCase, snake_case, titles).
//
// Rules are regular expressions tried from the most recently added to the
// oldest; the first one that matches wins. The package-level functions use a
// shared [Inflector] loaded with the embedded English rules.
package inflect

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/amp-labs/amp-toolkit/assert"
	errors2 "github.com/amp-labs/amp-toolkit/errors"
	"gopkg.in/yaml.v3"
)

//go:embed english.yaml
var englishRules string

// ErrInvalidRule is returned for rules whose pattern doesn't compile or whose
// words are empty.
var ErrInvalidRule = fmt.Errorf("%w: invalid inflection rule", errors2.ErrInvalidArgument)

// "$1" followed by letters would name a group "1es" in Go's syntax.
var numberedGroup = regexp.MustCompile(`\$(\d+)`)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

func newRule(pattern, replacement string) (rule, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return rule{}, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}

	return rule{
		pattern:     re,
		replacement: numberedGroup.ReplaceAllString(replacement, "$${$1}"),
	}, nil
}

func (r rule) apply(word string) (string, bool) {
	if !r.pattern.MatchString(word) {
		return "", false
	}

	return r.pattern.ReplaceAllString(word, r.replacement), true
}

// Inflector holds a rule set. It is safe for concurrent use.
type Inflector struct {
	mu           sync.RWMutex
	plurals      []rule
	singulars    []rule
	uncountables map[string]struct{}
}

// New returns an Inflector with no rules.
func New() *Inflector {
	return &Inflector{uncountables: make(map[string]struct{})}
}

// NewEnglish returns an Inflector loaded with the default English rules.
func NewEnglish() *Inflector {
	in := New()
	assert.NoError(in.LoadRules(strings.NewReader(englishRules)), "embedded english rules")

	return in
}

var defaultInflector = sync.OnceValue(NewEnglish) //nolint:gochecknoglobals

// Default returns the shared English Inflector used by the package-level
// functions. Rules added to it affect every caller.
func Default() *Inflector {
	return defaultInflector()
}

// AddPlural adds a singular-to-plural rule. replacement may refer to groups
// as $1, $2 and so on.
func (in *Inflector) AddPlural(pattern, replacement string) error {
	r, err := newRule(pattern, replacement)
	if err != nil {
		return err
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	in.plurals = append(in.plurals, r)

	return nil
}

// AddSingular adds a plural-to-singular rule.
func (in *Inflector) AddSingular(pattern, replacement string) error {
	r, err := newRule(pattern, replacement)
	if err != nil {
		return err
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	in.singulars = append(in.singulars, r)

	return nil
}

// AddIrregular adds a pair of words that don't follow the rules, such as
// person/people. The case of the first letter is preserved, and only the
// singular's first letter is carried over, so both words must share it.
func (in *Inflector) AddIrregular(singular, plural string) error {
	if singular == "" || plural == "" {
		return fmt.Errorf("%w: irregular %q/%q", ErrInvalidRule, singular, plural)
	}

	if err := in.AddPlural(irregularRule(singular, plural)); err != nil {
		return err
	}

	return in.AddSingular(irregularRule(plural, singular))
}

func irregularRule(from, to string) (string, string) {
	fromHead, fromTail := splitFirst(from)
	_, toTail := splitFirst(to)

	return "(" + regexp.QuoteMeta(fromHead) + ")" + regexp.QuoteMeta(fromTail) + "$", "$1" + toTail
}

// AddUncountable adds a word that is the same in singular and plural.
func (in *Inflector) AddUncountable(word string) {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.uncountables[strings.ToLower(word)] = struct{}{}
}

// Pluralize returns the plural form of word.
func (in *Inflector) Pluralize(word string) string {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return in.apply(in.plurals, word)
}

// Singularize returns the singular form of word.
func (in *Inflector) Singularize(word string) string {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return in.apply(in.singulars, word)
}

func (in *Inflector) apply(rules []rule, word string) string {
	if _, ok := in.uncountables[strings.ToLower(word)]; ok {
		return word
	}

	for _, r := range slices.Backward(rules) {
		if result, ok := r.apply(word); ok {
			return result
		}
	}

	return word
}

// RuleSet is the YAML form accepted by LoadRules.
//
//	plurals:
//	  - { pattern: "(quiz)$", replacement: "$1zes" }
//	singulars:
//	  - { pattern: "(quiz)zes$", replacement: "$1" }
//	irregulars:
//	  - { singular: person, plural: people }
//	uncountables: [sheep]
type RuleSet struct {
	Plurals      []Replacement `yaml:"plurals"`
	Singulars    []Replacement `yaml:"singulars"`
	Irregulars   []Irregular   `yaml:"irregulars"`
	Uncountables []string      `yaml:"uncountables"`
}

// Replacement is a pattern rule for plurals or singulars.
type Replacement struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Irregular is a singular/plural pair that bypasses the rules.
type Irregular struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
}

// LoadRules reads a YAML RuleSet and adds its rules in document order:
// plurals, singulars, irregulars, then uncountables. Rules already present
// are kept, so loaded rules take precedence over them. Nothing is added if
// any rule is invalid.
func (in *Inflector) LoadRules(r io.Reader) error {
	var set RuleSet

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}

	staged := New()

	for _, p := range set.Plurals {
		if err := staged.AddPlural(p.Pattern, p.Replacement); err != nil {
			return err
		}
	}

	for _, s := range set.Singulars {
		if err := staged.AddSingular(s.Pattern, s.Replacement); err != nil {
			return err
		}
	}

	for _, irr := range set.Irregulars {
		if err := staged.AddIrregular(irr.Singular, irr.Plural); err != nil {
			return err
		}
	}

	for _, word := range set.Uncountables {
		staged.AddUncountable(word)
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	in.plurals = append(in.plurals, staged.plurals...)
	in.singulars = append(in.singulars, staged.singulars...)

	for word := range staged.uncountables {
		in.uncountables[word] = struct{}{}
	}

	return nil
}

// Pluralize uses the Default inflector.
func Pluralize(word string) string {
	return Default().Pluralize(word)
}

// Singularize uses the Default inflector.
func Singularize(word string) string {
	return Default().Singularize(word)
}
