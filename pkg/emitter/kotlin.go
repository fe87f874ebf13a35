// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package emitter

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/fracta7/recipegen/pkg/defaults"
	"github.com/fracta7/recipegen/pkg/errors"
	"github.com/fracta7/recipegen/pkg/recipe"
)

//go:embed templates/recipes.kt.tmpl
var kotlinTemplate string

var (
	kotlinTmpl = template.Must(template.New("recipes.kt").Parse(kotlinTemplate))

	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Option configures a Kotlin emitter.
type Option func(*Kotlin)

// WithPackage sets the package clause of the generated file.
func WithPackage(pkg string) Option {
	return func(k *Kotlin) {
		k.pkg = strings.TrimSpace(pkg)
	}
}

// WithImport sets the fully qualified recipe model class.
func WithImport(imp string) Option {
	return func(k *Kotlin) {
		k.imp = strings.TrimSpace(imp)
	}
}

// WithFunction sets the name of the generated function.
func WithFunction(name string) Option {
	return func(k *Kotlin) {
		k.function = strings.TrimSpace(name)
	}
}

// Kotlin renders recipes as a Kotlin declaration.
type Kotlin struct {
	pkg      string
	imp      string
	function string
}

// NewKotlin returns an emitter using the defaults package values unless
// overridden.
func NewKotlin(opts ...Option) *Kotlin {
	k := &Kotlin{
		pkg:      defaults.KotlinPackage,
		imp:      defaults.KotlinImport,
		function: defaults.KotlinFunction,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Validate checks that the package, import and function are valid Kotlin names.
func (k *Kotlin) Validate() error {
	if !isQualifiedName(k.pkg) {
		return invalidName("package", k.pkg)
	}
	if !isQualifiedName(k.imp) {
		return invalidName("import", k.imp)
	}
	if !identifierPattern.MatchString(k.function) {
		return invalidName("function", k.function)
	}
	return nil
}

// Model returns the simple class name of the recipe model.
func (k *Kotlin) Model() string {
	return k.imp[strings.LastIndex(k.imp, ".")+1:]
}

type entry struct {
	Result       string
	Quantity     int
	Requirements string
	Kind         string
}

type view struct {
	Package  string
	Import   string
	Function string
	Model    string
	Entries  []entry
}

// Emit renders recipes in order. An empty slice still yields the full
// declaration with an empty list.
func (k *Kotlin) Emit(recipes []*recipe.Recipe) (string, error) {
	if err := k.Validate(); err != nil {
		return "", err
	}

	v := view{
		Package:  k.pkg,
		Import:   k.imp,
		Function: k.function,
		Model:    k.Model(),
		Entries:  make([]entry, 0, len(recipes)),
	}

	for i, r := range recipes {
		if r == nil {
			return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"nil recipe", map[string]any{"index": i})
		}
		v.Entries = append(v.Entries, entry{
			Result:       Quote(r.Result),
			Quantity:     r.Quantity,
			Requirements: mapOfArgs(r.Requirements),
			Kind:         Quote(r.Kind.String()),
		})
	}

	var buf strings.Builder
	if err := kotlinTmpl.Execute(&buf, v); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to render Kotlin template", err)
	}
	return buf.String(), nil
}

// mapOfArgs renders requirements as `"item" to n` pairs in insertion order.
func mapOfArgs(reqs recipe.Requirements) string {
	items := reqs.Items()
	parts := make([]string, 0, len(items))
	for _, req := range items {
		parts = append(parts, Quote(req.Item)+" to "+strconv.Itoa(req.Count))
	}
	return strings.Join(parts, ", ")
}

// Quote returns s as a Kotlin string literal.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '$':
			b.WriteString(`\$`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func isQualifiedName(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if !identifierPattern.MatchString(part) {
			return false
		}
	}
	return true
}

func invalidName(field, value string) error {
	return errors.NewWithContext(errors.ErrCodeInvalidRequest,
		"invalid Kotlin "+field+" name", map[string]any{field: value})
}
