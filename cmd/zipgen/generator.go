// Copyright 2025 go-highway Authors
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

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"
)

// memberNames names zip members; it bounds the supported arity.
const memberNames = "abcdefghijklm"

// member is one zipped stream: Var names the struct field and argument,
// Type the type parameter and tuple field.
type member struct {
	Var  string
	Type string
}

// arity is the template data for one fixed member count.
type arity struct {
	N       int
	Members []member
}

func newArity(n int) arity {
	return arity{
		N: n,
		Members: lo.Map(lo.Range(n), func(i, _ int) member {
			name := memberNames[i : i+1]
			return member{Var: name, Type: strings.ToUpper(name)}
		}),
	}
}

func (a arity) Tuple() string       { return fmt.Sprintf("Tuple%d", a.N) }
func (a arity) Zip() string         { return fmt.Sprintf("Zip%d", a.N) }
func (a arity) Leader() member      { return a.Members[0] }
func (a arity) Followers() []member { return a.Members[1:] }

// Params is the type parameter list without constraints: "A, B, C".
func (a arity) Params() string {
	return a.join(func(m member) string { return m.Type })
}

// Decl is the type parameter declaration: "A, B, C any".
func (a arity) Decl() string { return a.Params() + " any" }

// Same repeats T once per member: "T, T, T".
func (a arity) Same() string {
	return a.join(func(member) string { return "T" })
}

// Args is the tuple constructor argument list: "a A, b B".
func (a arity) Args() string {
	return a.join(func(m member) string { return m.Var + " " + m.Type })
}

// ZipArgs is the zip constructor argument list: "a Zippable[A], b Zippable[B]".
func (a arity) ZipArgs() string {
	return a.join(func(m member) string { return fmt.Sprintf("%s Zippable[%s]", m.Var, m.Type) })
}

// Selectors lists the tuple fields behind prefix: "t.A, t.B".
func (a arity) Selectors(prefix string) string {
	return a.join(func(m member) string { return prefix + m.Type })
}

// Calls lists a method call on every member: "z.a.ScalarPos(), z.b.ScalarPos()".
func (a arity) Calls(prefix, call string) string {
	return a.join(func(m member) string { return prefix + m.Var + "." + call })
}

func (a arity) join(f func(member) string) string {
	return strings.Join(lo.Map(a.Members, func(m member, _ int) string { return f(m) }), ", ")
}

// Generator renders the zip engines for a range of arities.
type Generator struct {
	Config Config
	Logger *slog.Logger
}

// Render returns the formatted source of the generated file.
func (g *Generator) Render() ([]byte, error) {
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}

	arities := lo.Map(lo.RangeFrom(g.Config.MinArity, g.Config.MaxArity-g.Config.MinArity+1),
		func(n, _ int) arity { return newArity(n) })

	var buf bytes.Buffer
	data := struct {
		Package string
		Arities []arity
	}{g.Config.Package, arities}
	if err := zipTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	for _, a := range arities {
		g.logger().Debug("rendered arity", "zip", a.Zip(), "members", a.N)
	}

	src, err := imports.Process(g.Config.Output, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

// Run renders the file and writes it to Config.Output.
func (g *Generator) Run() error {
	src, err := g.Render()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(g.Config.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(g.Config.Output, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.Config.Output, err)
	}
	g.logger().Info("generated zip engines",
		"output", g.Config.Output,
		"package", g.Config.Package,
		"min", g.Config.MinArity,
		"max", g.Config.MaxArity,
		"bytes", len(src),
	)
	return nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// declNames lists the top-level declarations of src in source order,
// methods as Recv.Name.
func declNames(src []byte) ([]string, error) {
	file, err := parser.ParseFile(token.NewFileSet(), "zip.gen.go", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse generated code: %w", err)
	}

	var names []string
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names = append(names, d.Name.Name)
				continue
			}
			names = append(names, recvName(d.Recv.List[0].Type)+"."+d.Name.Name)
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					names = append(names, ts.Name.Name)
				}
			}
		}
	}
	return names, nil
}

func recvName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return recvName(e.X)
	case *ast.IndexExpr:
		return recvName(e.X)
	case *ast.IndexListExpr:
		return recvName(e.X)
	case *ast.Ident:
		return e.Name
	}
	return ""
}
