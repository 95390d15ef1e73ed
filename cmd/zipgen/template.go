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

import "text/template"

// zipTemplate describes the zip engine once, for any arity. Member 0 is
// the leader; .Followers are members 1..N-1.
var zipTemplate = template.Must(template.New("zip").Parse(`// Code generated by zipgen. DO NOT EDIT.

package {{.Package}}
{{range .Arities}}
// {{.Tuple}} is a group of {{.N}} values, one per zipped stream.
type {{.Tuple}}[{{.Decl}}] struct {
{{- range .Members}}
	{{.Type}} {{.Type}}
{{- end}}
}

// T{{.N}} builds a {{.Tuple}}.
func T{{.N}}[{{.Decl}}]({{.Args}}) {{.Tuple}}[{{.Params}}] {
	return {{.Tuple}}[{{.Params}}]{
{{- range .Members}}
		{{.Type}}: {{.Var}},
{{- end}}
	}
}

// Splat{{.N}} builds a {{.Tuple}} holding {{.N}} copies of v.
func Splat{{.N}}[T any](v T) {{.Tuple}}[{{.Same}}] {
	return {{.Tuple}}[{{.Same}}]{
{{- range .Members}}
		{{.Type}}: v,
{{- end}}
	}
}

// Unpack returns the values of t in order.
func (t {{.Tuple}}[{{.Params}}]) Unpack() ({{.Params}}) {
	return {{.Selectors "t."}}
}

// {{.Zip}} drives {{.N}} streams in lockstep as one stream of {{.Tuple}}.
//
// The first stream leads: Width, Size, ScalarPos and ScalarLen are its
// values, and the other streams are read at its position.
type {{.Zip}}[{{.Decl}}] struct {
{{- range .Members}}
	{{.Var}} Zippable[{{.Type}}]
{{- end}}
}

// New{{.Zip}} zips {{.N}} streams of equal scalar length and takes ownership of
// them. It panics with a *LengthMismatchError when the lengths differ.
func New{{.Zip}}[{{.Decl}}]({{.ZipArgs}}) *{{.Zip}}[{{.Params}}] {
	checkLengths({{.Calls "" "ScalarLen()"}})
	return &{{.Zip}}[{{.Params}}]{
{{- range .Members}}
		{{.Var}}: {{.Var}},
{{- end}}
	}
}

func (z *{{.Zip}}[{{.Params}}]) Width() int     { return z.{{.Leader.Var}}.Width() }
func (z *{{.Zip}}[{{.Params}}]) Size() int      { return z.{{.Leader.Var}}.Size() }
func (z *{{.Zip}}[{{.Params}}]) ScalarPos() int { return z.{{.Leader.Var}}.ScalarPos() }
func (z *{{.Zip}}[{{.Params}}]) ScalarLen() int { return z.{{.Leader.Var}}.ScalarLen() }
func (z *{{.Zip}}[{{.Params}}]) VectorPos() int { return VectorPos[{{.Tuple}}[{{.Params}}]](z) }
func (z *{{.Zip}}[{{.Params}}]) VectorLen() int { return VectorLen[{{.Tuple}}[{{.Params}}]](z) }
func (z *{{.Zip}}[{{.Params}}]) Finalize()      { Finalize[{{.Tuple}}[{{.Params}}]](z) }

// Advance skips amount elements and moves every follower to the leader's
// new position.
func (z *{{.Zip}}[{{.Params}}]) Advance(amount int) {
	z.{{.Leader.Var}}.Advance(amount)
	pos := z.{{.Leader.Var}}.ScalarPos()
{{- range .Followers}}
	z.{{.Var}}.seek(pos)
{{- end}}
}

// Default returns the default vector of every member.
func (z *{{.Zip}}[{{.Params}}]) Default() {{.Tuple}}[{{.Params}}] {
	return {{.Tuple}}[{{.Params}}]{
{{- range .Members}}
		{{.Type}}: z.{{.Var}}.Default(),
{{- end}}
	}
}

// Next returns the next full vector of every member, or false once the
// leader has fewer than Width elements left.
func (z *{{.Zip}}[{{.Params}}]) Next() ({{.Tuple}}[{{.Params}}], bool) {
	pos := z.{{.Leader.Var}}.ScalarPos()
	v, ok := z.{{.Leader.Var}}.Next()
	if !ok {
		return {{.Tuple}}[{{.Params}}]{}, false
	}
	return {{.Tuple}}[{{.Params}}]{
		{{.Leader.Type}}: v,
{{- range .Followers}}
		{{.Type}}: z.{{.Var}}.nextAt(pos),
{{- end}}
	}, true
}

// End returns the padded tail of every member and the number of valid
// lanes, which is the same for all of them.
func (z *{{.Zip}}[{{.Params}}]) End() ({{.Tuple}}[{{.Params}}], int, bool) {
	pos := z.{{.Leader.Var}}.ScalarPos()
	v, n, ok := z.{{.Leader.Var}}.End()
	if !ok {
		return {{.Tuple}}[{{.Params}}]{}, 0, false
	}
	return {{.Tuple}}[{{.Params}}]{
		{{.Leader.Type}}: v,
{{- range .Followers}}
		{{.Type}}: z.{{.Var}}.endAt(pos, n),
{{- end}}
	}, n, true
}

func (z *{{.Zip}}[{{.Params}}]) nextAt(pos int) {{.Tuple}}[{{.Params}}] {
	return {{.Tuple}}[{{.Params}}]{
{{- range .Members}}
		{{.Type}}: z.{{.Var}}.nextAt(pos),
{{- end}}
	}
}

func (z *{{.Zip}}[{{.Params}}]) endAt(pos, n int) {{.Tuple}}[{{.Params}}] {
	return {{.Tuple}}[{{.Params}}]{
{{- range .Members}}
		{{.Type}}: z.{{.Var}}.endAt(pos, n),
{{- end}}
	}
}

func (z *{{.Zip}}[{{.Params}}]) seek(pos int) {
{{- range .Members}}
	z.{{.Var}}.seek(pos)
{{- end}}
}
{{end -}}
`))
