package glw

import (
	"go/ast"
	"go/parser"
	"go/token"
	"slices"
	"testing"
)

func parseSource(t *testing.T, name string) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, nil, 0)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return f
}

// tables returns the elements of every [...]T{...} literal in f, keyed by
// the rendered element type. Elements are identifiers or T{} literals.
func tables(f *ast.File) map[string][]string {
	out := make(map[string][]string)
	ast.Inspect(f, func(n ast.Node) bool {
		lit, ok := n.(*ast.CompositeLit)
		if !ok {
			return true
		}
		arr, ok := lit.Type.(*ast.ArrayType)
		if !ok {
			return true
		}
		if _, ok := arr.Len.(*ast.Ellipsis); !ok {
			return true
		}
		elem := typeString(arr.Elt)
		for _, e := range lit.Elts {
			switch e := e.(type) {
			case *ast.Ident:
				out[elem] = append(out[elem], e.Name)
			case *ast.CompositeLit:
				out[elem] = append(out[elem], typeString(e.Type))
			}
		}
		return false
	})
	return out
}

func typeString(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.IndexExpr:
		return typeString(e.X) + "[" + typeString(e.Index) + "]"
	default:
		return ""
	}
}

func sameMembers(t *testing.T, what string, declared, listed []string) {
	t.Helper()
	for _, name := range declared {
		if !slices.Contains(listed, name) {
			t.Errorf("%s: %s is declared but missing from the table", what, name)
		}
	}
	for _, name := range listed {
		if !slices.Contains(declared, name) {
			t.Errorf("%s: table lists %s, which is not declared", what, name)
		}
	}
}

// TestEnumTablesComplete checks that every constant of an enumeration type
// appears in that type's member table. The array length checks in enums.go
// only tie the tables to their counts.
func TestEnumTablesComplete(t *testing.T) {
	f := parseSource(t, "enums.go")
	declared := make(map[string][]string)
	var types []string
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gen.Specs {
			switch spec := spec.(type) {
			case *ast.TypeSpec:
				types = append(types, spec.Name.Name)
			case *ast.ValueSpec:
				if gen.Tok != token.CONST || spec.Type == nil {
					continue
				}
				typ := typeString(spec.Type)
				for _, name := range spec.Names {
					declared[typ] = append(declared[typ], name.Name)
				}
			}
		}
	}

	listed := tables(f)
	if len(types) < 15 {
		t.Fatalf("found only %d enumeration types in enums.go", len(types))
	}
	for _, typ := range types {
		if len(declared[typ]) == 0 {
			t.Errorf("%s declares no members", typ)
			continue
		}
		if _, ok := listed[typ]; !ok {
			t.Errorf("%s has no [...]%s table", typ, typ)
			continue
		}
		sameMembers(t, typ, declared[typ], listed[typ])
	}
}

// TestTagTablesComplete checks that every type with a Value method in
// tags.go is listed in the tag table of the enumeration it stands for.
func TestTagTablesComplete(t *testing.T) {
	f := parseSource(t, "tags.go")
	declared := make(map[string][]string)
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || fn.Name.Name != "Value" || fn.Type.Results == nil {
			continue
		}
		enum := typeString(fn.Type.Results.List[0].Type)
		recv := typeString(fn.Recv.List[0].Type)
		declared[enum] = append(declared[enum], recv)
	}
	if len(declared) != 4 {
		t.Fatalf("tags.go has tags for %d enumerations, want 4", len(declared))
	}

	listed := tables(f)
	for enum, tags := range declared {
		sameMembers(t, "Tag["+enum+"]", tags, listed["Tag["+enum+"]"])
	}
}
