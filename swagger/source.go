package swagger

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

// DocSource resolves handler documentation by qualified handler name.
type DocSource interface {
	Doc(handler string) (string, bool)
}

// DocMap is a DocSource backed by a map.
type DocMap map[string]string

// Doc returns the documentation registered for handler.
func (m DocMap) Doc(handler string) (string, bool) {
	text, ok := m[handler]
	return text, ok
}

// SourceDocs collects doc comments of functions and methods from Go source.
// Functions are keyed "pkg.Func", methods "pkg.Recv.Method", matching the
// Handler names produced by RoutesFromRouter.
type SourceDocs struct {
	fset *token.FileSet
	docs DocMap
}

// LoadSourceDocs parses every non-test Go file under the given directories.
func LoadSourceDocs(dirs ...string) (*SourceDocs, error) {
	s := &SourceDocs{
		fset: token.NewFileSet(),
		docs: make(DocMap),
	}
	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != dir && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
				return nil
			}
			return s.parseFile(path)
		})
		if err != nil {
			return nil, fmt.Errorf("swagger: load source docs from %s: %w", dir, err)
		}
	}
	return s, nil
}

func (s *SourceDocs) parseFile(path string) error {
	file, err := parser.ParseFile(s.fset, path, nil, parser.ParseComments)
	if err != nil {
		return err
	}

	pkg := file.Name.Name
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Doc == nil {
			continue
		}
		key := pkg + "." + fn.Name.Name
		if recv := receiverName(fn); recv != "" {
			key = pkg + "." + recv + "." + fn.Name.Name
		}
		s.docs[key] = strings.TrimSpace(fn.Doc.Text())
	}
	return nil
}

// receiverName returns the receiver base type name of a method.
func receiverName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}
	expr := fn.Recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return id.Name
		}
	case *ast.IndexListExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return id.Name
		}
	}
	return ""
}

// Doc returns the doc comment of the named handler.
func (s *SourceDocs) Doc(handler string) (string, bool) {
	return s.docs.Doc(handler)
}

// Len returns the number of documented functions.
func (s *SourceDocs) Len() int {
	return len(s.docs)
}
