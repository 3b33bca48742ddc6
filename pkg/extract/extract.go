package extract

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/matzehuels/pumlgen/pkg/model"
)

// Extractor turns Python source files into class records.
//
// An Extractor holds no per-file state; the tree-sitter parser is created and
// released inside each call.
type Extractor struct {
	logger *log.Logger
}

// New creates an Extractor that reports skipped files on logger at debug
// level. A nil logger discards everything.
func New(logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Extractor{logger: logger}
}

// File extracts the classes declared in file, a Python source somewhere below
// root. Read, decode and parse failures are swallowed: the file simply yields
// no classes.
func (e *Extractor) File(ctx context.Context, root, file string) []model.Class {
	module, rel, err := ModulePath(root, file)
	if err != nil {
		e.logger.Debug("skipping file", "path", file, "err", err)
		return nil
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		e.logger.Debug("skipping unreadable file", "path", rel, "err", err)
		return nil
	}
	src, err := decode(raw)
	if err != nil {
		e.logger.Debug("skipping undecodable file", "path", rel, "err", err)
		return nil
	}

	return e.Source(ctx, module, rel, src)
}

// Source extracts the classes declared in src. module and path are copied
// into every record; they are not interpreted.
func (e *Extractor) Source(ctx context.Context, module, path string, src []byte) []model.Class {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		e.logger.Debug("skipping file", "path", path, "err", err)
		return nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		e.logger.Debug("skipping file with syntax errors", "path", path)
		return nil
	}

	var (
		classes []model.Class
		legacy  bool
	)
	walk(root, func(n *sitter.Node) {
		if legacySyntax(n, src) {
			legacy = true
		}
		if legacy || n.Type() != "class_definition" {
			return
		}
		c, ok := classRecord(n, src)
		if !ok {
			return
		}
		c.Module = module
		c.Path = path
		classes = append(classes, c)
	})

	if legacy {
		e.logger.Debug("skipping file with Python 2 syntax", "path", path)
		return nil
	}

	e.logger.Debug("extracted classes", "path", path, "module", module, "classes", len(classes))
	return classes
}

// walk visits n and all of its named descendants in pre-order.
func walk(n *sitter.Node, visit func(*sitter.Node)) {
	stack := []*sitter.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(cur)
		for i := int(cur.NamedChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, cur.NamedChild(i))
		}
	}
}

// classRecord builds the record of a class_definition node. Module and Path
// are left for the caller.
func classRecord(n *sitter.Node, src []byte) (model.Class, bool) {
	name := n.ChildByFieldName("name")
	if name == nil {
		return model.Class{}, false
	}

	c := model.Class{
		Name: identifier(name.Content(src)),
		Line: int(n.StartPoint().Row) + 1,
	}
	if supers := n.ChildByFieldName("superclasses"); supers != nil {
		c.Bases = baseNames(supers, src)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		c.Methods = methodNames(body, src)
	}
	return c, true
}

// baseNames resolves each argument of a class's superclass list, dropping
// unresolvable expressions and repeated names.
func baseNames(args *sitter.Node, src []byte) []string {
	var bases []string
	seen := make(map[string]bool)
	for i := 0; i < int(args.NamedChildCount()); i++ {
		name := BaseName(args.NamedChild(i), src)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		bases = append(bases, name)
	}
	return bases
}

// methodNames returns the names of function definitions that are direct
// children of a class body, decorated ones included.
func methodNames(body *sitter.Node, src []byte) []string {
	var methods []string
	for i := 0; i < int(body.NamedChildCount()); i++ {
		stmt := body.NamedChild(i)
		if stmt.Type() == "decorated_definition" {
			stmt = stmt.ChildByFieldName("definition")
		}
		if stmt == nil || stmt.Type() != "function_definition" {
			continue
		}
		if name := stmt.ChildByFieldName("name"); name != nil {
			methods = append(methods, identifier(name.Content(src)))
		}
	}
	return methods
}
