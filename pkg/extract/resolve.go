package extract

import (
	sitter "github.com/smacker/go-tree-sitter"
	"golang.org/x/text/unicode/norm"
)

// BaseName returns the display identifier of a base-class expression, or ""
// when none can be determined.
//
//   - identifier: the identifier itself
//   - attribute chain (a.b.C): the rightmost segment, C
//   - subscript (Generic[T]): the name of the subscripted value
//   - parenthesized expression: the name of the inner expression
//
// Calls, keyword arguments (metaclass=...), splats and every other shape
// yield "". Qualifying namespaces are dropped on purpose to keep diagrams
// small.
func BaseName(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case "identifier":
		return identifier(n.Content(src))
	case "attribute":
		attr := n.ChildByFieldName("attribute")
		if attr == nil {
			return ""
		}
		return identifier(attr.Content(src))
	case "subscript":
		return BaseName(n.ChildByFieldName("value"), src)
	case "parenthesized_expression":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if inner := n.NamedChild(i); inner.Type() != "comment" {
				return BaseName(inner, src)
			}
		}
	}
	return ""
}

// identifier normalizes a Python identifier the way the tokenizer does.
func identifier(s string) string {
	return norm.NFKC.String(s)
}
