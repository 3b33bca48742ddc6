package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// legacySyntax reports whether n is a Python 2 construct that the grammar
// accepts but Python 3 rejects. Such a node makes the whole file invalid.
func legacySyntax(n *sitter.Node, src []byte) bool {
	switch n.Type() {
	case "print_statement", "exec_statement":
		return true
	case "except_clause":
		// except E, name:
		return hasChild(n, func(c *sitter.Node) bool {
			return c.Type() == "," || c.Type() == "expression_list"
		})
	case "raise_statement":
		// raise E, "message"
		return hasChild(n, func(c *sitter.Node) bool { return c.Type() == "expression_list" })
	case "comparison_operator":
		return hasChild(n, func(c *sitter.Node) bool { return c.Type() == "<>" })
	case "integer":
		return legacyInteger(n.Content(src))
	}
	return false
}

// hasChild reports whether any direct child of n, named or not, matches.
func hasChild(n *sitter.Node, match func(*sitter.Node) bool) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c != nil && match(c) {
			return true
		}
	}
	return false
}

// legacyInteger reports whether text is a long literal (10L) or an octal
// literal without the 0o prefix (0777).
func legacyInteger(text string) bool {
	lower := strings.ToLower(text)
	if strings.HasSuffix(lower, "l") {
		return true
	}
	if strings.HasSuffix(lower, "j") || len(lower) < 2 || lower[0] != '0' {
		return false
	}
	switch lower[1] {
	case 'x', 'o', 'b':
		return false
	}
	return strings.Trim(lower, "0_") != ""
}
