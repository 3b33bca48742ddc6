// Package extract reads Python source files and returns the class
// declarations they contain, without executing any code.
//
// # Parsing
//
// Sources are parsed with tree-sitter's Python grammar. A file that cannot be
// read, or whose syntax tree contains an error node, contributes no classes:
// one malformed file never aborts the diagram of its package, and callers
// cannot tell it apart from a file that declares no classes. The only trace is
// a debug line on the extractor's logger.
//
// Sources written in Python 2 are rejected the same way even where the grammar
// accepts them: print and exec statements, "except E, name", "raise E, msg",
// the <> operator, and 0777 or 10L literals each void the whole file.
//
// Text is decoded as UTF-8. A leading byte order mark is dropped and malformed
// byte sequences are removed instead of failing the file.
//
// # What Is Extracted
//
// Every node of the tree is visited, so classes nested in functions or other
// classes are returned alongside top-level ones. For each class:
//
//   - Bases are resolved with [BaseName], one identifier per declared base,
//     skipping expressions that have no sensible name and duplicates.
//   - Methods are the function definitions (plain, async or decorated) that
//     are direct children of the class body. Methods of nested classes belong
//     to the nested class only. "async def" members are deliberately
//     listed like plain methods.
//
// Identifiers are NFKC-normalized, matching how the Python tokenizer treats
// non-ASCII names.
//
// # Usage
//
//	ex := extract.New(logger)
//	for _, path := range files {
//	    classes = append(classes, ex.File(ctx, pkgDir, path)...)
//	}
package extract
