// Package lang implements the deft configuration language: a hand-written
// scanner and recursive descent parser, and the semantic evaluator that
// turns a document into one structured value tree suitable for TOML, YAML,
// or JSON serialization.
//
// # Grammar
//
//	document      → (const_decl | mapping)*
//	const_decl    → "(" "def" NAME value ")"
//	mapping       → "{" (NAME "=" value)* "}"
//	value         → number | string | mapping | expression | NAME
//	expression    → "$[" (value | operator)* "]"
//	operator      → "+" | "-" | "*" | "max" | "mod"
//	string        → "q(" ... ")"
//	comment       → "/#" ... "#/"
//
// # Semantics
//
// Constants are declared once, in source order, and must be declared
// before any reference. Expressions are postfix: items are evaluated left
// to right against a single operand stack, and every operator pops two
// values and pushes one. Top-level mapping literals merge, in order, into
// the single document mapping that a conversion returns; a duplicate key
// overwrites the bound value while keeping its original position.
//
// # Example
//
//	/# service configuration #/
//	(def base_port 8000)
//	(def host q(localhost))
//
//	{
//	  port    = $[base_port 1 +]
//	  address = $[host q(:) + base_port +]
//	  limits  = { retries = 3 timeout = 2.5 }
//	}
//
// Converting the document above yields a mapping with port 8001, address
// "localhost:8000", and a nested limits mapping.
//
// # Errors
//
// All failures are fatal to the conversion: syntax errors carry a source
// snippet with a caret at the offending column, and evaluation errors are
// sentinel kinds (ErrUndeclaredConstant, ErrMalformedExpression, ...)
// carrying structured context attributes for logging.
package lang
