// Package interp is the slash-command interpreter for composition
// documents. A registry maps command names to handlers; dispatching a
// command line parses and validates its arguments, applies a copy-on-write
// mutation to the document, and returns a structured Result. The
// interpreter holds no state between calls: each invocation is a pure
// function of the command text, the current document, and the collaborator
// handles supplied by the host.
package interp
