package ir

// Result is the outcome handed over by a parser: either a document root
// or a diagnostic for a failed parse. The encoder dumps a failed result's
// diagnostic verbatim instead of attempting structured output.
type Result struct {
	Root       *Node
	Diagnostic string
}

// Failed reports whether the result carries a diagnostic instead of a
// document.
func (r *Result) Failed() bool {
	return r.Root == nil
}

// Succeeded wraps a document root.
func Succeeded(root *Node) *Result {
	return &Result{Root: root}
}

// FailedParse wraps a parse diagnostic.
func FailedParse(diagnostic string) *Result {
	return &Result{Diagnostic: diagnostic}
}
