// Package errors provides structured, actionable diagnostics for the
// accordion.
//
// Every diagnostic has a code that maps to a registered template:
//   - A001-A099 markup defects (missing head, control or content)
//   - C001-C099 configuration problems
//   - L001-L099 live protocol problems
//
// Markup defects are never returned to callers; they are reported through
// slog with Report and binding carries on with whatever markup is present.
//
// # Usage
//
//	err := errors.New(errors.CodeMissingHead).
//	    WithItem(2).
//	    WithClass("head-marker")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR A002: Item is missing its head element
//	//
//	//   item #3 .head-marker
//	//
//	//   Every item needs a head element holding the toggle button.
//	//
//	//   Hint: Add an element with the head class inside the item.
package errors
