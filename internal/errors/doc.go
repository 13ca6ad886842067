// Package errors provides structured, actionable error messages for toastkit.
//
// Each error carries a unique code that maps to a short message, a longer
// explanation and an optional hint:
//
//	err := errors.New("E102").
//	    WithFile("toastkit.json").
//	    WithSuggestion(`Use Go duration syntax, e.g. "5s" or "300ms"`).
//	    Wrap(parseErr)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E102: Invalid duration
//	//
//	//   toastkit.json
//	//
//	//   A duration field could not be parsed.
//	//
//	//   Hint: Use Go duration syntax, e.g. "5s" or "300ms"
//
// # Error Categories
//
//   - config: configuration file and flag errors
//   - runtime: event loop and toast lookup errors
//   - protocol: HTTP and WebSocket payload errors
package errors
