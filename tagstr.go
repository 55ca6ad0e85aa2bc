// Package tagstr provides helpers for authoring template tag functions:
// callables that receive a fixed sequence of literal text chunks
// interleaved with dynamically computed values.
//
// # Basic Usage
//
// Split a tag into a one-time static analysis and a per-call combiner,
// then build a tag that memoizes the static half per template:
//
//	upper := tagstr.MustBuild(
//	    func(chunks *tagstr.Chunks) ([]string, error) {
//	        trimmed, err := tagstr.Trim(chunks)
//	        if err != nil {
//	            return nil, err
//	        }
//	        return trimmed.Cooked, nil
//	    },
//	    func(_ struct{}, cooked []string, _ *tagstr.Chunks, values []any) (string, error) {
//	        var b strings.Builder
//	        for i, chunk := range cooked {
//	            b.WriteString(chunk)
//	            if i < len(values) {
//	                b.WriteString(strings.ToUpper(fmt.Sprint(values[i])))
//	            }
//	        }
//	        return b.String(), nil
//	    },
//	)
//
//	chunks := tagstr.Lit("Hello, ", "!")
//	result, _ := upper.Invoke(chunks, "world")
//	// result: "Hello, WORLD!"
//
// The static half runs once per distinct chunk sequence; the combiner
// runs on every call and folds in the dynamic values.
//
// # Indentation Trimming
//
// Trim removes the longest whitespace run common to the start of every
// line across every chunk, so templates can be indented to match the
// surrounding code:
//
//	chunks := tagstr.Lit("\n    SELECT name\n    FROM users\n    WHERE id = ", "\n    ")
//	trimmed, _ := tagstr.Trim(chunks, tagstr.TrimEOLAtStart(), tagstr.TrimEOLAtEnd())
//	// trimmed.Cooked: ["SELECT name\nFROM users\nWHERE id = ", ""]
//
// # Configuration
//
// Tags carry an arbitrary configuration value supplied by currying.
// Configure never mutates the tag it is called on; it returns an
// independent bound tag sharing the same static cache:
//
//	verbose := myTag.Configure(MyConfig{Verbose: true})
//	result, err := verbose.Invoke(chunks, values...)
//
// # Typed Strings
//
// TypedString marks a text value as satisfying a named contract, so a
// tag handler can recognize already-safe input and skip re-escaping:
//
//	safe := tagstr.NewTypedString("a,b,c", "csv-cell")
//	if safe.Satisfies("csv-cell") { /* interpolate verbatim */ }
//
// # Error Handling
//
// Malformed tagged-call shapes fail with an invalid-input error before
// any user code runs; test for it with IsInvalidInput. Errors from the
// static half are cached per chunk-sequence identity and re-returned
// verbatim on subsequent calls; errors from the combiner are never
// cached.
package tagstr
