// Package assert is a helper to allow assert tests in a more standardized
// and simple manner. Using it makes it clear that this is an assertion
// used in a non-production setting.
package assert

import "fmt"

// DEBUG controls whether Assert actually evaluates its test. It is a
// compile-time constant so the Go compiler can eliminate the whole
// statement (and the cost of evaluating its arguments) when false.
const DEBUG = false

// Assert panics with the given message if test evaluates to false.
// Go still evaluates the arguments to this call even when DEBUG is
// false, so callers must also guard with "if assert.DEBUG { ... }" to
// avoid paying for argument construction (e.g. value.String()) in a
// release build:
//
//	if assert.DEBUG {
//	    assert.Assert(value > 0, "expected positive value, got %s", value.String())
//	}
func Assert(test bool, msg string, a ...interface{}) {
	if !DEBUG {
		return
	}
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
