package testutil

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// Equal fails the test if got != want, dumping both values.
func Equal[T comparable](t testing.TB, want, got T, msgAndArgs ...any) {
	t.Helper()
	if got != want {
		t.Fatalf("%s\n  got:  %s  want: %s", formatMsg(msgAndArgs), spew.Sdump(got), spew.Sdump(want))
	}
}

// Dump renders v with go-spew for failure messages.
func Dump(v any) string {
	return spew.Sdump(v)
}

func formatMsg(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "assertion failed"
	}
	msg, ok := msgAndArgs[0].(string)
	if !ok {
		return "assertion failed"
	}
	if len(msgAndArgs) == 1 {
		return msg
	}
	return fmt.Sprintf(msg, msgAndArgs[1:]...)
}
