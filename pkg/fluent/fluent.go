// Package fluent provides guarded invocation helpers: each function
// evaluates a guard over its arguments and, only when the guard holds,
// passes them to a caller-supplied callback. A false guard is a silent
// no-op, never an error. The helpers keep optional-configuration code flat:
//
//	fluent.IfCondition(cfg.Verbose, slog.LevelDebug, setLevel)
//	fluent.IfHasText(cfg.Proxy, setProxy)
//
// Every function returns the shared Invoker so consecutive guarded calls
// read as one sequence; calls run synchronously, in order, on the calling
// goroutine.
package fluent

import "strings"

// Invoker is the value returned by every guarded call. It is zero-size and
// stateless; all Invoker values are the one shared instance, so it may be
// used from any number of goroutines without locking.
type Invoker struct{}

// IfCondition invokes fn with value if condition is true.
func IfCondition[T any](condition bool, value T, fn func(T)) Invoker {
	if condition {
		fn(value)
	}
	return Invoker{}
}

// IfCondition2 invokes fn with both arguments if condition is true.
func IfCondition2[T1, T2 any](condition bool, t1 T1, t2 T2, fn func(T1, T2)) Invoker {
	if condition {
		fn(t1, t2)
	}
	return Invoker{}
}

// IfNotNil invokes fn with the dereferenced value if the pointer is not nil.
// A pointer to a zero value counts as present.
func IfNotNil[T any](value *T, fn func(T)) Invoker {
	if value != nil {
		fn(*value)
	}
	return Invoker{}
}

// IfNotNil2 invokes fn with both arguments if the second is not nil. The
// first argument is carried through unchanged.
func IfNotNil2[T1, T2 any](t1 T1, t2 *T2, fn func(T1, T2)) Invoker {
	if t2 != nil {
		fn(t1, *t2)
	}
	return Invoker{}
}

// IfHasText invokes fn with value if it contains at least one
// non-whitespace character. This is stricter than IfNotNil: empty and
// all-whitespace strings do not qualify.
func IfHasText(value string, fn func(string)) Invoker {
	if hasText(value) {
		fn(value)
	}
	return Invoker{}
}

// IfHasText2 invokes fn with both arguments if value contains at least one
// non-whitespace character. The first argument is carried through unchanged.
func IfHasText2[T any](t1 T, value string, fn func(T, string)) Invoker {
	if hasText(value) {
		fn(t1, value)
	}
	return Invoker{}
}

// IfInstanceOf invokes fn with the value narrowed to T if the value's
// dynamic type is assignable to T, either T itself or an implementation
// when T is an interface type.
//
// The value must not be nil: a nil value has no dynamic type to test, and
// passing one is a caller contract violation, so IfInstanceOf panics
// rather than skipping. Use IfNotNil for nil-safe dispatch.
func IfInstanceOf[T any](value any, fn func(T)) Invoker {
	if value == nil {
		panic("fluent: IfInstanceOf called with nil value")
	}
	if t, ok := value.(T); ok {
		fn(t)
	}
	return Invoker{}
}

// IfNotEmpty invokes fn with the slice if it has at least one element.
func IfNotEmpty[T any](values []T, fn func([]T)) Invoker {
	if len(values) > 0 {
		fn(values)
	}
	return Invoker{}
}

// IfNotEmptyMap invokes fn with the map if it has at least one entry.
func IfNotEmptyMap[K comparable, V any](values map[K]V, fn func(map[K]V)) Invoker {
	if len(values) > 0 {
		fn(values)
	}
	return Invoker{}
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
