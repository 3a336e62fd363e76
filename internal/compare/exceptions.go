package compare

import (
	"slices"

	"naum/internal/model"
)

// Roots of the unchecked exception hierarchy.
const (
	runtimeExceptionType = "java.lang.RuntimeException"
	errorType            = "java.lang.Error"
)

// DefaultUncheckedExceptions lists well-known JDK unchecked exceptions.
// Types outside the compared model sets cannot have their superclass
// chain resolved; these are recognised by name.
var DefaultUncheckedExceptions = []string{
	runtimeExceptionType,
	errorType,
	"java.lang.ArithmeticException",
	"java.lang.ArrayIndexOutOfBoundsException",
	"java.lang.ArrayStoreException",
	"java.lang.AssertionError",
	"java.lang.ClassCastException",
	"java.lang.IllegalArgumentException",
	"java.lang.IllegalMonitorStateException",
	"java.lang.IllegalStateException",
	"java.lang.IndexOutOfBoundsException",
	"java.lang.NegativeArraySizeException",
	"java.lang.NullPointerException",
	"java.lang.NumberFormatException",
	"java.lang.OutOfMemoryError",
	"java.lang.SecurityException",
	"java.lang.StackOverflowError",
	"java.lang.StringIndexOutOfBoundsException",
	"java.lang.UnsupportedOperationException",
	"java.io.UncheckedIOException",
	"java.time.DateTimeException",
	"java.util.ConcurrentModificationException",
	"java.util.MissingResourceException",
	"java.util.NoSuchElementException",
}

// hierarchy resolves superclass chains across model sets.
type hierarchy struct {
	unchecked []string
	sets      []model.ModelSet // searched in order
}

// isChecked walks the superclass chain through the model sets until it
// reaches a known unchecked type or leaves the sets. Unknown types are
// treated as checked.
func (h hierarchy) isChecked(name string) bool {
	seen := make(map[string]bool)
	for name != "" && !seen[name] {
		if slices.Contains(h.unchecked, name) {
			return false
		}
		seen[name] = true
		name = h.superclassOf(name)
	}

	return true
}

func (h hierarchy) superclassOf(name string) string {
	for _, set := range h.sets {
		if t, ok := set.Lookup(name); ok {
			return t.Superclass()
		}
	}

	return ""
}

// inherits reports whether ancestor is name itself or one of its
// superclasses, as far as the model sets can tell.
func (h hierarchy) inherits(name, ancestor string) bool {
	seen := make(map[string]bool)
	for name != "" && !seen[name] {
		if name == ancestor {
			return true
		}
		seen[name] = true
		name = h.superclassOf(name)
	}

	return false
}
