// Package artifact writes the build artifacts of a contract compilation:
// the compiled code, the metadata document, and the bundle combining both.
//
// The package is the consumer side of the metadata document. It never
// compiles or optimizes code; the code bytes and the assembled document are
// handed in by the build tooling.
package artifact

import (
	"fmt"
	"strings"
)

// Kind specifies which artifacts a build pass produces.
type Kind string

const (
	// KindAll produces the code, the metadata document, and a bundled
	// <name>.contract file.
	KindAll Kind = "all"

	// KindCodeOnly produces only the compiled code; metadata and bundle
	// generation are skipped.
	KindCodeOnly Kind = "code-only"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the kind is a known value.
func (k Kind) IsValid() bool {
	switch k {
	case KindAll, KindCodeOnly:
		return true
	default:
		return false
	}
}

// Steps returns the number of build steps required for the kind, used for
// progress reporting.
func (k Kind) Steps() int {
	switch k {
	case KindAll:
		return 5
	case KindCodeOnly:
		return 3
	default:
		panic(fmt.Sprintf("unknown artifact kind %q", string(k)))
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "all":
		return KindAll, nil
	case "code-only":
		return KindCodeOnly, nil
	default:
		return "", fmt.Errorf("unknown artifact kind %q (valid: %s)", s, strings.Join(ValidKinds(), ", "))
	}
}

// ValidKinds returns the valid kind strings.
func ValidKinds() []string {
	return []string{"all", "code-only"}
}
