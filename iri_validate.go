package jelly

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateIRI performs basic RFC 3987 structural validation: scheme
// well-formedness, no bare control characters, no raw angle brackets.
// It is not a full IRI grammar check; ModelMaterializer uses it as an
// opt-in guard at materialization time, not inside the decoder itself.
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("empty IRI")
	}

	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("invalid IRI syntax: %w", err)
	}

	if parsed.Scheme == "" {
		if strings.HasPrefix(iri, "//") {
			return fmt.Errorf("relative IRI without scheme: %s", iri)
		}
		if strings.Contains(iri, ":") && !strings.HasPrefix(iri, "/") && !strings.HasPrefix(iri, "./") && !strings.HasPrefix(iri, "../") {
			parts := strings.SplitN(iri, ":", 2)
			if len(parts) == 2 && !validScheme(parts[0]) {
				return fmt.Errorf("IRI appears to be missing a scheme: %s", iri)
			}
		}
	} else {
		first := parsed.Scheme[0]
		if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
			return fmt.Errorf("scheme must start with a letter: %s", iri)
		}
	}

	for i, r := range iri {
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return fmt.Errorf("invalid control character at position %d in IRI: %s", i, iri)
		}
		if r == '<' || r == '>' {
			return fmt.Errorf("invalid character '%c' at position %d in IRI (should be percent-encoded): %s", r, i, iri)
		}
	}

	return nil
}

func validScheme(scheme string) bool {
	if len(scheme) == 0 {
		return false
	}
	for _, r := range scheme {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '+' || r == '-' || r == '.') {
			return false
		}
	}
	return true
}

// IRIError reports that the IRI built from a lookup-table prefix and
// name failed validation. Jelly never carries a whole IRI on the wire,
// only the (prefix, name) pair that a decoder concatenates, so a plain
// "invalid IRI: ..." message loses which table produced the bad value;
// this keeps both wire components alongside the underlying reason.
type IRIError struct {
	Prefix string
	Name   string
	Err    error
}

func (e *IRIError) Error() string {
	return fmt.Sprintf("jelly: invalid IRI from prefix %q + name %q: %v", e.Prefix, e.Name, e.Err)
}

func (e *IRIError) Unwrap() error { return e.Err }

// ValidateIRIParts validates the IRI formed by concatenating a resolved
// prefix and name, the shape every IRI term takes coming off the wire.
// On failure it returns an *IRIError naming both source components
// rather than just the joined string.
func ValidateIRIParts(prefix, name string) error {
	if err := ValidateIRI(prefix + name); err != nil {
		return &IRIError{Prefix: prefix, Name: name, Err: err}
	}
	return nil
}
