// Package invariants gates expensive self-checks behind the "invariants" and
// "race" build tags.
package invariants

// MaybeCheck runs check and panics with its error when invariant checking is
// enabled. In regular builds it does nothing and check is never called.
func MaybeCheck(check func() error) {
	if Enabled {
		if err := check(); err != nil {
			panic(err)
		}
	}
}
