package squat

// Universe is the set of package names known to exist in a registry.
// It is read-only after construction and safe for concurrent use.
type Universe struct {
	names map[string]struct{}
}

// NewUniverse builds a Universe from names. Duplicates are ignored.
func NewUniverse(names []string) *Universe {
	u := &Universe{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		u.names[n] = struct{}{}
	}
	return u
}

// Contains reports whether name is a known package.
func (u *Universe) Contains(name string) bool {
	if u == nil {
		return false
	}
	_, ok := u.names[name]
	return ok
}

// Len returns the number of distinct names.
func (u *Universe) Len() int {
	if u == nil {
		return 0
	}
	return len(u.names)
}
