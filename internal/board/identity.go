package board

// Identity is one of the fixed family members who can post notes.
type Identity int

const (
	// NoIdentity means nobody has picked a card yet.
	NoIdentity Identity = iota
	Dad
	Mom
	Kid
)

// Identities lists the selectable identities in card order.
var Identities = []Identity{Dad, Mom, Kid}

// Label returns the display name used as a note's author.
func (i Identity) Label() string {
	switch i {
	case Dad:
		return "Dad"
	case Mom:
		return "Mom"
	case Kid:
		return "Kid"
	default:
		return ""
	}
}

// Valid reports whether i is a selectable identity.
func (i Identity) Valid() bool {
	return i >= Dad && i <= Kid
}

// String implements fmt.Stringer.
func (i Identity) String() string {
	if label := i.Label(); label != "" {
		return label
	}
	return "none"
}

// IdentityByLabel resolves an author label back to its identity.
func IdentityByLabel(label string) (Identity, bool) {
	for _, id := range Identities {
		if id.Label() == label {
			return id, true
		}
	}
	return NoIdentity, false
}
