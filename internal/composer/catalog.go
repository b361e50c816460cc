package composer

// Tint groups canned notes that share a pastel color.
type Tint int

const (
	TintDefault Tint = iota
	TintPurple
	TintOrange
	TintRed
)

// Canned is a pre-written note that can be posted with one action.
type Canned struct {
	Title string
	Tint  Tint
}

// The two columns are a layout split only; both are equally valid.
var (
	leftColumn = []Canned{
		{Title: "BUY MILK", Tint: TintPurple},
		{Title: "GOOD LUCK!", Tint: TintOrange},
		{Title: "I'M HOME", Tint: TintRed},
	}
	rightColumn = []Canned{
		{Title: "CALL ME", Tint: TintPurple},
		{Title: "FEED THE DOG", Tint: TintOrange},
		{Title: "RUNNING LATE", Tint: TintRed},
	}
)

// LeftColumn returns the canned notes shown on the left.
func LeftColumn() []Canned {
	return append([]Canned(nil), leftColumn...)
}

// RightColumn returns the canned notes shown on the right.
func RightColumn() []Canned {
	return append([]Canned(nil), rightColumn...)
}

// Catalog returns every canned note, left column first.
func Catalog() []Canned {
	out := make([]Canned, 0, len(leftColumn)+len(rightColumn))
	out = append(out, leftColumn...)
	return append(out, rightColumn...)
}

// lookupCanned finds a catalog entry by exact title.
func lookupCanned(title string) (Canned, bool) {
	for _, c := range Catalog() {
		if c.Title == title {
			return c, true
		}
	}
	return Canned{}, false
}
