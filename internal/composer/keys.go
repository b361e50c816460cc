package composer

// On-screen key labels that are not single letters.
const (
	KeySpace  = "SPACE"
	KeyDelete = "DELETE"
)

var keyRows = [][]string{
	{"A", "B", "C", "D", "E", "F", "G"},
	{"H", "I", "J", "K", "L", "M", "N"},
	{"O", "P", "Q", "R", "S", "T", "U"},
	{"V", "W", "X", "Y", "Z"},
	{KeySpace, KeyDelete},
}

// KeyRows returns the on-screen keyboard layout, letters first and the
// SPACE/DELETE row last.
func KeyRows() [][]string {
	rows := make([][]string, len(keyRows))
	for i, row := range keyRows {
		rows[i] = append([]string(nil), row...)
	}
	return rows
}

// PressKey applies one on-screen key to the draft. Unknown labels are ignored
// and reported as false.
func (c *Composer) PressKey(label string) bool {
	switch label {
	case KeySpace:
		c.AppendSpace()
		return true
	case KeyDelete:
		c.DeleteLastCharacter()
		return true
	}
	runes := []rune(label)
	if len(runes) != 1 || runes[0] < 'A' || runes[0] > 'Z' {
		return false
	}
	c.AppendCharacter(runes[0])
	return true
}
