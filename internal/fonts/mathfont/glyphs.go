package mathfont

var digits = [10][7]byte{
	{0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E}, // 0
	{0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E}, // 1
	{0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F}, // 2
	{0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E}, // 3
	{0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02}, // 4
	{0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E}, // 5
	{0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E}, // 6
	{0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08}, // 7
	{0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E}, // 8
	{0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C}, // 9
}

var (
	glyphDot   = [7]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C}
	glyphMinus = [7]byte{0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00}
	glyphPlus  = [7]byte{0x00, 0x04, 0x04, 0x1F, 0x04, 0x04, 0x00}
	glyphSlash = [7]byte{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x00}
	glyphPi    = [7]byte{0x00, 0x00, 0x1F, 0x0A, 0x0A, 0x0A, 0x11}
)

func glyphRows(r rune) ([7]byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return digits[r-'0'], true
	case r == '.':
		return glyphDot, true
	case r == '-', r == '−':
		return glyphMinus, true
	case r == '+':
		return glyphPlus, true
	case r == '/':
		return glyphSlash, true
	case r == 'π':
		return glyphPi, true
	}
	return [7]byte{}, false
}
