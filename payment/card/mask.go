package card

import "strings"

const (
	binLength = 6
	// shownLead is how long a number must be before its first group is shown.
	shownLead = 16
)

// Mask hides a card number in groups of four and keeps its last four digits,
// e.g. "4111 **** **** 1234". The first group is kept only for numbers of full
// card length; anything shorter shows nothing but the last four digits.
func Mask(number string) string {
	digits := Digits(number)
	if len(digits) <= 4 {
		return "****"
	}

	var b strings.Builder
	hidden := len(digits) - 4
	if len(digits) >= shownLead {
		b.WriteString(digits[:4])
		b.WriteByte(' ')
		hidden -= 4
	}
	for i := 0; i < (hidden+3)/4; i++ {
		b.WriteString("**** ")
	}
	b.WriteString(digits[len(digits)-4:])
	return b.String()
}

// BIN returns the first six digits followed by "****", the form used in card
// payment signatures.
func BIN(number string) string {
	digits := Digits(number)
	if len(digits) < binLength {
		return "****"
	}
	return digits[:binLength] + "****"
}
