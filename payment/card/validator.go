package card

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	ErrInvalidScheme = errors.New("card: invalid card number")
	ErrExpired       = errors.New("card: card expired")
	ErrInvalidCVV    = errors.New("card: invalid CVV")
)

// Card is the cardholder input of a payment.
type Card struct {
	Number   string
	ExpMonth string
	ExpYear  string
	CVV      string
}

const (
	minNumberLength = 16
	acceptedScheme  = '4'
)

// Validate checks the number, then the expiry, then the CVV, and returns the first
// failure.
func Validate(c Card, now time.Time) error {
	if !validNumber(c.Number) {
		return ErrInvalidScheme
	}
	if !validExpiry(c.ExpMonth, c.ExpYear, now) {
		return ErrExpired
	}
	if !validCVV(c.CVV) {
		return ErrInvalidCVV
	}
	return nil
}

// Digits strips whitespace from a card number.
func Digits(number string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, number)
}

func validNumber(number string) bool {
	digits := Digits(number)
	if len(digits) < minNumberLength || !allDigits(digits) {
		return false
	}
	return digits[0] == acceptedScheme
}

// validExpiry accepts a card through the last day of its expiry month.
func validExpiry(month, year string, now time.Time) bool {
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return false
	}
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y < 0 {
		return false
	}
	if y < 100 {
		y += 2000
	}

	curYear, curMonth := now.Year(), int(now.Month())
	if y != curYear {
		return y > curYear
	}
	return m >= curMonth
}

func validCVV(cvv string) bool {
	return len(cvv) == 3 && allDigits(cvv)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
