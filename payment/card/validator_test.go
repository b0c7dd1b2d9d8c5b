package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, time.July, 15, 10, 30, 0, 0, time.UTC)

func validCard() Card {
	return Card{
		Number:   "4111 1111 1111 1111",
		ExpMonth: "12",
		ExpYear:  "27",
		CVV:      "123",
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(c *Card)
		expectedError error
	}{
		{name: "valid", mutate: func(c *Card) {}},
		{name: "valid_four_digit_year", mutate: func(c *Card) { c.ExpYear = "2027" }},
		{name: "expires_this_month", mutate: func(c *Card) { c.ExpMonth = "07"; c.ExpYear = "25" }},
		{name: "nineteen_digits", mutate: func(c *Card) { c.Number = "4111111111111111123" }},
		{name: "wrong_scheme", mutate: func(c *Card) { c.Number = "5555555555554444" }, expectedError: ErrInvalidScheme},
		{name: "too_short", mutate: func(c *Card) { c.Number = "411111111111111" }, expectedError: ErrInvalidScheme},
		{name: "non_digit", mutate: func(c *Card) { c.Number = "4111-1111-1111-1111" }, expectedError: ErrInvalidScheme},
		{name: "empty_number", mutate: func(c *Card) { c.Number = "" }, expectedError: ErrInvalidScheme},
		{name: "last_month", mutate: func(c *Card) { c.ExpMonth = "06"; c.ExpYear = "25" }, expectedError: ErrExpired},
		{name: "last_year", mutate: func(c *Card) { c.ExpYear = "24" }, expectedError: ErrExpired},
		{name: "month_zero", mutate: func(c *Card) { c.ExpMonth = "0" }, expectedError: ErrExpired},
		{name: "month_thirteen", mutate: func(c *Card) { c.ExpMonth = "13" }, expectedError: ErrExpired},
		{name: "unparsable_year", mutate: func(c *Card) { c.ExpYear = "xx" }, expectedError: ErrExpired},
		{name: "cvv_two_digits", mutate: func(c *Card) { c.CVV = "12" }, expectedError: ErrInvalidCVV},
		{name: "cvv_four_digits", mutate: func(c *Card) { c.CVV = "1234" }, expectedError: ErrInvalidCVV},
		{name: "cvv_letters", mutate: func(c *Card) { c.CVV = "12a" }, expectedError: ErrInvalidCVV},
		{
			name: "number_checked_before_expiry",
			mutate: func(c *Card) {
				c.Number = "1234"
				c.ExpYear = "20"
				c.CVV = ""
			},
			expectedError: ErrInvalidScheme,
		},
		{
			name: "expiry_checked_before_cvv",
			mutate: func(c *Card) {
				c.ExpYear = "20"
				c.CVV = ""
			},
			expectedError: ErrExpired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCard()
			tc.mutate(&c)

			err := Validate(c, now)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMask(t *testing.T) {
	testCases := []struct {
		number   string
		expected string
	}{
		{number: "4111 1111 1111 1234", expected: "4111 **** **** 1234"},
		{number: "4111111111111234", expected: "4111 **** **** 1234"},
		{number: "4111111111111111123", expected: "4111 **** **** **** 1123"},
		{number: "12345678", expected: "**** 5678"},
		{number: "411111111234", expected: "**** **** 1234"},
		{number: "411111111111234", expected: "**** **** **** 1234"},
		{number: "4111123", expected: "**** 1123"},
		{number: "1234", expected: "****"},
		{number: "", expected: "****"},
	}

	for _, tc := range testCases {
		t.Run(tc.number, func(t *testing.T) {
			masked := Mask(tc.number)
			assert.Equal(t, tc.expected, masked)
			if digits := Digits(tc.number); len(digits) > 4 && len(digits) < 16 {
				assert.NotContains(t, masked, digits[:4])
			}
		})
	}
}

func TestBIN(t *testing.T) {
	assert.Equal(t, "411111****", BIN("4111 1111 1111 1111"))
	assert.Equal(t, "****", BIN("4111"))
}
