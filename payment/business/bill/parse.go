package bill

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	nameAliases    = []string{"customerName", "accountName", "fullName", "name"}
	addressAliases = []string{"address", "customerAddress", "location", "addr"}
	amountAliases  = []string{"amount", "totalAmount", "payAmount", "billAmount"}
	periodAliases  = []string{"period", "billPeriod", "cycleMonth", "month"}
	dueDateAliases = []string{"dueDate", "expiredDate", "paymentDeadline", "deadline"}
)

type parsedFields struct {
	customerName string
	address      string
	period       string
	dueDate      string
	amount       int64
	hasAmount    bool
}

// parseResponse reads a provider answer. Providers disagree on field names, so
// each field is looked up through its alias list, at the top level first and
// then inside a "data" object.
func parseResponse(body []byte) (parsedFields, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var top map[string]any
	if err := dec.Decode(&top); err != nil {
		return parsedFields{}, fmt.Errorf("malformed provider response: %w", err)
	}
	if top == nil {
		return parsedFields{}, errors.New("malformed provider response: null")
	}

	scopes := []map[string]any{top}
	if data, ok := top["data"].(map[string]any); ok {
		scopes = append(scopes, data)
	}

	if !succeeded(scopes) {
		return parsedFields{}, errNoSuccessMark
	}

	f := parsedFields{
		customerName: findText(scopes, nameAliases),
		address:      findText(scopes, addressAliases),
		period:       findText(scopes, periodAliases),
		dueDate:      findText(scopes, dueDateAliases),
	}
	f.amount, f.hasAmount = findAmount(scopes)
	return f, nil
}

func succeeded(scopes []map[string]any) bool {
	for _, scope := range scopes {
		if strings.EqualFold(text(scope["status"]), "success") ||
			text(scope["resultCode"]) == "00" ||
			text(scope["errorCode"]) == "0" {
			return true
		}
	}
	return false
}

func findText(scopes []map[string]any, aliases []string) string {
	for _, scope := range scopes {
		for _, alias := range aliases {
			if v := strings.TrimSpace(text(scope[alias])); v != "" {
				return v
			}
		}
	}
	return ""
}

func findAmount(scopes []map[string]any) (int64, bool) {
	for _, scope := range scopes {
		for _, alias := range amountAliases {
			if amount, ok := parseAmount(text(scope[alias])); ok {
				return amount, true
			}
		}
	}
	return 0, false
}

// parseAmount truncates a decimal amount to whole dong. Amounts that do not fit
// an int64 are rejected.
func parseAmount(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v < 0 {
			return 0, false
		}
		return v, true
	}
	v, err := strconv.ParseFloat(s, 64)
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
