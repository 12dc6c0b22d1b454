package district

import (
	"strconv"
	"unicode"
)

// District is the static identity of a legislative constituency
type District struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// FromINSEE builds a District from an administrative constituency code.
// Metropolitan and Corsican codes carry a redundant third digit ("01001" ->
// "0101", "2A001" -> "2A01"); overseas and special codes are kept as-is.
func FromINSEE(code, name string) District {
	return District{ID: normalizeINSEE(code), Name: name}
}

func normalizeINSEE(code string) string {
	if len(code) < 3 || code[2] != '0' {
		return code
	}
	if !unicode.IsDigit(rune(code[1])) {
		return code[:2] + code[3:]
	}
	department, err := strconv.Atoi(code[:2])
	if err != nil || department > 95 {
		return code
	}
	return code[:2] + code[3:]
}

// IsOverseas reports whether the district lies outside metropolitan France
func (d District) IsOverseas() bool {
	return len(d.ID) > 4
}
