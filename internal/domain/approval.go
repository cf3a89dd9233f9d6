package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Canonical Aprobado tokens written to storage.
const (
	ApprovedToken   = "True"
	UnapprovedToken = "False"
)

var approvalTokens = map[string]bool{
	"sí":    true,
	"si":    true,
	"true":  true,
	"yes":   true,
	"1":     true,
	"no":    false,
	"false": false,
	"0":     false,
}

// ParseApproval reads a stored approval token. Unknown or empty tokens are false.
func ParseApproval(s string) bool {
	folded := cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
	return approvalTokens[folded]
}

// FormatApproval returns the canonical token for v.
func FormatApproval(v bool) string {
	if v {
		return ApprovedToken
	}
	return UnapprovedToken
}
