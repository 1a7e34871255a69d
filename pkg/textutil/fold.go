// Package textutil normaliza texto para pesquisas sem acentos nem maiúsculas
// ("Betoneira" == "betoneira", "Gasóleo" == "gasoleo").
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold remove marcas diacríticas e passa a minúsculas.
func Fold(s string) string {
	// transform.Chain guarda estado: um por chamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// MatchAny indica se query (já dobrada ou não) aparece em algum dos campos.
// Query vazia corresponde sempre.
func MatchAny(query string, fields ...string) bool {
	q := Fold(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), q) {
			return true
		}
	}
	return false
}
