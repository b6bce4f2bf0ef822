package entities

import "strings"

var pairEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`)

// PairKey returns the canonical, order-independent key for a merchant and
// terminal identifier pair. Terminal hardware is known to sometimes transmit
// the two values swapped; every Sale and Deployment lookup and upsert goes
// through this key so a swapped pair still matches the same record.
// Delimiter characters inside an identifier are escaped, so ("A|B","C") and
// ("A","B|C") yield distinct keys.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return pairEscaper.Replace(a) + "|" + pairEscaper.Replace(b)
}
