// Package identity derives stable deduplication keys for leads.
package identity

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// keyLen is the number of hex characters kept from the digest. Sixteen
// characters (64 bits) keeps accidental collisions negligible at this
// corpus size while staying index-friendly.
const keyLen = 16

// SourceID derives the deduplication key for a lead from its source name
// and one or more natural-key parts (filing number, DOT number, inspection
// number, or the company name itself when nothing better exists). Identical
// inputs always produce identical output.
//
// When a source falls back to the company name, two unrelated entities that
// share a name collapse into one lead after the first insert. That precision
// loss is accepted; adapters must pick the lowest-collision key their source
// offers.
func SourceID(source string, parts ...string) string {
	combined := source
	for _, p := range parts {
		combined += "_" + p
	}
	sum := md5.Sum([]byte(combined))
	return hex.EncodeToString(sum[:])[:keyLen]
}

// NaturalKey picks the natural key for a candidate: the explicit key when
// the source has one, otherwise the trimmed company name.
func NaturalKey(explicit, companyName string) string {
	if k := strings.TrimSpace(explicit); k != "" {
		return k
	}
	return strings.TrimSpace(companyName)
}
