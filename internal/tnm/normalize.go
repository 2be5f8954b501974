package tnm

import (
	"strconv"
	"strings"
)

// The normalizer maps raw free-text codes to 7th edition categories through
// declarative alias tables. Matching is case-insensitive and ignores spaces,
// dots and hyphens, so "T2a", "t2A" and "2a" all land on the same category.

var tAliases = map[string]T7{
	"0": T7Zero, "t0": T7Zero,
	"1": T7One, "t1": T7One,
	"2": T7Two, "t2": T7Two,
	"3": T7Three, "t3": T7Three,
	"4": T7Four, "t4": T7Four,
	"4a": T7FourA, "t4a": T7FourA,
	"4b": T7FourB, "t4b": T7FourB,
	"is": T7InSitu, "tis": T7InSitu, "insitu": T7InSitu,
	"cis": T7InSitu, "carcinomainsitu": T7InSitu,
}

var nAliases = map[string]N7{
	"0": N7Zero, "n0": N7Zero,
	"1": N7One, "n1": N7One,
	"2a": N7TwoA, "n2a": N7TwoA,
	"2b": N7TwoB, "n2b": N7TwoB,
	"2c": N7TwoC, "n2c": N7TwoC,
	"3": N7Three, "n3": N7Three,
	"3a": N7Three, "n3a": N7Three,
	"3b": N7Three, "n3b": N7Three,
	"x": N7X, "nx": N7X,
}

var mAliases = map[string]M7{
	"0": M7Zero, "m0": M7Zero,
	"1": M7One, "m1": M7One,
}

// foldToken canonicalizes a raw code for alias lookup.
func foldToken(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		switch r {
		case ' ', '\t', '.', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeT maps a raw T token to its 7th edition category. Blank or
// unrecognized input yields T7Unset; whether that is an error depends on the
// staging path selected for the record and is decided by the validator.
func NormalizeT(raw string) T7 {
	return tAliases[foldToken(raw)]
}

// NormalizeN maps a raw N token to its 7th edition category. The table is
// shared by the clinical and pathological axes; the edition converter applies
// the axis-specific rules afterwards. Bare "N2" is deliberately absent: the
// 7th edition subdivisions map to different 8th edition categories, so a raw
// token without the subdivision letter cannot be converted unambiguously.
func NormalizeN(raw string) N7 {
	return nAliases[foldToken(raw)]
}

// NormalizeM maps a raw metastasis token to its 7th edition category.
func NormalizeM(raw string) M7 {
	return mAliases[foldToken(raw)]
}

// ParseNodeCount parses the raw positive-node count field. Blank, non-numeric
// and out-of-range values all collapse to NodeCountUnknown; registry exports
// use codes above 94 to mean "not examined / not recorded" and those must not
// be mistaken for real counts.
func ParseNodeCount(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NodeCountUnknown
	}
	count, err := strconv.Atoi(s)
	if err != nil || !nodeCountValid(count) {
		return NodeCountUnknown
	}
	return count
}
