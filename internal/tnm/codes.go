// Package tnm implements the AJCC 7th to 8th edition TNM recoding rules for
// HPV-associated oropharyngeal cancer. The package is pure: it consumes
// already-parsed record fields and returns converted codes, stage groups and
// validation flags without touching any I/O.
package tnm

// T7, N7 and M7 are the normalized 7th edition categories produced by the
// code normalizer. The zero value means the raw token was blank or
// unrecognized.
type T7 string

const (
	T7Zero   T7 = "T0"
	T7One    T7 = "T1"
	T7Two    T7 = "T2"
	T7Three  T7 = "T3"
	T7Four   T7 = "T4"
	T7FourA  T7 = "T4a"
	T7FourB  T7 = "T4b"
	T7InSitu T7 = "Tis"
	T7Unset  T7 = ""
)

type N7 string

const (
	N7Zero   N7 = "N0"
	N7One    N7 = "N1"
	N7TwoA   N7 = "N2a"
	N7TwoB   N7 = "N2b"
	N7TwoC   N7 = "N2c"
	N7Three  N7 = "N3"
	N7X      N7 = "NX" // node status recorded as unknown
	N7Unset  N7 = ""
)

type M7 string

const (
	M7Zero  M7 = "M0"
	M7One   M7 = "M1"
	M7Unset M7 = ""
)

// TCategory, NCategory and MCategory are the converted 8th edition
// categories. The zero value means no conversion could be produced.
type TCategory string

const (
	T0      TCategory = "T0"
	T1      TCategory = "T1"
	T2      TCategory = "T2"
	T3      TCategory = "T3"
	T4      TCategory = "T4"
	TInSitu TCategory = "Tis" // carcinoma in situ, no longer staged under the 8th edition
	TUnset  TCategory = ""
)

type NCategory string

const (
	N0     NCategory = "N0"
	N1     NCategory = "N1"
	N2     NCategory = "N2"
	N3     NCategory = "N3" // clinical axis only, the pathological axis collapses N3 away
	NUnset NCategory = ""

	// NNotApplicable marks the node field of the staging path that was not
	// selected for a record.
	NNotApplicable NCategory = "NA"
)

type MCategory string

const (
	M0     MCategory = "M0"
	M1     MCategory = "M1"
	MUnset MCategory = ""
)

// StagingPath identifies which staging branch applies to a record.
type StagingPath string

const (
	PathPathological StagingPath = "pathological"
	PathClinical     StagingPath = "clinical"
)

// StageGroup is the overall stage: an ordinal group, the in situ marker, or
// empty when the record could not be staged.
type StageGroup string

const (
	StageI      StageGroup = "1"
	StageII     StageGroup = "2"
	StageIII    StageGroup = "3"
	StageIV     StageGroup = "4"
	StageInSitu StageGroup = "IS"
	Unstaged    StageGroup = ""
)

// NodeCountUnknown is the sentinel for a positive-node count that was not
// recorded or fell outside the valid range.
const NodeCountUnknown = -1

// maxNodeCount is the highest positive-node count accepted as a real value.
// Counts above it are registry filler codes and are treated as not recorded.
const maxNodeCount = 94

// nodeCountValid reports whether count is a usable positive-node count.
func nodeCountValid(count int) bool {
	return count >= 0 && count <= maxNodeCount
}
