package tnm

// SelectPath decides whether a record is staged pathologically or clinically.
// A usable positive-node count makes the record eligible for pathological
// staging no matter what the raw pathological-N text says; without a count the
// pathological branch is only usable when the pathological-N token normalizes
// to a real category rather than blank or "node status unknown".
func SelectPath(rawPathN string, nodeCount int) StagingPath {
	if nodeCountValid(nodeCount) {
		return PathPathological
	}
	if n := NormalizeN(rawPathN); n != N7Unset && n != N7X {
		return PathPathological
	}
	return PathClinical
}
