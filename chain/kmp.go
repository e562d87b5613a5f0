package chain

// buildFailure computes the KMP failure table for x, with the standard
// "skip equal characters" optimization: when x[j] and x[t] are equal, the
// failure value for j is inherited from t rather than pointing straight at
// t, since a mismatch at j would immediately mismatch at t too. The table
// has m+1 entries; failure[m] gives the automaton state to resume from
// after a full match.
func buildFailure(x []byte) []int32 {
	m := len(x)
	failure := make([]int32, m+1)
	failure[0] = -1

	j, t := 0, int32(-1)
	for j < m {
		for t > -1 && x[j] != x[t] {
			t = failure[t]
		}
		j++
		t++
		if j < m && x[j] == x[t] {
			failure[j] = failure[t]
		} else {
			failure[j] = t
		}
	}
	return failure
}
