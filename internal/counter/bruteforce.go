package counter

// CountBruteForce tests every integer in [1, upperBound] against every
// divisor. It is the reference the enumerating counters are checked against
// and costs O(upperBound * len(divisors)).
func CountBruteForce(divisors []int64, upperBound int64) (int64, error) {
	if err := Validate(divisors, upperBound, 0); err != nil {
		return 0, err
	}
	var count int64
	for x := int64(1); x <= upperBound; x++ {
		for _, d := range divisors {
			if x%d == 0 {
				count++
				break
			}
		}
	}
	return count, nil
}
