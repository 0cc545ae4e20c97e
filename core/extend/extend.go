// core/extend/extend.go
package extend

// DefaultSecondsPerKb is a common polymerase extension rate (~1 kb / 30 s).
const DefaultSecondsPerKb = 30.0

// Seconds estimates polymerase extension time for an amplicon of the given
// length. Non-positive rates select DefaultSecondsPerKb.
func Seconds(ampliconLength int, secondsPerKb float64) float64 {
	if ampliconLength <= 0 {
		return 0
	}
	if secondsPerKb <= 0 {
		secondsPerKb = DefaultSecondsPerKb
	}
	return float64(ampliconLength) / 1000.0 * secondsPerKb
}
