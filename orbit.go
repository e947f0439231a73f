package buddha

import "math"

// escapeRadiusSq is the squared bailout radius. Any iterate with
// |z|² > 4 is guaranteed to diverge, so the magnitude test avoids a
// square root in the hot loop.
const escapeRadiusSq = 4.0

// Iterate runs z ← z² + c from z = 0 for at most maxIter steps, appending
// each visited z-value to orbit. It returns the grown orbit and whether
// the seed escaped.
//
// The Buddhabrot plots the z-values visited by escaping orbits, so the
// recorded sequence is the iterates themselves, the escaping iterate
// included. Seeds that stay bounded for maxIter steps, and seeds whose
// iterates degenerate to NaN or infinity, return an empty orbit and
// escaped = false; their paths carry no evidence of divergence and must
// not contribute to the histogram.
//
// The returned slice shares orbit's backing array, so a caller can hold
// one preallocated buffer and reuse it across seeds:
//
//	orbit := make([]complex128, 0, maxIter)
//	for _, c := range seeds {
//	    var escaped bool
//	    orbit, escaped = buddha.Iterate(c, maxIter, orbit)
//	    ...
//	}
//
// maxIter = 0 is classified as bounded: no iterations were performed, so
// there is no evidence of escape.
func Iterate(c complex128, maxIter int, orbit []complex128) ([]complex128, bool) {
	orbit = orbit[:0]
	cr, ci := real(c), imag(c)
	var zr, zi float64
	for range maxIter {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if math.IsNaN(zr) || math.IsNaN(zi) || math.IsInf(zr, 0) || math.IsInf(zi, 0) {
			return orbit[:0], false
		}
		orbit = append(orbit, complex(zr, zi))
		if zr*zr+zi*zi > escapeRadiusSq {
			return orbit, true
		}
	}
	return orbit[:0], false
}
