package vector

import "math"

// EuclideanDistance returns the squared Euclidean distance between a and
// b. Squared, not rooted, since HNSW traversal only ever compares
// distances against each other and the square root is monotonic — this
// mirrors how the teacher's own EuclideanDistance skips the final Sqrt.
func EuclideanDistance(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// DotDistance returns the negative dot product of a and b. For unit
// vectors, maximizing the dot product (cosine similarity) is equivalent
// to minimizing its negation, so this fits the "smaller is closer"
// contract DistanceFunc requires without a separate similarity type.
func DotDistance(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return -sum
}

// CosineDistance returns 1 minus the cosine similarity of a and b. Unlike
// DotDistance it is well-defined for vectors that are not unit length,
// at the cost of a normalization pass per call.
func CosineDistance(a, b []float32) float32 {
	var dot, na, nb float32
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - dot/float32(math.Sqrt(float64(na))*math.Sqrt(float64(nb)))
}

// Normalize scales vec to unit length in place and returns it. A
// zero-length vector is left unchanged, since there is no well-defined
// unit direction for the origin.
func Normalize(vec []float32) []float32 {
	var sumSq float32
	for _, x := range vec {
		sumSq += x * x
	}
	if sumSq == 0 {
		return vec
	}
	norm := float32(math.Sqrt(float64(sumSq)))
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
