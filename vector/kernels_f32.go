// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - 4-lane chunked kernels for float32 element-wise arithmetic.
//   - Each full chunk is loaded into a [lanes]float32 register block, computed
//     lane by lane, and stored back. The final partial chunk is padded with
//     the operation's identity (0 for add/sub/neg, 1 for mul/div) and only the
//     used lanes are written.
//
// Every lane performs the same single IEEE-754 operation as the scalar loop,
// so results are bit-identical to it. The chunked layout keeps the loop
// shape the Go compiler can bounds-check-eliminate and leaves room for an
// assembly backend behind the same signatures.

package vector

// lanes is the register width in float32 elements.
const lanes = 4

// Identity paddings for the tail chunk.
const (
	padAdditive       float32 = 0
	padMultiplicative float32 = 1
)

// load fills a register block from src starting at off; missing lanes get pad.
func load(src []float32, off int, pad float32) (r [lanes]float32, used int) {
	used = len(src) - off
	if used > lanes {
		used = lanes
	}
	for l := 0; l < lanes; l++ {
		if l < used {
			r[l] = src[off+l]
		} else {
			r[l] = pad
		}
	}

	return r, used
}

// store writes the first used lanes of r into dst at off.
func store(dst []float32, off int, r [lanes]float32, used int) {
	for l := 0; l < used; l++ {
		dst[off+l] = r[l]
	}
}

// binaryF32x4 applies fn lane-wise over x and y into dst.
// Preconditions: len(dst) == len(x) == len(y).
func binaryF32x4(dst, x, y []float32, pad float32, fn func(a, b [lanes]float32) [lanes]float32) {
	n := len(dst)
	full := n - n%lanes
	var i int
	// Full chunks: no padding needed.
	for i = 0; i < full; i += lanes {
		a := [lanes]float32{x[i], x[i+1], x[i+2], x[i+3]}
		b := [lanes]float32{y[i], y[i+1], y[i+2], y[i+3]}
		r := fn(a, b)
		dst[i], dst[i+1], dst[i+2], dst[i+3] = r[0], r[1], r[2], r[3]
	}
	// Tail chunk.
	if i < n {
		a, used := load(x, i, pad)
		b, _ := load(y, i, pad)
		store(dst, i, fn(a, b), used)
	}
}

func addF32x4(dst, x, y []float32) {
	binaryF32x4(dst, x, y, padAdditive, func(a, b [lanes]float32) [lanes]float32 {
		return [lanes]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
	})
}

func subF32x4(dst, x, y []float32) {
	binaryF32x4(dst, x, y, padAdditive, func(a, b [lanes]float32) [lanes]float32 {
		return [lanes]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
	})
}

func mulF32x4(dst, x, y []float32) {
	binaryF32x4(dst, x, y, padMultiplicative, func(a, b [lanes]float32) [lanes]float32 {
		return [lanes]float32{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
	})
}

// divF32x4 pads with 1 so unused lanes compute 1/1 instead of 0/0.
func divF32x4(dst, x, y []float32) {
	binaryF32x4(dst, x, y, padMultiplicative, func(a, b [lanes]float32) [lanes]float32 {
		return [lanes]float32{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
	})
}

// scaleF32x4 computes dst[i] = c * x[i].
func scaleF32x4(dst, x []float32, c float32) {
	k := [lanes]float32{c, c, c, c}
	binaryF32x4(dst, x, x, padAdditive, func(a, _ [lanes]float32) [lanes]float32 {
		return [lanes]float32{k[0] * a[0], k[1] * a[1], k[2] * a[2], k[3] * a[3]}
	})
}

// negF32x4 computes dst[i] = -x[i].
func negF32x4(dst, x []float32) {
	binaryF32x4(dst, x, x, padAdditive, func(a, _ [lanes]float32) [lanes]float32 {
		return [lanes]float32{-a[0], -a[1], -a[2], -a[3]}
	})
}

// eqF32x4 reports exact lane-wise equality of x and y (equal lengths assumed).
// Padded lanes are never compared.
func eqF32x4(x, y []float32) bool {
	n := len(x)
	for i := 0; i < n; i += lanes {
		a, used := load(x, i, padAdditive)
		b, _ := load(y, i, padAdditive)
		for l := 0; l < used; l++ {
			if a[l] != b[l] {
				return false
			}
		}
	}

	return true
}
