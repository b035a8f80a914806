package adaptorsig

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/scriptless/adaptorsig-go/pkg/adaptorsig/logging"
)

// Scalar is an integer modulo the secp256k1 group order n.
type Scalar = btcec.ModNScalar

// Point is a secp256k1 group element in Jacobian projective coordinates. The
// zero value is the point at infinity.
type Point = btcec.JacobianPoint

// diag receives the degenerate-input diagnostics from XCoord and
// InvertScalar. The default slog backend writes to standard error.
var diag = logging.Component("curve")

// Generator returns the secp256k1 base point G.
func Generator() Point {
	var one Scalar
	one.SetInt(1)
	return ScalarBaseMult(&one)
}

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *Scalar) Point {
	var p Point
	btcec.ScalarBaseMultNonConst(k, &p)
	return p
}

// ScalarMult returns k*W.
func ScalarMult(k *Scalar, w *Point) Point {
	var p Point
	btcec.ScalarMultNonConst(k, w, &p)
	return p
}

// AddPoints returns a + b.
func AddPoints(a, b *Point) Point {
	var sum Point
	btcec.AddNonConst(a, b, &sum)
	return sum
}

// SubPoints returns a - b.
func SubPoints(a, b *Point) Point {
	neg := *b
	neg.Y.Normalize()
	neg.Y.Negate(1)
	neg.Y.Normalize()
	var diff Point
	btcec.AddNonConst(a, &neg, &diff)
	return diff
}

// PointsEqual reports whether a and b represent the same group element.
func PointsEqual(a, b *Point) bool {
	p, q := *a, *b
	p.ToAffine()
	q.ToAffine()
	return p.X.Equals(&q.X) && p.Y.Equals(&q.Y) && p.Z.Equals(&q.Z)
}

// isInfinity reports whether w is the point at infinity.
func isInfinity(w *Point) bool {
	return (w.X.IsZero() && w.Y.IsZero()) || w.Z.IsZero()
}

// XCoord returns the affine x-coordinate of W reduced modulo the group order
// n. x-coordinates above n wrap around, which is the canonical ECDSA
// behavior. The point at infinity has no x-coordinate; XCoord returns the
// zero scalar and writes a diagnostic to standard error, so a downstream
// verification fails by inequality instead of aborting.
func XCoord(w *Point) Scalar {
	p := *w
	p.ToAffine()
	if isInfinity(&p) {
		diag.Warn(context.Background(), "x-coordinate requested for the point at infinity")
		return Scalar{}
	}
	xBytes := p.X.Bytes()
	var x Scalar
	x.SetByteSlice(xBytes[:])
	return x
}

// InvertScalar returns s^-1 mod n. The zero scalar has no inverse;
// InvertScalar returns zero and writes a diagnostic to standard error, so a
// downstream verification fails by inequality instead of aborting.
func InvertScalar(s *Scalar) Scalar {
	if s.IsZero() {
		diag.Warn(context.Background(), "zero scalar is not invertible")
		return Scalar{}
	}
	var inv Scalar
	inv.InverseValNonConst(s)
	return inv
}

// RandomScalar draws a uniform scalar from the operating system RNG.
func RandomScalar() (Scalar, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return Scalar{}, fmt.Errorf("draw random scalar: %w", err)
	}
	s := priv.Key
	priv.Zero()
	return s, nil
}

// mustRandomScalar is RandomScalar for the callers that cannot propagate an
// error. An RNG failure is unrecoverable.
func mustRandomScalar() Scalar {
	s, err := RandomScalar()
	if err != nil {
		panic("adaptorsig: " + err.Error())
	}
	return s
}

// encodeUncompressed serializes W in uncompressed SEC1 form
// (0x04 || X || Y, 65 bytes), the encoding every transcript hash uses.
func encodeUncompressed(w *Point) []byte {
	p := *w
	p.ToAffine()
	return btcec.NewPublicKey(&p.X, &p.Y).SerializeUncompressed()
}

// hashToScalar reduces a 32-byte digest modulo the group order.
func hashToScalar(digest [sha256.Size]byte) Scalar {
	var s Scalar
	s.SetByteSlice(digest[:])
	return s
}
