package adaptorsig

import "crypto/sha256"

// Schnorr implements the adaptor signature scheme with an additive tweak.
//
// An ordinary signature satisfies s*G = R + e*P with e = H(R || P || m). A
// pre-signature commits to the shifted nonce point R' = r'*G + T and
// satisfies s'*G = (R' - T) + e*P, so adding the witness t to s' yields a
// signature that verifies under the same R = R'. A verifier cannot tell an
// adapted signature from a natively signed one.
type Schnorr struct{}

// HashChallenge computes the challenge scalar e = H(R || P || m) where H is
// SHA-256 over the uncompressed SEC1 encodings of R and P followed by the
// message bytes, reduced modulo the group order.
//
// Empty messages are a programming error and panic.
func (Schnorr) HashChallenge(R, P *Point, msg string) Scalar {
	if msg == "" {
		panic("adaptorsig: message cannot be empty")
	}
	h := sha256.New()
	h.Write(encodeUncompressed(R))
	h.Write(encodeUncompressed(P))
	h.Write([]byte(msg))
	var digest [sha256.Size]byte
	h.Sum(digest[:0])
	return hashToScalar(digest)
}

// Sign produces an ordinary Schnorr signature of msg under the secret key
// priv with the nonce k: R = k*G, s = k + e*priv.
//
// The nonce must be a freshly drawn uniform scalar. Reusing a nonce across
// two messages leaks the secret key.
func (sch Schnorr) Sign(priv *Scalar, msg string, k *Scalar) Signature {
	if msg == "" {
		panic("adaptorsig: message cannot be empty")
	}
	R := ScalarBaseMult(k)
	P := ScalarBaseMult(priv)
	e := sch.HashChallenge(&R, &P, msg)
	var s Scalar
	s.Mul2(&e, priv).Add(k)
	return Signature{S: s, R: R}
}

// VerifySign reports whether sig is a valid Schnorr signature of msg under
// the public key pub, i.e. whether s*G = R + e*pub.
func (sch Schnorr) VerifySign(sig *Signature, pub *Point, msg string) bool {
	e := sch.HashChallenge(&sig.R, pub, msg)
	lhs := ScalarBaseMult(&sig.S)
	eP := ScalarMult(&e, pub)
	rhs := AddPoints(&sig.R, &eP)
	return PointsEqual(&lhs, &rhs)
}

// PreSign produces a pre-signature of msg bound to the tweak point T:
// R' = r'*G + T, s' = r' + e*priv with e = H(R' || P || msg). The auxiliary
// point and proof stay at their zero values; only ECDSA needs them.
func (sch Schnorr) PreSign(priv *Scalar, msg string, T *Point, rPrime *Scalar) PreSignature {
	if msg == "" {
		panic("adaptorsig: message cannot be empty")
	}
	rG := ScalarBaseMult(rPrime)
	R := AddPoints(&rG, T)
	P := ScalarBaseMult(priv)
	e := sch.HashChallenge(&R, &P, msg)
	var s Scalar
	s.Mul2(&e, priv).Add(rPrime)
	return PreSignature{S: s, R: R}
}

// VerifyPreSign reports whether pre is a valid pre-signature of msg under the
// public key pub and the tweak point T, i.e. whether
// s'*G = (R' - T) + e*pub.
func (sch Schnorr) VerifyPreSign(pub *Point, msg string, T *Point, pre *PreSignature) bool {
	e := sch.HashChallenge(&pre.R, pub, msg)
	lhs := ScalarBaseMult(&pre.S)
	shifted := SubPoints(&pre.R, T)
	eP := ScalarMult(&e, pub)
	rhs := AddPoints(&shifted, &eP)
	return PointsEqual(&lhs, &rhs)
}

// AdaptSignature completes a pre-signature with the witness t: s = s' + t.
func (Schnorr) AdaptSignature(pre *PreSignature, t *Scalar) Signature {
	var s Scalar
	s.Add2(&pre.S, t)
	return Signature{S: s, R: pre.R}
}

// ExtractWitness recovers the witness from a completed signature and the
// pre-signature it was adapted from: t = s - s'.
func (Schnorr) ExtractWitness(sig *Signature, pre *PreSignature) Scalar {
	var t Scalar
	t.NegateVal(&pre.S).Add(&sig.S)
	return t
}
