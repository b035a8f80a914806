package adaptorsig

import "crypto/sha256"

// ECDSA implements the adaptor signature scheme with a multiplicative tweak.
//
// The pre-signature nonce point lives in the group generated by the tweak
// point: R' = k*T, so the completed signature s = s' * t^-1 verifies under
// the standard ECDSA equation with the effective nonce k*t. The standard
// verification equation alone does not bind the pre-signature to the
// signer's key, so the pre-signature carries Z = p*T together with a DLEQ
// proof that log_G(P) = log_T(Z).
//
// Callers must supply a tweak point T distinct from the identity; R' = k*T
// has no x-coordinate otherwise.
type ECDSA struct{}

// HashChallenge computes the challenge scalar e = H(msg) where H is SHA-256
// reduced modulo the group order. ECDSA hashes only the message; R and P are
// accepted for surface uniformity with Schnorr and ignored.
//
// Empty messages are a programming error and panic.
func (ECDSA) HashChallenge(_, _ *Point, msg string) Scalar {
	if msg == "" {
		panic("adaptorsig: message cannot be empty")
	}
	return hashToScalar(sha256.Sum256([]byte(msg)))
}

// Sign produces an ordinary ECDSA signature of msg under the secret key priv
// with the nonce k: R = k*G, r = x(R), s = k^-1 * (e + r*priv).
func (ec ECDSA) Sign(priv *Scalar, msg string, k *Scalar) Signature {
	if msg == "" {
		panic("adaptorsig: message cannot be empty")
	}
	R := ScalarBaseMult(k)
	P := ScalarBaseMult(priv)
	r := XCoord(&R)
	e := ec.HashChallenge(&R, &P, msg)
	kInv := InvertScalar(k)
	var rp, s Scalar
	rp.Mul2(&r, priv)
	s.Add2(&e, &rp).Mul(&kInv)
	return Signature{S: s, R: R}
}

// VerifySign reports whether sig is a valid ECDSA signature of msg under the
// public key pub, i.e. whether x((e*G + r*pub) * s^-1) = r.
func (ec ECDSA) VerifySign(sig *Signature, pub *Point, msg string) bool {
	r := XCoord(&sig.R)
	e := ec.HashChallenge(&sig.R, pub, msg)
	sInv := InvertScalar(&sig.S)
	eG := ScalarBaseMult(&e)
	rP := ScalarMult(&r, pub)
	sum := AddPoints(&eG, &rP)
	v := ScalarMult(&sInv, &sum)
	vx := XCoord(&v)
	return vx.Equals(&r)
}

// PreSign produces a pre-signature of msg bound to the tweak point T:
// R' = k*T, r' = x(R'), s' = k^-1 * (e + r'*priv), plus the auxiliary point
// Z = priv*T and a DLEQ proof binding Z to the signer's public key.
func (ec ECDSA) PreSign(priv *Scalar, msg string, T *Point, k *Scalar) PreSignature {
	if msg == "" {
		panic("adaptorsig: message cannot be empty")
	}
	R := ScalarMult(k, T)
	r := XCoord(&R)
	P := ScalarBaseMult(priv)
	e := ec.HashChallenge(&R, &P, msg)
	kInv := InvertScalar(k)
	var rp, s Scalar
	rp.Mul2(&r, priv)
	s.Add2(&e, &rp).Mul(&kInv)
	Z := ScalarMult(priv, T)
	return PreSignature{
		S:     s,
		R:     R,
		Z:     Z,
		Proof: GenProof(priv, &Z, &P, T),
	}
}

// VerifyPreSign reports whether pre is a valid pre-signature of msg under the
// public key pub and the tweak point T. Both the algebraic relation
// x((e*T + r'*Z) * s'^-1) = r' and the DLEQ proof must hold.
func (ec ECDSA) VerifyPreSign(pub *Point, msg string, T *Point, pre *PreSignature) bool {
	r := XCoord(&pre.R)
	e := ec.HashChallenge(&pre.R, pub, msg)
	sInv := InvertScalar(&pre.S)
	eT := ScalarMult(&e, T)
	rZ := ScalarMult(&r, &pre.Z)
	sum := AddPoints(&eT, &rZ)
	v := ScalarMult(&sInv, &sum)
	vx := XCoord(&v)
	return vx.Equals(&r) && VerifyProof(pub, &pre.Z, T, &pre.Proof)
}

// AdaptSignature completes a pre-signature with the witness t:
// s = s' * t^-1, R = R'. The completed signature satisfies the standard
// ECDSA relation with the effective nonce k*t.
func (ECDSA) AdaptSignature(pre *PreSignature, t *Scalar) Signature {
	tInv := InvertScalar(t)
	var s Scalar
	s.Mul2(&pre.S, &tInv)
	return Signature{S: s, R: pre.R}
}

// ExtractWitness recovers the witness from a completed signature and the
// pre-signature it was adapted from: t = s' * s^-1.
func (ECDSA) ExtractWitness(sig *Signature, pre *PreSignature) Scalar {
	sInv := InvertScalar(&sig.S)
	var t Scalar
	t.Mul2(&pre.S, &sInv)
	return t
}
