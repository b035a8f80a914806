package adaptorsig

import "crypto/sha256"

// ComputeChallenge computes the Fiat-Shamir challenge of the DLEQ transcript:
// SHA-256(G || T || P || Z || J || J') over uncompressed SEC1 encodings in
// exactly that order, reduced modulo the group order.
func ComputeChallenge(P, Z, T, J, JPrime *Point) Scalar {
	g := Generator()
	h := sha256.New()
	h.Write(encodeUncompressed(&g))
	h.Write(encodeUncompressed(T))
	h.Write(encodeUncompressed(P))
	h.Write(encodeUncompressed(Z))
	h.Write(encodeUncompressed(J))
	h.Write(encodeUncompressed(JPrime))
	var digest [sha256.Size]byte
	h.Sum(digest[:0])
	return hashToScalar(digest)
}

// GenProof produces a non-interactive Chaum-Pedersen DLEQ proof over the
// bases (G, T) that log_G(P) = log_T(Z) = priv: draw j uniformly, commit to
// J = j*G and J' = j*T, derive the challenge from the transcript and respond
// with i = j + e*priv.
//
// The prover randomness j is wiped before returning.
func GenProof(priv *Scalar, Z, P, T *Point) Proof {
	j := mustRandomScalar()
	J := ScalarBaseMult(&j)
	JPrime := ScalarMult(&j, T)
	e := ComputeChallenge(P, Z, T, &J, &JPrime)
	var i Scalar
	i.Mul2(&e, priv).Add(&j)
	j.Zero()
	return Proof{E: e, I: i}
}

// VerifyProof reports whether pi proves log_G(P) = log_T(Z). It reconstructs
// the commitments J = i*G - e*P and J' = i*T - e*Z and accepts iff the
// recomputed transcript challenge equals pi.E.
func VerifyProof(P, Z, T *Point, pi *Proof) bool {
	iG := ScalarBaseMult(&pi.I)
	eP := ScalarMult(&pi.E, P)
	J := SubPoints(&iG, &eP)
	iT := ScalarMult(&pi.I, T)
	eZ := ScalarMult(&pi.E, Z)
	JPrime := SubPoints(&iT, &eZ)
	e := ComputeChallenge(P, Z, T, &J, &JPrime)
	return e.Equals(&pi.E)
}
