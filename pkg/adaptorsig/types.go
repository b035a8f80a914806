package adaptorsig

// Signature is a completed signature (s, R). The zero value is (0, O) where O
// is the point at infinity.
type Signature struct {
	S Scalar
	R Point
}

// Proof is a Fiat-Shamir DLEQ transcript (challenge e, response i). Only
// ECDSA pre-signatures carry a meaningful proof.
type Proof struct {
	E Scalar
	I Scalar
}

// PreSignature is the output of pre-signing: the tuple (s', R') plus the
// auxiliary point Z and its binding proof. Schnorr leaves Z at the identity
// and Proof at zero; ECDSA sets Z = p*T and proves
// log_G(P) = log_T(Z) = p.
//
// A PreSignature verifies against (P, m, T) but is not a valid signature of
// m under P until it has been adapted with the witness t.
type PreSignature struct {
	S     Scalar
	R     Point
	Z     Point
	Proof Proof
}
