package adaptorsig

import "fmt"

// Kind selects one of the two supported signature schemes.
type Kind int

const (
	// KindSchnorr selects the additive-tweak Schnorr scheme.
	KindSchnorr Kind = iota
	// KindECDSA selects the multiplicative-tweak ECDSA scheme.
	KindECDSA
)

// String returns the CLI spelling of the scheme tag.
func (k Kind) String() string {
	switch k {
	case KindECDSA:
		return "ecdsa"
	default:
		return "schnorr"
	}
}

// ParseKind maps the CLI spelling of a scheme to its tag. The accepted
// values are "schnorr" and "ecdsa".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "schnorr":
		return KindSchnorr, nil
	case "ecdsa":
		return KindECDSA, nil
	}
	return 0, fmt.Errorf("unknown scheme %q, must be %q or %q", s, "schnorr", "ecdsa")
}

// Scheme exposes the full adaptor-signature surface behind a tag chosen at
// construction time. Dispatch is a branch on the tag; the tag carries no
// secret state and never changes during a protocol run. The zero value is
// the Schnorr scheme.
type Scheme struct {
	kind Kind
}

// NewScheme returns the Scheme for the given tag.
func NewScheme(kind Kind) Scheme {
	return Scheme{kind: kind}
}

// Kind returns the scheme tag.
func (s Scheme) Kind() Kind {
	return s.kind
}

// Sign produces an ordinary signature of msg under priv with the nonce k.
func (s Scheme) Sign(priv *Scalar, msg string, k *Scalar) Signature {
	if s.kind == KindECDSA {
		return ECDSA{}.Sign(priv, msg, k)
	}
	return Schnorr{}.Sign(priv, msg, k)
}

// VerifySign reports whether sig is a valid signature of msg under pub.
func (s Scheme) VerifySign(sig *Signature, pub *Point, msg string) bool {
	if s.kind == KindECDSA {
		return ECDSA{}.VerifySign(sig, pub, msg)
	}
	return Schnorr{}.VerifySign(sig, pub, msg)
}

// PreSign produces a pre-signature of msg bound to the tweak point T.
func (s Scheme) PreSign(priv *Scalar, msg string, T *Point, k *Scalar) PreSignature {
	if s.kind == KindECDSA {
		return ECDSA{}.PreSign(priv, msg, T, k)
	}
	return Schnorr{}.PreSign(priv, msg, T, k)
}

// VerifyPreSign reports whether pre is a valid pre-signature of msg under pub
// and the tweak point T.
func (s Scheme) VerifyPreSign(pub *Point, msg string, T *Point, pre *PreSignature) bool {
	if s.kind == KindECDSA {
		return ECDSA{}.VerifyPreSign(pub, msg, T, pre)
	}
	return Schnorr{}.VerifyPreSign(pub, msg, T, pre)
}

// AdaptSignature completes a pre-signature with the witness t.
func (s Scheme) AdaptSignature(pre *PreSignature, t *Scalar) Signature {
	if s.kind == KindECDSA {
		return ECDSA{}.AdaptSignature(pre, t)
	}
	return Schnorr{}.AdaptSignature(pre, t)
}

// ExtractWitness recovers the witness t from a completed signature and the
// pre-signature it was adapted from.
func (s Scheme) ExtractWitness(sig *Signature, pre *PreSignature) Scalar {
	if s.kind == KindECDSA {
		return ECDSA{}.ExtractWitness(sig, pre)
	}
	return Schnorr{}.ExtractWitness(sig, pre)
}

// HashChallenge computes the scheme's challenge scalar for (R, P, msg).
func (s Scheme) HashChallenge(R, P *Point, msg string) Scalar {
	if s.kind == KindECDSA {
		return ECDSA{}.HashChallenge(R, P, msg)
	}
	return Schnorr{}.HashChallenge(R, P, msg)
}
