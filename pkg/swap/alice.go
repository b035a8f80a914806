package swap

import (
	"fmt"

	"github.com/scriptless/adaptorsig-go/pkg/adaptorsig"
)

// Alice is the swap party that owns the adaptor witness. She keeps the tweak
// scalar t secret and publishes only its point T; revealing t is exactly what
// completing Bob's pre-signature does.
type Alice struct {
	scheme adaptorsig.Scheme
	sk     adaptorsig.Scalar
	t      adaptorsig.Scalar

	// PK is Alice's public signing key.
	PK adaptorsig.Point
	// T is the public tweak point t*G shared with Bob.
	T adaptorsig.Point
}

// NewAlice creates an Alice with a fresh key pair and a fresh adaptor witness
// under the given scheme.
func NewAlice(scheme adaptorsig.Scheme) (*Alice, error) {
	sk, err := adaptorsig.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	t, err := adaptorsig.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("generate adaptor witness: %w", err)
	}
	a := &Alice{
		scheme: scheme,
		sk:     sk,
		t:      t,
		PK:     adaptorsig.ScalarBaseMult(&sk),
		T:      adaptorsig.ScalarBaseMult(&t),
	}
	return a, nil
}

// GeneratePresig pre-signs tx under Alice's tweak point with a fresh nonce
// and returns the pre-signature together with T.
func (a *Alice) GeneratePresig(tx string) (*adaptorsig.PreSignature, adaptorsig.Point, error) {
	nonce, err := adaptorsig.RandomScalar()
	if err != nil {
		return nil, adaptorsig.Point{}, fmt.Errorf("generate nonce: %w", err)
	}
	defer adaptorsig.ZeroizeScalar(&nonce)
	pre := a.scheme.PreSign(&a.sk, tx, &a.T, &nonce)
	return &pre, a.T, nil
}

// VerifyPresig checks Bob's pre-signature on tx against his public key and
// Alice's tweak point.
func (a *Alice) VerifyPresig(pre *adaptorsig.PreSignature, bobPK *adaptorsig.Point, tx string) bool {
	return a.scheme.VerifyPreSign(bobPK, tx, &a.T, pre)
}

// GenerateSigAndAdapt signs tx with Alice's own key and completes Bob's
// pre-signature with the witness t. Broadcasting the adapted signature is
// the step that reveals t to Bob.
func (a *Alice) GenerateSigAndAdapt(tx string, bobPre *adaptorsig.PreSignature) (sigA, sigB adaptorsig.Signature, err error) {
	nonce, err := adaptorsig.RandomScalar()
	if err != nil {
		return adaptorsig.Signature{}, adaptorsig.Signature{}, fmt.Errorf("generate nonce: %w", err)
	}
	defer adaptorsig.ZeroizeScalar(&nonce)
	sigA = a.scheme.Sign(&a.sk, tx, &nonce)
	sigB = a.scheme.AdaptSignature(bobPre, &a.t)
	return sigA, sigB, nil
}

// Close wipes Alice's secret material. Alice must not be used afterwards.
func (a *Alice) Close() {
	adaptorsig.ZeroizeScalar(&a.sk)
	adaptorsig.ZeroizeScalar(&a.t)
}
