package swap

import (
	"fmt"

	"github.com/scriptless/adaptorsig-go/pkg/adaptorsig"
)

// Bob is the swap party without the witness. He learns t only by watching
// Alice complete his pre-signature, at which point he can complete hers.
type Bob struct {
	scheme adaptorsig.Scheme
	sk     adaptorsig.Scalar

	// PK is Bob's public signing key.
	PK adaptorsig.Point
}

// NewBob creates a Bob with a fresh key pair under the given scheme.
func NewBob(scheme adaptorsig.Scheme) (*Bob, error) {
	sk, err := adaptorsig.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	return &Bob{
		scheme: scheme,
		sk:     sk,
		PK:     adaptorsig.ScalarBaseMult(&sk),
	}, nil
}

// GeneratePresig pre-signs tx under Alice's tweak point with a fresh nonce.
func (b *Bob) GeneratePresig(tx string, T *adaptorsig.Point) (*adaptorsig.PreSignature, error) {
	nonce, err := adaptorsig.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	defer adaptorsig.ZeroizeScalar(&nonce)
	pre := b.scheme.PreSign(&b.sk, tx, T, &nonce)
	return &pre, nil
}

// VerifyPresig checks Alice's pre-signature on tx against her public key and
// tweak point.
func (b *Bob) VerifyPresig(pre *adaptorsig.PreSignature, alicePK *adaptorsig.Point, tx string, T *adaptorsig.Point) bool {
	return b.scheme.VerifyPreSign(alicePK, tx, T, pre)
}

// VerifySigs checks the two signatures Alice broadcast on tx: her own under
// her key and the adapted one under Bob's key.
func (b *Bob) VerifySigs(alicePK *adaptorsig.Point, tx string, sigA, sigB *adaptorsig.Signature) bool {
	okA := b.scheme.VerifySign(sigA, alicePK, tx)
	okB := b.scheme.VerifySign(sigB, &b.PK, tx)
	return okA && okB
}

// ExtractSecret recovers the adaptor witness from a broadcast signature and
// the pre-signature it completes.
func (b *Bob) ExtractSecret(sig *adaptorsig.Signature, pre *adaptorsig.PreSignature) adaptorsig.Scalar {
	return b.scheme.ExtractWitness(sig, pre)
}

// GenerateSigAndAdapt signs tx with Bob's own key and completes Alice's
// pre-signature with the extracted witness.
func (b *Bob) GenerateSigAndAdapt(tx string, alicePre *adaptorsig.PreSignature, t *adaptorsig.Scalar) (sigA, sigB adaptorsig.Signature, err error) {
	nonce, err := adaptorsig.RandomScalar()
	if err != nil {
		return adaptorsig.Signature{}, adaptorsig.Signature{}, fmt.Errorf("generate nonce: %w", err)
	}
	defer adaptorsig.ZeroizeScalar(&nonce)
	sigA = b.scheme.AdaptSignature(alicePre, t)
	sigB = b.scheme.Sign(&b.sk, tx, &nonce)
	return sigA, sigB, nil
}

// Close wipes Bob's secret material. Bob must not be used afterwards.
func (b *Bob) Close() {
	adaptorsig.ZeroizeScalar(&b.sk)
}
