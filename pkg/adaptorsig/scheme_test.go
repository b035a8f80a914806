package adaptorsig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptless/adaptorsig-go/pkg/adaptorsig"
)

func TestParseKind(t *testing.T) {
	kind, err := adaptorsig.ParseKind("schnorr")
	require.NoError(t, err)
	assert.Equal(t, adaptorsig.KindSchnorr, kind)

	kind, err = adaptorsig.ParseKind("ecdsa")
	require.NoError(t, err)
	assert.Equal(t, adaptorsig.KindECDSA, kind)

	_, err = adaptorsig.ParseKind("ed25519")
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "schnorr", adaptorsig.KindSchnorr.String())
	assert.Equal(t, "ecdsa", adaptorsig.KindECDSA.String())
}

func TestSchemeZeroValueIsSchnorr(t *testing.T) {
	var scheme adaptorsig.Scheme
	assert.Equal(t, adaptorsig.KindSchnorr, scheme.Kind())
}

// The dispatch type must run the same algorithms as the underlying scheme
// implementations end to end.
func TestSchemeDispatchRoundTrip(t *testing.T) {
	for _, kind := range []adaptorsig.Kind{adaptorsig.KindSchnorr, adaptorsig.KindECDSA} {
		t.Run(kind.String(), func(t *testing.T) {
			scheme := adaptorsig.NewScheme(kind)
			priv := randScalar(t)
			tweak := randScalar(t)
			nonce := randScalar(t)
			pub := adaptorsig.ScalarBaseMult(&priv)
			T := adaptorsig.ScalarBaseMult(&tweak)

			msg := "Dispatch round trip"
			sig := scheme.Sign(&priv, msg, &nonce)
			require.True(t, scheme.VerifySign(&sig, &pub, msg))

			pre := scheme.PreSign(&priv, msg, &T, &nonce)
			require.True(t, scheme.VerifyPreSign(&pub, msg, &T, &pre))

			adapted := scheme.AdaptSignature(&pre, &tweak)
			require.True(t, scheme.VerifySign(&adapted, &pub, msg))

			extracted := scheme.ExtractWitness(&adapted, &pre)
			require.True(t, extracted.Equals(&tweak))
		})
	}
}

// Schnorr dispatch must agree with the concrete implementation on identical
// inputs; the algorithms are deterministic once the nonce is fixed.
func TestSchemeDispatchMatchesSchnorr(t *testing.T) {
	scheme := adaptorsig.NewScheme(adaptorsig.KindSchnorr)
	schnorr := adaptorsig.Schnorr{}
	priv := randScalar(t)
	nonce := randScalar(t)

	msg := "Dispatch equivalence"
	viaScheme := scheme.Sign(&priv, msg, &nonce)
	direct := schnorr.Sign(&priv, msg, &nonce)
	assert.True(t, viaScheme.S.Equals(&direct.S))
	assert.True(t, adaptorsig.PointsEqual(&viaScheme.R, &direct.R))
}
