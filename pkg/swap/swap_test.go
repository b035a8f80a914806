package swap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptless/adaptorsig-go/pkg/adaptorsig"
	"github.com/scriptless/adaptorsig-go/pkg/swap"
)

// Runs the four-step swap under both schemes: every verification must pass
// and Bob's extracted witness must be Alice's tweak.
func TestAtomicSwapEndToEnd(t *testing.T) {
	for _, kind := range []adaptorsig.Kind{adaptorsig.KindSchnorr, adaptorsig.KindECDSA} {
		t.Run(kind.String(), func(t *testing.T) {
			scheme := adaptorsig.NewScheme(kind)

			alice, err := swap.NewAlice(scheme)
			require.NoError(t, err)
			defer alice.Close()
			bob, err := swap.NewBob(scheme)
			require.NoError(t, err)
			defer bob.Close()

			// Step 1: Alice pre-signs tx2 and shares T.
			tx2 := "Transaction id 2 :)"
			preA2, T, err := alice.GeneratePresig(tx2)
			require.NoError(t, err)

			// Step 2: Bob verifies and answers with a pre-signature on tx1.
			require.True(t, bob.VerifyPresig(preA2, &alice.PK, tx2, &T))
			tx1 := "Transaction id 1 :)"
			preB1, err := bob.GeneratePresig(tx1, &T)
			require.NoError(t, err)

			// Step 3: Alice verifies, signs tx1 and adapts Bob's pre-signature.
			require.True(t, alice.VerifyPresig(preB1, &bob.PK, tx1))
			sigA1, sigB1, err := alice.GenerateSigAndAdapt(tx1, preB1)
			require.NoError(t, err)

			// Step 4: Bob verifies the broadcast, extracts t, completes tx2.
			require.True(t, bob.VerifySigs(&alice.PK, tx1, &sigA1, &sigB1))
			witness := bob.ExtractSecret(&sigB1, preB1)
			W := adaptorsig.ScalarBaseMult(&witness)
			assert.True(t, adaptorsig.PointsEqual(&W, &T), "extracted witness does not match Alice's tweak")

			sigA2, sigB2, err := bob.GenerateSigAndAdapt(tx2, preA2, &witness)
			require.NoError(t, err)
			assert.True(t, scheme.VerifySign(&sigA2, &alice.PK, tx2))
			assert.True(t, scheme.VerifySign(&sigB2, &bob.PK, tx2))
		})
	}
}

// A pre-signature bound to Alice's tweak point must not verify against a
// different tweak point.
func TestSwapRejectsForeignTweak(t *testing.T) {
	scheme := adaptorsig.NewScheme(adaptorsig.KindSchnorr)

	alice, err := swap.NewAlice(scheme)
	require.NoError(t, err)
	defer alice.Close()
	bob, err := swap.NewBob(scheme)
	require.NoError(t, err)
	defer bob.Close()

	tx := "Transaction id 1 :)"
	pre, T, err := alice.GeneratePresig(tx)
	require.NoError(t, err)

	g := adaptorsig.Generator()
	foreignT := adaptorsig.AddPoints(&T, &g)
	assert.False(t, bob.VerifyPresig(pre, &alice.PK, tx, &foreignT))
}

// Signatures from one transaction must not complete the other.
func TestSwapRejectsCrossTransactionSignatures(t *testing.T) {
	scheme := adaptorsig.NewScheme(adaptorsig.KindSchnorr)

	alice, err := swap.NewAlice(scheme)
	require.NoError(t, err)
	defer alice.Close()
	bob, err := swap.NewBob(scheme)
	require.NoError(t, err)
	defer bob.Close()

	tx1 := "Transaction id 1 :)"
	tx2 := "Transaction id 2 :)"
	_, T, err := alice.GeneratePresig(tx2)
	require.NoError(t, err)
	preB1, err := bob.GeneratePresig(tx1, &T)
	require.NoError(t, err)
	sigA1, sigB1, err := alice.GenerateSigAndAdapt(tx1, preB1)
	require.NoError(t, err)

	assert.False(t, bob.VerifySigs(&alice.PK, tx2, &sigA1, &sigB1))
}
