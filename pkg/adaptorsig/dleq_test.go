package adaptorsig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scriptless/adaptorsig-go/pkg/adaptorsig"
)

func TestDLEQProofRoundTrip(t *testing.T) {
	priv := randScalar(t)
	tweak := randScalar(t)
	pub := adaptorsig.ScalarBaseMult(&priv)
	T := adaptorsig.ScalarBaseMult(&tweak)
	Z := adaptorsig.ScalarMult(&priv, &T)

	proof := adaptorsig.GenProof(&priv, &Z, &pub, &T)
	assert.True(t, adaptorsig.VerifyProof(&pub, &Z, &T, &proof))
}

func TestDLEQRejectsTamperedTranscript(t *testing.T) {
	priv := randScalar(t)
	tweak := randScalar(t)
	pub := adaptorsig.ScalarBaseMult(&priv)
	T := adaptorsig.ScalarBaseMult(&tweak)
	Z := adaptorsig.ScalarMult(&priv, &T)
	one := scalarFromUint(1)

	proof := adaptorsig.GenProof(&priv, &Z, &pub, &T)
	proof.E.Add(&one)
	assert.False(t, adaptorsig.VerifyProof(&pub, &Z, &T, &proof))

	proof = adaptorsig.GenProof(&priv, &Z, &pub, &T)
	proof.I.Add(&one)
	assert.False(t, adaptorsig.VerifyProof(&pub, &Z, &T, &proof))
}

// A proof generated for Z = p*T must not verify a different statement.
func TestDLEQRejectsWrongStatement(t *testing.T) {
	priv := randScalar(t)
	tweak := randScalar(t)
	pub := adaptorsig.ScalarBaseMult(&priv)
	T := adaptorsig.ScalarBaseMult(&tweak)
	Z := adaptorsig.ScalarMult(&priv, &T)

	proof := adaptorsig.GenProof(&priv, &Z, &pub, &T)
	wrongZ := adaptorsig.AddPoints(&Z, &T)
	assert.False(t, adaptorsig.VerifyProof(&pub, &wrongZ, &T, &proof))
}

func TestDLEQProofsAreRandomized(t *testing.T) {
	priv := randScalar(t)
	tweak := randScalar(t)
	pub := adaptorsig.ScalarBaseMult(&priv)
	T := adaptorsig.ScalarBaseMult(&tweak)
	Z := adaptorsig.ScalarMult(&priv, &T)

	p1 := adaptorsig.GenProof(&priv, &Z, &pub, &T)
	p2 := adaptorsig.GenProof(&priv, &Z, &pub, &T)
	assert.False(t, p1.E.Equals(&p2.E) && p1.I.Equals(&p2.I))
}
