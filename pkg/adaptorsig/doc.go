// Package adaptorsig implements adaptor signatures over the secp256k1 curve
// for the Schnorr and ECDSA signature schemes.
//
// An adaptor signature is a pre-signature bound to a public tweak point
// T = t*G. The pre-signature convinces a verifier that the signer knows a
// valid signature up to the unknown witness t, and once the pre-signature is
// completed into a full signature with t, anyone holding both objects can
// recover t. This sign-to-reveal property is the building block for atomic
// swaps, scriptless scripts and payment channels.
//
// The two schemes expose an identical surface but differ in how the tweak
// enters the algebra: Schnorr uses an additive tweak (s = s' + t) while ECDSA
// uses a multiplicative one (s = s' * t^-1). The ECDSA pre-signature carries
// an auxiliary point Z = p*T together with a Chaum-Pedersen DLEQ proof that
// binds Z to the signer's public key; without the proof the algebraic check
// alone is not sound.
//
// Every algorithm is a pure function over its inputs plus the operating
// system RNG. The package holds no locks and no mutable state, so callers may
// invoke the algorithms concurrently from independent goroutines.
package adaptorsig
