// Command adaptorsig-go prints the library version and runs a quick
// sign-adapt-extract round trip for both schemes as a sanity check of the
// local build.
package main

import (
	"fmt"
	"log"

	"github.com/scriptless/adaptorsig-go/pkg/adaptorsig"
)

func main() {
	log.Printf("adaptorsig-go version: %s", adaptorsig.Version())

	for _, kind := range []adaptorsig.Kind{adaptorsig.KindSchnorr, adaptorsig.KindECDSA} {
		if err := selfCheck(adaptorsig.NewScheme(kind)); err != nil {
			log.Fatalf("%s self-check failed: %v", kind, err)
		}
		fmt.Printf("%s: ok\n", kind)
	}
}

func selfCheck(scheme adaptorsig.Scheme) error {
	priv, err := adaptorsig.RandomScalar()
	if err != nil {
		return err
	}
	t, err := adaptorsig.RandomScalar()
	if err != nil {
		return err
	}
	nonce, err := adaptorsig.RandomScalar()
	if err != nil {
		return err
	}
	pub := adaptorsig.ScalarBaseMult(&priv)
	T := adaptorsig.ScalarBaseMult(&t)

	const msg = "adaptorsig-go self check"
	sig := scheme.Sign(&priv, msg, &nonce)
	if !scheme.VerifySign(&sig, &pub, msg) {
		return fmt.Errorf("signature did not verify")
	}

	pre := scheme.PreSign(&priv, msg, &T, &nonce)
	if !scheme.VerifyPreSign(&pub, msg, &T, &pre) {
		return fmt.Errorf("pre-signature did not verify")
	}
	adapted := scheme.AdaptSignature(&pre, &t)
	if !scheme.VerifySign(&adapted, &pub, msg) {
		return fmt.Errorf("adapted signature did not verify")
	}
	witness := scheme.ExtractWitness(&adapted, &pre)
	if !witness.Equals(&t) {
		return fmt.Errorf("extracted witness does not match the tweak")
	}
	return nil
}
