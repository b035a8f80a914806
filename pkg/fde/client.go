package fde

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"

	"github.com/scriptless/adaptorsig-go/pkg/adaptorsig"
)

// Client is the data consumer. Its pre-signature over the ciphertext is the
// payment the server collects; extracting the adaptor witness from the
// completed signature hands the client the decryption key.
type Client struct {
	scheme adaptorsig.Scheme
	sk     adaptorsig.Scalar

	// PK is the client's public signing key.
	PK adaptorsig.Point
}

// NewClient creates a Client with a fresh key pair under the given scheme.
func NewClient(scheme adaptorsig.Scheme) (*Client, error) {
	sk, err := adaptorsig.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	return &Client{
		scheme: scheme,
		sk:     sk,
		PK:     adaptorsig.ScalarBaseMult(&sk),
	}, nil
}

// GeneratePresig pre-signs the hex-encoded ciphertext with a fresh nonce,
// using the server's encryption point as the tweak.
func (c *Client) GeneratePresig(ct []byte, serverPK *adaptorsig.Point) (*adaptorsig.PreSignature, error) {
	nonce, err := adaptorsig.RandomScalar()
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	defer adaptorsig.ZeroizeScalar(&nonce)
	pre := c.scheme.PreSign(&c.sk, hex.EncodeToString(ct), serverPK, &nonce)
	return &pre, nil
}

// VerifySigs checks the two signatures the server broadcast over the
// ciphertext: the server's own under its signing key and the completed
// client signature under the client's key.
func (c *Client) VerifySigs(serverSigPK *adaptorsig.Point, ct []byte, sigS, sigC *adaptorsig.Signature) bool {
	msg := hex.EncodeToString(ct)
	okS := c.scheme.VerifySign(sigS, serverSigPK, msg)
	okC := c.scheme.VerifySign(sigC, &c.PK, msg)
	return okS && okC
}

// ExtractSecret recovers the server's encryption scalar from the completed
// signature and the pre-signature it was adapted from.
func (c *Client) ExtractSecret(sig *adaptorsig.Signature, pre *adaptorsig.PreSignature) adaptorsig.Scalar {
	return c.scheme.ExtractWitness(sig, pre)
}

// DecryptData opens ct under AES-256-GCM keyed with the raw encoding of the
// recovered scalar.
func (c *Client) DecryptData(ct []byte, sk *adaptorsig.Scalar, nonce [NonceSize]byte) (string, error) {
	key := sk.Bytes()
	defer adaptorsig.ZeroizeBytes(key[:])

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("init gcm: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce[:], ct, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt data: %w", err)
	}
	return string(plaintext), nil
}

// Close wipes the client's secret material. The client must not be used
// afterwards.
func (c *Client) Close() {
	adaptorsig.ZeroizeScalar(&c.sk)
}
