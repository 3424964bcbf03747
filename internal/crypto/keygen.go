package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"

	"github.com/arjunm-dev/cipherpost/internal/apperror"
)

// GenerateKeyPair writes a fresh RSA key pair into dir as public.pem
// (PKIX) and private.pem (PKCS#8), the formats Encrypt and Decrypt read.
func GenerateKeyPair(dir string, bits int) error {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return apperror.Wrap(apperror.CodeInternal, "key generation failed", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperror.Wrap(apperror.CodeInternal, "key generation failed", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return apperror.Wrap(apperror.CodeInternal, "key generation failed", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return apperror.Wrap(apperror.CodeInternal, "key generation failed", err)
	}

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER})
	if err := os.WriteFile(filepath.Join(dir, privateKeyFile), privPEM, 0o600); err != nil {
		return apperror.Wrap(apperror.CodeInternal, "key generation failed", err)
	}

	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})
	if err := os.WriteFile(filepath.Join(dir, publicKeyFile), pubPEM, 0o644); err != nil {
		return apperror.Wrap(apperror.CodeInternal, "key generation failed", err)
	}

	return nil
}
