// Package crypto implements the RSA payload helpers. Keys live as PEM
// files in a fixed secrets directory (see cmd/keygen) and are read on
// every call, never cached; the rest of the service treats ciphertext as
// opaque strings.
package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"os"
	"path/filepath"

	"github.com/arjunm-dev/cipherpost/internal/apperror"
)

const (
	publicKeyFile  = "public.pem"
	privateKeyFile = "private.pem"
)

// Service encrypts and decrypts payloads with the key pair stored under
// the secrets directory. RSA-OAEP with SHA-256, ciphertext in base64.
type Service struct {
	secretsDir string
}

func New(secretsDir string) *Service {
	return &Service{secretsDir: secretsDir}
}

// Encrypt encrypts message with the public key and returns base64.
func (s *Service) Encrypt(message string) (string, error) {
	pub, err := s.loadPublicKey()
	if err != nil {
		return "", err
	}

	encrypted, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, []byte(message), nil)
	if err != nil {
		return "", apperror.Wrap(apperror.CodeInternal, "encryption failed", err)
	}

	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// Decrypt decrypts a base64 ciphertext with the private key.
func (s *Service) Decrypt(encrypted string) (string, error) {
	priv, err := s.loadPrivateKey()
	if err != nil {
		return "", err
	}

	data, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", apperror.Wrap(apperror.CodeInternal, "decryption failed", err)
	}

	decrypted, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, data, nil)
	if err != nil {
		return "", apperror.Wrap(apperror.CodeInternal, "decryption failed", err)
	}

	return string(decrypted), nil
}

func (s *Service) loadPublicKey() (*rsa.PublicKey, error) {
	block, err := s.readPEM(publicKeyFile)
	if err != nil {
		return nil, err
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "failed to parse public key", err)
	}

	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, apperror.Internal("public key is not an RSA key")
	}
	return pub, nil
}

func (s *Service) loadPrivateKey() (*rsa.PrivateKey, error) {
	block, err := s.readPEM(privateKeyFile)
	if err != nil {
		return nil, err
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "failed to parse private key", err)
	}

	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, apperror.Internal("private key is not an RSA key")
	}
	return priv, nil
}

func (s *Service) readPEM(name string) (*pem.Block, error) {
	data, err := os.ReadFile(filepath.Join(s.secretsDir, name))
	if err != nil {
		return nil, apperror.Wrap(apperror.CodeInternal, "failed to read key file", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, apperror.Internal("key file contains no PEM block")
	}
	return block, nil
}
