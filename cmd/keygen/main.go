// Command keygen generates the RSA key pair the payload endpoints use.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/arjunm-dev/cipherpost/internal/crypto"
)

func main() {
	out := flag.String("out", "secrets", "directory to write the key pair to")
	bits := flag.Int("bits", 2048, "RSA modulus size")
	flag.Parse()

	if err := crypto.GenerateKeyPair(*out, *bits); err != nil {
		log.Fatalf("Key generation failed: %v", err)
	}

	log.Println("Keys generated successfully:")
	log.Println(" - Private key:", filepath.Join(*out, "private.pem"))
	log.Println(" - Public key: ", filepath.Join(*out, "public.pem"))
}
