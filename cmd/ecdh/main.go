// Command ecdh runs an Elliptic Curve Diffie-Hellman key exchange between
// two locally generated key pairs and verifies both sides derive the same
// secret. It exits non-zero if any step fails.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/smallyu/go-ecdh/internal/crypto/weierstrass"
	"github.com/smallyu/go-ecdh/pkg/ecdh"
)

func main() {
	curveName := flag.String("curve", "secp192k1",
		"named curve to use (one of: "+strings.Join(weierstrass.Names(), ", ")+")")
	verbose := flag.Bool("v", false, "print keys and the derived secret")
	flag.Parse()

	curve, err := weierstrass.ByName(*curveName)
	if err != nil {
		log.Fatalf("ecdh: %v", err)
	}

	alice, err := ecdh.GenerateKeyPair(rand.Reader, curve)
	if err != nil {
		log.Fatalf("ecdh: generating Alice's key pair: %v", err)
	}
	bob, err := ecdh.GenerateKeyPair(rand.Reader, curve)
	if err != nil {
		log.Fatalf("ecdh: generating Bob's key pair: %v", err)
	}

	if *verbose {
		fmt.Printf("Alice's private key is %s\n", alice.Private.Text(16))
		fmt.Printf("Alice's public key is  %s\n", alice.PublicHex)
		fmt.Println("-------")
		fmt.Printf("Bob's private key is   %s\n", bob.Private.Text(16))
		fmt.Printf("Bob's public key is    %s\n", bob.PublicHex)
		fmt.Println("-------")
	}

	aliceSecret, err := alice.SharedSecret(bob.PublicHex)
	if err != nil {
		log.Fatalf("ecdh: deriving Alice's secret: %v", err)
	}
	bobSecret, err := bob.SharedSecret(alice.PublicHex)
	if err != nil {
		log.Fatalf("ecdh: deriving Bob's secret: %v", err)
	}

	if aliceSecret != bobSecret {
		log.Fatalf("ecdh: secrets disagree on %s:\n  alice: %s\n  bob:   %s",
			curve.Name, aliceSecret, bobSecret)
	}

	if *verbose {
		fmt.Printf("Alice's secret is %s\n", aliceSecret)
		fmt.Printf("Bob's secret is   %s\n", bobSecret)
	}
	fmt.Printf("shared secret agreed on %s\n", curve.Name)
}
