package akirakey_test

import (
	"bytes"
	"fmt"

	"github.com/yndnr/akirakey/pkg/akirakey"
)

func ExampleGenerate() {
	key, err := akirakey.Generate()
	if err != nil {
		panic(err)
	}
	fmt.Println(len(key), key[:len(akirakey.Prefix)])
	// Output: 54 akira_rust_
}

func ExampleNew() {
	entropy := make([]byte, akirakey.EntropySize)
	for i := range entropy {
		entropy[i] = byte(i)
	}

	g := akirakey.New(akirakey.WithEntropySource(bytes.NewReader(entropy)))
	key, err := g.Generate()
	if err != nil {
		panic(err)
	}
	fmt.Println(key)
	fmt.Println(akirakey.Fingerprint(key))
	// Output:
	// akira_rust_AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8
	// a936a6fdf7b4a3b7a25c82b02d4c00269b2e0bb63ef7e2e93261f1bf98567dce
}
