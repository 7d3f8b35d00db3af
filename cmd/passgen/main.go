package main

import (
	"flag"
	"fmt"
	"log"

	"dealhub.backend/pkg/crypto"
)

func main() {
	password := flag.String("password", "", "password to hash (generated when empty)")
	flag.Parse()

	pw := *password
	if pw == "" {
		generated, err := crypto.GenerateTemporaryPassword()
		if err != nil {
			log.Fatalf("failed to generate password: %v", err)
		}
		pw = generated
	}

	hash, err := crypto.HashPassword(pw)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	fmt.Printf("PASSWORD=%s\n", pw)
	fmt.Printf("PASSWORD_HASH=%s\n", hash)
}
