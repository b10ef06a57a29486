package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"campustime.com/campustime/security"
)

// Mints a session token for local API testing. The signing secret comes from
// CAMPUSTIME_SIGNING_SECRET, base64-encoded.
func main() {
	username := flag.String("username", "dev", "username claim")
	role := flag.String("role", "Faculty", "role claim (Faculty or Finance)")
	userID := flag.Uint("id", 1, "user id claim")
	expires := flag.Int64("expires", 8*60*60, "lifetime in seconds")
	flag.Parse()

	secret := os.Getenv("CAMPUSTIME_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("CAMPUSTIME_SIGNING_SECRET is not set")
	}

	token, err := security.CreateSessionToken(&security.Session{
		UserID:   uint(*userID),
		Username: *username,
		Role:     *role,
	}, secret, *expires)
	if err != nil {
		log.Fatalf("create token: %v", err)
	}
	fmt.Println(token)
}
