// One-off: AUTH_JWT_SECRET=... go run scripts/gentoken.go [user-id]
// Prints a bearer token for curl-testing protected routes.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Ashwanthreddy-18/primetrade-fullstack-app/internal/auth"
)

func main() {
	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "AUTH_JWT_SECRET is required")
		os.Exit(1)
	}
	userID := int64(1)
	if len(os.Args) > 1 {
		id, err := strconv.ParseInt(os.Args[1], 10, 64)
		if err != nil || id <= 0 {
			fmt.Fprintln(os.Stderr, "user-id must be a positive integer")
			os.Exit(1)
		}
		userID = id
	}
	tok, err := auth.NewTokenService([]byte(secret), 24*time.Hour).Issue(userID)
	if err != nil {
		panic(err)
	}
	fmt.Print(tok)
}
