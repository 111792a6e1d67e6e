// Command genjwt registers a user with a pin and prints id and access tokens
// for calling the wallet API locally.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"tokenrelay/internal/db"
	"tokenrelay/internal/identity"
	"tokenrelay/internal/repository"
	"tokenrelay/pkg/jwt"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "genjwt: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	userID := flag.String("user-id", uuid.NewString(), "user id used as token subject")
	username := flag.String("username", "local-user", "user name")
	pin := flag.String("pin", "", "pin code to register, skipped when empty")
	pinTTL := flag.Duration("pin-ttl", 24*time.Hour, "pin validity")
	ttl := flag.Duration("ttl", time.Hour, "token validity")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}

	if *pin != "" {
		if err := registerPin(*userID, *username, *pin, *pinTTL); err != nil {
			return err
		}
	}

	jwtService := jwt.NewJWTService([]byte(secret))
	for _, use := range []string{jwt.UseID, jwt.UseAccess} {
		token := jwtService.Generate(jwt.TokenInfo{
			UserName:   *username,
			Subject:    *userID,
			Use:        use,
			Expiration: *ttl,
		})
		signed, err := jwtService.Sign(token)
		if err != nil {
			return err
		}
		fmt.Printf("%s_token=%s\n", use, signed)
	}
	fmt.Printf("user_id=%s\n", *userID)

	return nil
}

func registerPin(userID, username, pin string, ttl time.Duration) error {
	dsn := os.Getenv("DB_CONNECTION_URL")
	if dsn == "" {
		return fmt.Errorf("DB_CONNECTION_URL is not set")
	}

	dbConn, err := db.NewPostgresDB(dsn)
	if err != nil {
		return err
	}

	ctx := context.Background()
	repo := repository.NewWalletRepository(dbConn)
	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	hash, err := identity.HashPin(pin)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(ttl)
	return repo.SaveUser(ctx, repository.User{
		ID:           userID,
		Username:     username,
		PinHash:      hash,
		PinExpiresAt: &expiresAt,
	})
}
