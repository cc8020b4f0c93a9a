// tokengen prints a caller token signed with the configured auth secret.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ougirez/rifmis/internal/pkg/config"
	"github.com/ougirez/rifmis/internal/pkg/constants"
	"github.com/ougirez/rifmis/internal/service/auth"
)

func main() {
	configFile := flag.String("config", "", "config file path")
	userID := flag.String("user", "", "caller id put into the token")
	ttl := flag.Duration("ttl", 0, "token lifetime, defaults to auth.token_ttl")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		os.Exit(2)
	}

	cfg, err := config.Read(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.Auth.Secret == "" {
		fmt.Fprintf(os.Stderr, "%s is required\n", constants.ViperSecretKey)
		os.Exit(1)
	}

	lifetime := cfg.Auth.TokenTTL
	if *ttl != 0 {
		lifetime = *ttl
	}

	token, err := auth.NewService(cfg.Auth.Secret, cfg.Auth.CookieName, lifetime).IssueToken(*userID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%s\n%s\n", token, expiry(time.Now(), lifetime))
}

// expiry mirrors the token's exp claim: a zero lifetime sets none.
func expiry(now time.Time, lifetime time.Duration) string {
	if lifetime == 0 {
		return "never"
	}
	return now.Add(lifetime).Format(time.RFC3339)
}
