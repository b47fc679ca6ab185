// Command movectl is a terminal front-end for the moving-services
// marketplace: it logs in, keeps the credential pair under
// ~/.movectl/credentials.json, and lists the caller's resources.
//
// Usage:
//
//	movectl login -email you@example.com -password secret
//	movectl whoami
//	movectl notifications
//	movectl quotes
//	movectl item-types
//	movectl logout
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/movehub/marketplace-client/internal/client"
	"github.com/movehub/marketplace-client/internal/core/ports"
	"github.com/movehub/marketplace-client/internal/infrastructure/config"
	"github.com/movehub/marketplace-client/internal/infrastructure/credstore"
	"github.com/movehub/marketplace-client/internal/session"
	"github.com/movehub/marketplace-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	creds := credstore.NewFileStore(cfg.CredentialsPath)
	api := client.New(cfg.APIBaseURL,
		client.WithTokenSource(creds),
		client.WithLogger(log),
	)
	nav := ports.NavigatorFunc(func(route string) {
		log.Debug().Str("route", route).Msg("navigate")
	})
	sess := session.New(api.Auth, creds, nav,
		session.WithGoogleClientID(cfg.GoogleClientID),
		session.WithLogger(log),
	)

	ctx := context.Background()
	if res := sess.Initialize(ctx); res.Recovered {
		log.Warn().Err(res.Cause).Msg("stored session was stale, signed out")
	}

	cmd, args := os.Args[1], os.Args[2:]
	if err := run(ctx, cmd, args, sess, api); err != nil {
		log.Error().Err(err).Str("command", cmd).Msg("command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string, sess *session.Store, api *client.Client) error {
	switch cmd {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		_ = fs.Parse(args)
		user, err := sess.Login(ctx, *email, *password)
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s (%s)\n", user.Email, user.UserType)
		return nil

	case "logout":
		res := sess.Logout(ctx)
		if res.Recovered {
			fmt.Println("signed out locally (server unreachable)")
		} else {
			fmt.Println("signed out")
		}
		return nil

	case "whoami":
		snap := sess.Snapshot()
		if !snap.Authenticated {
			fmt.Println("not signed in")
			return nil
		}
		return printJSON(snap.Identity)

	case "notifications":
		items, err := api.Notifications.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(items)

	case "quotes":
		items, err := api.Quotes.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(items)

	case "item-types":
		items, err := api.Pricing.ItemTypes(ctx)
		if err != nil {
			return err
		}
		return printJSON(items)

	case "pricing-factors":
		factors, err := api.Pricing.PricingFactors(ctx)
		if err != nil {
			return err
		}
		return printJSON(factors)

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: movectl <command> [flags]

commands:
  login -email E -password P   sign in and persist the credential pair
  logout                       sign out (always clears local credentials)
  whoami                       show the current identity
  notifications                list notifications
  quotes                       list quotes
  item-types                   list catalog item types (movers)
  pricing-factors              show pricing factors (movers)`)
}
