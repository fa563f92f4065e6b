// Command identitytoken signs an identity token for local development, using
// the same secret resolution as the server (defaults, env, JSON, -s).
//
//	identitytoken -e ana@uni.edu -ttl 2h
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/campusmatch/internal/flagx"
	"github.com/dmitrijs2005/campusmatch/internal/server/auth"
	"github.com/dmitrijs2005/campusmatch/internal/server/config"
)

func main() {

	cfg := config.LoadConfig()

	if err := run(os.Args[1:], cfg, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}

}

func run(args []string, cfg *config.Config, w io.Writer) error {
	fs := flag.NewFlagSet("identitytoken", flag.ContinueOnError)
	email := fs.String("e", "", "email claim")
	ttl := fs.Duration("ttl", time.Hour, "token validity")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-e", "-ttl"})); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("-e is required")
	}

	token, err := auth.GenerateIdentityToken(*email, []byte(cfg.IdentitySecret), *ttl)
	if err != nil {
		return fmt.Errorf("error signing token: %w", err)
	}

	_, err = fmt.Fprintln(w, token)
	return err
}
