package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/nortela/website"
	"github.com/nortela/website/mail"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	_ = godotenv.Load()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "submissions":
		if err := runSubmissions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("nortela-website %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`nortela-website - The Nortela corporate site server

Usage:
  nortela-website [command]

Commands:
  serve          Start the site server (default)
  submissions    Print the latest contact form submissions
  version        Print the version
  help           Show this help message

Configuration is read from environment variables; a .env file in the
working directory is loaded if present.`)
}

func configFromEnv() website.SiteConfig {
	cacheTTL, _ := time.ParseDuration(website.EnvOr("CONTENT_CACHE_TTL", "5m"))
	pageSize, _ := strconv.Atoi(website.EnvOr("BLOG_PAGE_SIZE", "12"))

	return website.SiteConfig{
		Name:        website.EnvOr("SITE_NAME", "Nortela"),
		URL:         website.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: website.EnvOr("SITE_DESCRIPTION", ""),

		Addr:         website.EnvOr("ADDR", ":3000"),
		DatabasePath: website.EnvOr("DATABASE_PATH", "data/site.db"),

		ContentAPIURL: os.Getenv("CONTENT_API_URL"),

		SessionSecret:    os.Getenv("SESSION_SECRET"),
		RevalidateSecret: os.Getenv("REVALIDATE_SECRET"),
		CookieSecure:     os.Getenv("COOKIE_SECURE") == "true",

		Mail: mail.RelayConfig{
			Endpoint: os.Getenv("MAIL_ENDPOINT"),
			APIKey:   os.Getenv("MAIL_API_KEY"),
			From:     website.EnvOr("MAIL_FROM", "site@nortela.com"),
			To:       website.EnvOr("MAIL_TO", "contato@nortela.com"),
		},

		ContentCacheTTL: cacheTTL,
		BlogPageSize:    pageSize,

		MediaCacheDir: website.EnvOr("MEDIA_CACHE_DIR", "data/mediacache"),
	}
}

func runServe() error {
	app := website.New(configFromEnv())
	defer app.Close()
	return app.Start()
}

func runSubmissions() error {
	cfg := configFromEnv()
	store, err := website.NewStore(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	subs, err := store.ListSubmissions(50)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Println("No submissions.")
		return nil
	}
	for _, s := range subs {
		fmt.Printf("%s  %-14s  %s <%s>\n", s.CreatedAt.Format("2006-01-02 15:04"), s.Delivery, s.Name, s.Email)
		if s.Subject != "" {
			fmt.Printf("    %s\n", s.Subject)
		}
	}
	return nil
}
