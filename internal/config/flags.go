package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress is the flag.Value behind -a.
type NetAddress struct {
	Host string
	Port int
}

func flagArgs() []string {
	return os.Args[1:]
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (postgres|sqlite)
//	-redis-url redis URL for the session denylist
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-password-hash-cost bcrypt cost
//	-app-version application version
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-secure-cookies mark session cookie Secure
//	-llm-provider anthropic|gemini
//	-llm-api-key provider API key
//	-llm-model provider model
//	-llm-base-url provider base URL
//	-llm-timeout provider call timeout
//	-watchlist-sync-interval watchlist auto-sync interval
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("co-script", flag.ContinueOnError)

	var serverAddress NetAddress
	var (
		databaseDSN, databaseDriver, redisURL, jsonConfigPath string
		tokenSignKey, tokenIssuer, appVersion                 string
		llmProvider, llmAPIKey, llmModel, llmBaseURL          string
		tokenDuration, requestTimeout, llmTimeout, syncEvery  time.Duration
		passwordHashCost                                      int
		secureCookies                                         bool
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (postgres|sqlite)")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL for session revocation")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&secureCookies, "secure-cookies", false, "Mark session cookie Secure")
	fs.StringVar(&llmProvider, "llm-provider", "", "LLM provider (anthropic|gemini)")
	fs.StringVar(&llmAPIKey, "llm-api-key", "", "LLM provider API key")
	fs.StringVar(&llmModel, "llm-model", "", "LLM model")
	fs.StringVar(&llmBaseURL, "llm-base-url", "", "LLM provider base URL")
	fs.DurationVar(&llmTimeout, "llm-timeout", 0, "LLM call timeout")
	fs.DurationVar(&syncEvery, "watchlist-sync-interval", 0, "Watchlist auto-sync interval")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			PasswordHashCost: passwordHashCost,
			Version:          appVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Redis: Redis{URL: redisURL},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			SecureCookies:  secureCookies,
		},
		LLM: LLM{
			Provider: llmProvider,
			APIKey:   llmAPIKey,
			Model:    llmModel,
			BaseURL:  llmBaseURL,
			Timeout:  llmTimeout,
		},
		Workers:      Workers{WatchlistSyncInterval: syncEvery},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String renders the address with net.JoinHostPort, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts host:port where host is empty, "localhost" or an IP literal
// (IPv6 in brackets).
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host, a.Port = host, port
	return nil
}
