package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a devnet listen address in format [host]:[port]
//	-ledger ledger node base URL
//	-relayer relayer base URL
//	-d SQLite record cache path
//	-c/-config json file path with configs
//	-session-token signer session JWT
//	-proof-key devnet proof HMAC key
//	-request-timeout outbound request timeout (e.g., "30s")
//	-poll-interval transaction confirmation poll interval (e.g., "1s")
//	-refresh-interval background refresh interval (e.g., "1m")
//	-confirmation-delay devnet pending time of a transaction (e.g., "500ms")
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var devnetAddress NetAddress
	var ledgerAddress, relayerAddress string
	var databaseDSN string
	var jsonConfigPath string
	var sessionToken, proofKey string
	var requestTimeout, pollInterval, refreshInterval, confirmationDelay time.Duration

	fs.Var(&devnetAddress, "a", "Devnet net address host:port")
	fs.StringVar(&ledgerAddress, "ledger", "", "Ledger node base URL")
	fs.StringVar(&relayerAddress, "relayer", "", "Relayer base URL")
	fs.StringVar(&databaseDSN, "d", "", "SQLite record cache path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionToken, "session-token", "", "Signer session JWT")
	fs.StringVar(&proofKey, "proof-key", "", "Devnet proof HMAC key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Confirmation poll interval (e.g., 1s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 1m)")
	fs.DurationVar(&confirmationDelay, "confirmation-delay", 0, "Devnet confirmation delay (e.g., 500ms)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionToken: sessionToken,
			ProofKey:     proofKey,
		},
		Adapter: Adapter{
			LedgerAddress:            ledgerAddress,
			RelayerAddress:           relayerAddress,
			RequestTimeout:           requestTimeout,
			ConfirmationPollInterval: pollInterval,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:       devnetAddress.String(),
			RequestTimeout:    requestTimeout,
			ConfirmationDelay: confirmationDelay,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
