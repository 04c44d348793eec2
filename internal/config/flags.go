package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-f contracts directory
//	-staging-dir staging directory for uploads in flight
//	-serve-static serve the contracts directory from this server
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-upload-size maximum settings update body size in bytes
//	-sweep-interval how often abandoned staged uploads are removed
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("cargo-settings", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var contractsDir string
	var stagingDir string
	var serveStatic bool
	var jsonConfigPath string
	var requestTimeout time.Duration
	var maxUploadSize int64
	var sweepInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&contractsDir, "f", "", "Contracts directory")
	fs.StringVar(&stagingDir, "staging-dir", "", "Staging directory for uploads")
	fs.BoolVar(&serveStatic, "serve-static", false, "Serve uploaded contracts")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Maximum settings update size in bytes")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Staged uploads sweep interval (e.g., 10m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				ContractsDir: contractsDir,
				StagingDir:   stagingDir,
				ServeStatic:  serveStatic,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadSize:  maxUploadSize,
		},
		Workers: Workers{
			StagingSweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Other hosts must be "localhost" or a
// valid IP address.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
