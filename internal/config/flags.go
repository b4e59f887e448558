package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

var (
	errAddressForm = errors.New("need address in a form `host:port`")
	errAddressHost = errors.New("host must be localhost or an IP address")
	errAddressPort = errors.New("port must be between 1 and 65535")
)

// NetAddress is a listen address given on the command line. An empty host
// listens on every interface. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// String returns host:port, or "" when the address was never set.
func (a *NetAddress) String() string {
	if a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressForm, err)
	}

	port, err := strconv.ParseUint(rawPort, 10, 16)
	if err != nil || port == 0 {
		return errAddressPort
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errAddressHost
	}

	a.Host = host
	a.Port = int(port)
	return nil
}

// ParseFlags reads the command-line overrides from args (usually
// os.Args[1:]). Only a subset of the configuration has a flag:
//
//	-a                   HTTP listen address host:port
//	-grpc-address        gRPC health listen address host:port
//	-d                   PostgreSQL DSN
//	-c, -config          JSON configuration file
//	-jwt-secret          session signing key
//	-env                 production, development or test
//	-log-level           minimum log level
//	-request-timeout     inbound request timeout
//	-adapter-timeout     outbound request timeout
//	-redis-url           rate limiter backend
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		httpAddress, grpcAddress NetAddress
		cfg                      StructuredConfig
	)

	fs := flag.NewFlagSet("occupa-lo-studente", flag.ContinueOnError)
	fs.Var(&httpAddress, "a", "HTTP listen address host:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "PostgreSQL DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.JWTSecret, "jwt-secret", "", "Session token signing key")
	fs.StringVar(&cfg.App.Environment, "env", "", "Deployment environment")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Minimum log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Inbound request timeout (e.g. 30s)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g. 10s)")
	fs.StringVar(&cfg.Redis.URL, "redis-url", "", "Rate limiter redis URL")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return &cfg, nil
}
