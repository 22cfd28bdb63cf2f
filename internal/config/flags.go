// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// csvList is a flag.Value collecting a comma separated list.
type csvList []string

func (l *csvList) String() string {
	return strings.Join(*l, ",")
}

func (l *csvList) Set(s string) error {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l = append(*l, item)
		}
	}
	return nil
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a dashboard address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-reports comma separated report link names
//	-token-sign-key admin token verification key
//	-request-timeout dashboard request timeout (e.g., "30s", "1m")
//	-sync-interval incremental sync period
//	-queue-interval write-behind queue drain period
//	-poll enables the change-detection poller
//	-poll-strategy api|scrape
//	-log-level zerolog level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("zohosync", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var reports csvList
	var tokenSignKey string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var queueInterval time.Duration
	var pollEnabled bool
	var pollStrategy string
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.Var(&reports, "reports", "Comma separated report link names")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Admin token verification key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Incremental sync period")
	fs.DurationVar(&queueInterval, "queue-interval", 0, "Queue drain period")
	fs.BoolVar(&pollEnabled, "poll", false, "Enable change-detection poller")
	fs.StringVar(&pollStrategy, "poll-strategy", "", "Poller strategy (api|scrape)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Auth: Auth{
			TokenSignKey: tokenSignKey,
		},
		Sync: Sync{
			Reports: reports,
		},
		Poller: Poller{
			Enabled:  pollEnabled,
			Strategy: pollStrategy,
		},
		Workers: Workers{
			SyncInterval:  syncInterval,
			QueueInterval: queueInterval,
		},
		LogLevel:     logLevel,
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

	if port < 1 {
		return errors.New("port number is a positive integer")
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
