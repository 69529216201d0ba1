// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
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

func commandLineArgs() []string {
	return os.Args[1:]
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-host listen host
//	-p first listen port
//	-port-attempts number of consecutive ports tried
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit-window sliding window for /api/ requests
//	-rate-limit-max requests allowed per window
//	-uploads-dir upload directory
//	-max-file-size max image size in bytes
//	-d client history database DSN
//	-mode development|production|test
//	-public-url origin used in gift links
//	-server client: gift server address in format [host]:[port]
//	-client-timeout client: request timeout
//	-sweep-interval expired gift sweep period
//	-c/-config json file path with configs
//	-gift client: gift link or id to reveal
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("gift", flag.ContinueOnError)

	var serverAddress NetAddress
	var host, uploadsDir, databaseDSN, mode, publicURL, jsonConfigPath, giftRef string
	var port, portAttempts, rateLimitMax int
	var maxFileSize int64
	var requestTimeout, rateLimitWindow, clientTimeout, sweepInterval time.Duration

	fs.StringVar(&host, "host", "", "Listen host")
	fs.IntVar(&port, "p", 0, "First listen port")
	fs.IntVar(&portAttempts, "port-attempts", 0, "Number of consecutive ports tried")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rate limit window (e.g., 15m)")
	fs.IntVar(&rateLimitMax, "rate-limit-max", 0, "Requests allowed per rate limit window")
	fs.StringVar(&uploadsDir, "uploads-dir", "", "Directory for uploaded images")
	fs.Int64Var(&maxFileSize, "max-file-size", 0, "Max image size in bytes")
	fs.StringVar(&databaseDSN, "d", "", "Client history database DSN")
	fs.StringVar(&mode, "mode", "", "Runtime mode: development, production or test")
	fs.StringVar(&publicURL, "public-url", "", "Origin used in gift links")
	fs.Var(&serverAddress, "server", "Gift server address host:port")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired gift sweep interval")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&giftRef, "gift", "", "Gift link or id to reveal")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Mode:      mode,
			PublicURL: publicURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				UploadsDir:  uploadsDir,
				MaxFileSize: maxFileSize,
			},
		},
		Server: Server{
			Host:            host,
			Port:            port,
			PortAttempts:    portAttempts,
			RequestTimeout:  requestTimeout,
			RateLimitWindow: rateLimitWindow,
			RateLimitMax:    rateLimitMax,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: clientTimeout,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
		GiftRef:      giftRef,
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
