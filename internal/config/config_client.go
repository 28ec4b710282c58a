// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client configuration from the
// ADAPTER_* environment variables and the global client flags found at the
// beginning of args:
//
//	-a server address (with or without scheme)
//	-t request timeout (e.g., "5s")
//
// The arguments left after the flags (the subcommand and its own flags) are
// returned unchanged.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	var address string
	var timeout time.Duration

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "Server address")
	fs.DurationVar(&timeout, "t", 0, "Request timeout (e.g., 5s)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	defaults := defaultConfig().Adapter
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    firstNonZero(address, envCfg.Adapter.HTTPAddress, defaults.HTTPAddress),
			RequestTimeout: firstNonZero(timeout, envCfg.Adapter.RequestTimeout, defaults.RequestTimeout),
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, nil, errors.Join(err, fmt.Errorf("address=%q timeout=%s", clientCfg.Adapter.HTTPAddress, clientCfg.Adapter.RequestTimeout))
	}

	return clientCfg, fs.Args(), nil
}

func firstNonZero[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
