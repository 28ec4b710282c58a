// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the postcard exchange.
//
// [App] parses a subcommand with its arguments, calls the server through an
// [adapter.ServerAdapter] and prints the result to its output writer. Every
// run gets its own trace id, which is sent to the server as X-Trace-ID so
// client and server log lines can be matched.
//
// Supported commands:
//
//	hello
//	version
//	register -username NAME -email EMAIL -country COUNTRY
//	user USER_ID
//	request-address SENDER_ID
//	receive POSTCARD_ID
//	postcard POSTCARD_ID
package client
