// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-postcrossing/internal/adapter"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/internal/utils"
	"github.com/MKhiriev/go-postcrossing/models"
)

const usage = `usage: client [-a address] [-t timeout] <command> [arguments]

commands:
  hello                                                 check that the server is up
  version                                               print the server version
  register -username NAME -email EMAIL -country COUNTRY register a new user
  user USER_ID                                          show a user with both postcard lists
  request-address SENDER_ID                             get a recipient and send a postcard
  receive POSTCARD_ID                                   mark a postcard as received
  postcard POSTCARD_ID                                  show a postcard
`

type command func(ctx context.Context, args []string) error

// App runs one client command per [App.Run] call.
type App struct {
	adapter  adapter.ServerAdapter
	out      io.Writer
	logger   *logger.Logger
	commands map[string]command
}

// NewApp creates an App printing results to out.
func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNilAdapter
	}

	a := &App{
		adapter: serverAdapter,
		out:     out,
		logger:  logger,
	}
	a.commands = map[string]command{
		"hello":           a.hello,
		"version":         a.version,
		"register":        a.register,
		"user":            a.user,
		"request-address": a.requestAddress,
		"receive":         a.receive,
		"postcard":        a.postcard,
	}

	return a, nil
}

// Run dispatches args[0] to its command. "help" prints the usage text.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.printUsage()
		return nil
	}

	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	traceID := uuid.NewString()
	ctx = utils.WithTraceID(ctx, traceID)

	a.logger.Debug().Str("command", name).Str("trace_id", traceID).Msg("running command")
	if err := cmd(ctx, args[1:]); err != nil {
		a.logger.Debug().Err(err).Str("command", name).Str("trace_id", traceID).Msg("command failed")
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

func (a *App) hello(ctx context.Context, _ []string) error {
	text, err := a.adapter.Hello(ctx)
	if err != nil {
		return err
	}
	return a.printText(text)
}

func (a *App) version(ctx context.Context, _ []string) error {
	text, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}
	return a.printText(text)
}

func (a *App) register(ctx context.Context, args []string) error {
	var request models.RegisterRequest

	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&request.Username, "username", "", "user name")
	fs.StringVar(&request.Email, "email", "", "e-mail")
	fs.StringVar(&request.Country, "country", "", "country")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var missing []string
	for _, field := range []struct{ name, value string }{
		{"username", request.Username},
		{"email", request.Email},
		{"country", request.Country},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, "-"+field.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingArgument, strings.Join(missing, ", "))
	}

	response, err := a.adapter.RegisterUser(ctx, request)
	if err != nil {
		return err
	}
	return a.printJSON(response)
}

func (a *App) user(ctx context.Context, args []string) error {
	userID, err := singleArgument(args, "USER_ID")
	if err != nil {
		return err
	}

	user, err := a.adapter.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	return a.printJSON(user)
}

func (a *App) requestAddress(ctx context.Context, args []string) error {
	senderID, err := singleArgument(args, "SENDER_ID")
	if err != nil {
		return err
	}

	response, err := a.adapter.RequestAddress(ctx, senderID)
	if err != nil {
		return err
	}
	return a.printJSON(response)
}

func (a *App) receive(ctx context.Context, args []string) error {
	postcardID, err := singleArgument(args, "POSTCARD_ID")
	if err != nil {
		return err
	}

	message, err := a.adapter.ConfirmReceipt(ctx, postcardID)
	if err != nil {
		return err
	}
	return a.printText(message)
}

func (a *App) postcard(ctx context.Context, args []string) error {
	postcardID, err := singleArgument(args, "POSTCARD_ID")
	if err != nil {
		return err
	}

	postcard, err := a.adapter.GetPostcard(ctx, postcardID)
	if err != nil {
		return err
	}
	return a.printJSON(postcard)
}

func (a *App) printText(text string) error {
	_, err := fmt.Fprintln(a.out, text)
	return err
}

func (a *App) printJSON(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (a *App) printUsage() {
	fmt.Fprint(a.out, usage)
}

func singleArgument(args []string, name string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}
	return args[0], nil
}
