package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-users-api/internal/adapter"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

// Usage lists the commands understood by [App].
const Usage = `usage: client [flags] <command>

commands:
  list                        list all users
  get ID                      show one user
  create NAME EMAIL           create a user
  update ID NAME EMAIL        replace name and email of a user
  delete ID                   delete a user
  version                     show the server version`

type command struct {
	args int
	run  func(ctx context.Context, a *App, args []string) (any, error)
}

var commands = map[string]command{
	"list": {0, func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.adapter.ListUsers(ctx)
	}},
	"get": {1, func(ctx context.Context, a *App, args []string) (any, error) {
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return a.adapter.GetUser(ctx, id)
	}},
	"create": {2, func(ctx context.Context, a *App, args []string) (any, error) {
		return a.adapter.CreateUser(ctx, models.User{Name: args[0], Email: args[1]})
	}},
	"update": {3, func(ctx context.Context, a *App, args []string) (any, error) {
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		return a.adapter.UpdateUser(ctx, id, models.User{Name: args[1], Email: args[2]})
	}},
	"delete": {1, func(ctx context.Context, a *App, args []string) (any, error) {
		id, err := parseID(args[0])
		if err != nil {
			return nil, err
		}
		if err = a.adapter.DeleteUser(ctx, id); err != nil {
			return nil, err
		}
		return map[string]int64{"deleted": id}, nil
	}},
	"version": {0, func(ctx context.Context, a *App, _ []string) (any, error) {
		v, err := a.adapter.Version(ctx)
		if err != nil {
			return nil, err
		}
		return models.VersionResponse{Version: v}, nil
	}},
}

type App struct {
	adapter adapter.UsersAdapter
	args    []string
	out     io.Writer

	logger *logger.Logger
}

// NewApp returns an App that runs the command in args against a and writes
// the result to out.
func NewApp(a adapter.UsersAdapter, args []string, out io.Writer, logger *logger.Logger) *App {
	return &App{adapter: a, args: args, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context) error {
	if len(a.args) == 0 {
		return ErrNoCommand
	}

	name, args := a.args[0], a.args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(args) != cmd.args {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrWrongArgCount, name, cmd.args, len(args))
	}

	a.logger.Debug().Str("command", name).Strs("args", args).Msg("running command")

	result, err := cmd.run(ctx, a, args)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", ErrInvalidArgument, raw)
	}
	return id, nil
}
