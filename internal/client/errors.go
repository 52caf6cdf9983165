package client

import "errors"

var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrWrongArgCount   = errors.New("wrong number of arguments")
	ErrInvalidArgument = errors.New("invalid argument")
)
