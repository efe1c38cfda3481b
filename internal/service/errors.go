package service

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrUnknownFormat  = errors.New("unknown format")
	ErrUnknownSort    = errors.New("unknown sort field")
	ErrSamePlayer     = errors.New("cannot compare a player with itself")
)
