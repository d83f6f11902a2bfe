package domain

import "errors"

var (
	// ErrPackNotFound is returned when a pack id is not in the catalog.
	ErrPackNotFound = errors.New("pack not found")
	// ErrInvalidCatalog indicates malformed content detected at startup.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrRoomNotFound is returned when no live room matches a room code.
	ErrRoomNotFound = errors.New("room not found")
)
