package menu

import "errors"

var (
	// ErrInvalidAlignment is returned when an alignment value is outside its enum.
	ErrInvalidAlignment = errors.New("menu: invalid alignment")
	// ErrNoRenderer is returned when a menu is built without a text renderer or viewport.
	ErrNoRenderer = errors.New("menu: no renderer")
	// ErrNotLaidOut is returned when geometry is queried before layout.
	ErrNotLaidOut = errors.New("menu: entry not laid out")
	// ErrAlreadyBuilt is returned by a second Build call.
	ErrAlreadyBuilt = errors.New("menu: already built")
)
