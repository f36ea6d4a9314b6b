package babel

import (
	"github.com/dmitrymomot/babel/pkg/locale"
	"github.com/dmitrymomot/babel/pkg/timezone"
)

var (
	// ErrInvalidLocaleIdentifier is returned when a locale identifier cannot
	// be parsed. Failed parses are not cached.
	ErrInvalidLocaleIdentifier = locale.ErrInvalid

	// ErrUnknownTimezoneIdentifier is returned when the timezone database has
	// no zone with the given name.
	ErrUnknownTimezoneIdentifier = timezone.ErrUnknown
)
