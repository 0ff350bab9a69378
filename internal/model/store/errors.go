package store

import "github.com/pkg/errors"

var errMissingID = errors.New("expense has no id yet")

// IsMissingID reports whether err is the update-without-id guard.
func IsMissingID(err error) bool {
	return errors.Is(err, errMissingID)
}
