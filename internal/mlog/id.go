package mlog

import "github.com/google/uuid"

// FormatID formats a race ID for logging.
//
// UUIDs, in any of the forms accepted by uuid.Parse(), are shortened to the
// first 8 hex digits. Any other ID is displayed in full.
func FormatID(id string) string {
	u, err := uuid.Parse(id)
	if err != nil {
		return id
	}

	return u.String()[:8]
}
