package entity

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
)

// ID is the numeric identifier shared by every persisted record. The wire
// format accepts both a JSON number and a quoted numeric string, because
// clients are inconsistent about which one they send for path-derived values.
type ID int64

// ParseID converts a decimal string into an ID.
func ParseID(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse id %q", s)
	}

	return ID(value), nil
}

// Int64 returns the raw numeric value.
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the ID.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id == 0
}

// MarshalJSON encodes the ID as a bare JSON number.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(id), 10)), nil
}

// UnmarshalJSON accepts a number, a quoted numeric string, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = 0

		return nil
	}

	if trimmed[0] == '"' {
		unquoted, err := strconv.Unquote(string(trimmed))
		if err != nil {
			return errors.Wrap(err, "unquote id")
		}

		parsed, err := ParseID(unquoted)
		if err != nil {
			return err
		}

		*id = parsed

		return nil
	}

	value, err := strconv.ParseInt(string(trimmed), 10, 64)
	if err != nil {
		return errors.Wrap(err, "parse id")
	}

	*id = ID(value)

	return nil
}
