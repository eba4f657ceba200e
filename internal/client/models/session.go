package models

import (
	"fmt"
	"strconv"
)

// Session is the persisted identity: a bearer token and the user id, both
// kept as flat strings. A session with either field empty is not valid.
type Session struct {
	Token  string
	UserID string
}

func (s Session) Valid() bool {
	return s.Token != "" && s.UserID != ""
}

// NumericUserID parses UserID as the integer id used in request payloads.
func (s Session) NumericUserID() (int64, error) {
	id, err := strconv.ParseInt(s.UserID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("user id %q is not numeric: %w", s.UserID, err)
	}
	return id, nil
}

// LoginResult is what a successful POST /api/login yields.
type LoginResult struct {
	Token  string
	UserID int64
}
