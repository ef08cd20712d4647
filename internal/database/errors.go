package database

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrWrongPassphrase   = errors.New("incorrect passphrase")
	ErrEncryptedPayload  = errors.New("project file is encrypted")
	ErrUnsupportedFormat = errors.New("unsupported project file version")
)

// Entity names used in OpError.Resource.
const (
	EntityProject = "project"
	EntityPanel   = "panel"
	EntitySetting = "setting"
)

// OpError records the operation and resource a database error came from.
type OpError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource, op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, ID: id, Err: err}
}

func projectID(id int64) string {
	if id <= 0 {
		return ""
	}
	return fmt.Sprint(id)
}
