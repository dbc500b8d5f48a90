// Package common defines shared constants, sentinel errors, and small
// helpers used across the fdatrack client. Callers should use errors.Is to
// match the sentinel values.
package common

import "errors"

// ErrorNotFound is returned by repositories when the requested record does
// not exist.
var ErrorNotFound = errors.New("not found")
