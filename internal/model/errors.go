package model

import "errors"

var ErrNoRecord = errors.New("no record")
var ErrInvalidEvent = errors.New("invalid event")
