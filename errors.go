package testharness

import "errors"

var (
	// ErrIO indicates the request file is missing, unreadable or not UTF-8 text.
	ErrIO = errors.New("read request")
	// ErrParse indicates the request is not a JSON object with a string input field.
	ErrParse = errors.New("parse request")
	// ErrSerialize indicates the response could not be encoded as JSON.
	ErrSerialize = errors.New("serialize response")
)
