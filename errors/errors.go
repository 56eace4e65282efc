package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrEncoding is returned when content can't be represented as bytes: a nil body,
	// an unknown charset, text unrepresentable in the charset or a header field which
	// doesn't fit into latin-1.
	ErrEncoding = errors.New("content is not encodable")
	// ErrSerialization is returned when a structured-data encoder refuses a value.
	ErrSerialization = errors.New("content is not serializable")
	// ErrTransport wraps every failure returned by a channel.
	ErrTransport = errors.New("transport failure")
	// ErrProtocol is returned when messages are sent out of their order: body before start,
	// second start or anything after the terminal body message.
	ErrProtocol = errors.New("response messages out of order")
)

// Wrap annotates the cause with the sentinel, so both of them can be matched by Is.
func Wrap(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}

	return fmt.Errorf("%w: %w", sentinel, cause)
}

// Is mirrors the standard errors.Is, so there's no need in importing both packages.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// New mirrors the standard errors.New.
func New(text string) error {
	return errors.New(text)
}
