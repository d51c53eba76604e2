package errors

import "fmt"

// Wrap adds context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage:
//
//	if err := loadKey(); err != nil {
//	    return errors.Wrap(err, "failed to load signing key")
//	}
//
// The wrapped error keeps the chain intact, so callers can still match
// sentinels with errors.Is(err, errors.ErrInvalidKeyLength).
//
// Only wrap at package boundaries to avoid overly nested messages.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is Wrap with a formatted message:
//
//	return errors.Wrapf(errors.ErrInvalidKeyLength, "expected %d bytes, got %d", 32, n)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapWith classifies cause under sentinel and adds context, keeping both in
// the chain:
//
//	return errors.WrapWith(errors.ErrIO, err, "reading key")
//
// A nil cause wraps the sentinel alone.
func WrapWith(sentinel, cause error, msg string) error {
	if cause == nil {
		return Wrap(sentinel, msg)
	}
	return fmt.Errorf("%s: %w: %w", msg, sentinel, cause)
}
