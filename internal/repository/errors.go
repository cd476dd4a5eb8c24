// Package repository implements CRUD and insert subscriptions for the two
// order collections over the Supabase PostgreSQL connection.
package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a status update or delete targets an id that
// no longer exists.
var ErrNotFound = errors.New("order not found")

// Subscription is the opaque handle returned by SubscribeInserts. Release it
// once with Unsubscribe; double release is a programmer error.
type Subscription interface {
	Unsubscribe()
}

// Class partitions persistence failures into the categories the UI
// distinguishes. Anything the backend does not label ends up ClassUnknown.
type Class string

const (
	ClassDuplicate       Class = "duplicate"
	ClassMissingRequired Class = "missing_required"
	ClassPermission      Class = "permission"
	ClassUnknown         Class = "unknown"
)

// Error is a persistence failure with a user-facing Arabic message.
type Error struct {
	Class   Class
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("persistence failure (%s): %v", e.Class, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify maps PostgreSQL SQLSTATE codes onto failure classes, mirroring the
// messages the order forms show.
func classify(err error) *Error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return &Error{
				Class:   ClassDuplicate,
				Message: "رقم الطلب مكرر. يرجى المحاولة مرة أخرى.",
				Err:     err,
			}
		case "23502": // not_null_violation
			return &Error{
				Class:   ClassMissingRequired,
				Message: "بيانات مطلوبة مفقودة. يرجى التأكد من ملء جميع الحقول المطلوبة.",
				Err:     err,
			}
		case "42501": // insufficient_privilege
			return &Error{
				Class:   ClassPermission,
				Message: "خطأ في الصلاحيات. يرجى المحاولة مرة أخرى.",
				Err:     err,
			}
		}
	}
	return &Error{
		Class:   ClassUnknown,
		Message: "حدث خطأ غير متوقع. يرجى المحاولة مرة أخرى.",
		Err:     err,
	}
}

// UserMessage extracts the Arabic message from a persistence failure, with a
// generic fallback for everything else.
func UserMessage(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Message
	}
	return "حدث خطأ غير متوقع. يرجى المحاولة مرة أخرى."
}
