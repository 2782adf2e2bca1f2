package entity

import "errors"

var (
	ErrCaptureFailed        = errors.New("capture failed")
	ErrReceiverMissing      = errors.New("receiving end does not exist")
	ErrActivationFailed     = errors.New("activation failed")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)
