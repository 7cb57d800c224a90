package anim

import "errors"

var (
	// ErrEmptySequence rejects registering a sequence with no frames.
	ErrEmptySequence = errors.New("anim: empty frame sequence")

	// ErrCropOutOfBounds reports a frame rectangle that is not fully
	// contained in the sheet's pixel bounds.
	ErrCropOutOfBounds = errors.New("anim: crop rectangle outside sheet bounds")

	// ErrInvalidFPS rejects a non-positive playback rate.
	ErrInvalidFPS = errors.New("anim: fps must be positive")

	// ErrUnknownKey reports a playback request for a key that was never
	// registered.
	ErrUnknownKey = errors.New("anim: unknown animation key")

	// ErrInvalidFrameSize rejects non-positive frame dimensions.
	ErrInvalidFrameSize = errors.New("anim: frame dimensions must be positive")
)
