package base64url

import "errors"

// ErrUnexpectedLength indicates decoded output did not match the exact
// size requested from DecodeExact.
var ErrUnexpectedLength = errors.New("base64url: decoded length does not match expected size")
