package dangerous

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/dmitrymomot/dangerous/base64url"
)

// legacyEpoch is 2011-01-01T00:00:00Z in Unix seconds. itsdangerous 0.x
// encoded timestamps relative to this point, and long-lived deployments
// still hold tokens in that format, so the offset stays. Changing it is
// a wire-compatibility break.
const legacyEpoch = 1293840000

// timestampSize is the big-endian integer width a timestamp occupies
// before leading zero bytes are stripped.
const timestampSize = 8

// encodeTimestamp packs t into the fewest base64 characters that encode
// it exactly: seconds since legacyEpoch as a big-endian integer with
// leading zero bytes stripped. Timestamps in the current era fit in four
// bytes, six encoded characters.
func encodeTimestamp(t time.Time) []byte {
	var buf [timestampSize]byte
	binary.BigEndian.PutUint64(buf[:], uint64(t.Unix()-legacyEpoch))

	// All leading zero bytes go, even for the zero value: an empty byte
	// string decodes back to zero, and that is what the legacy format emits.
	start := 0
	for start < timestampSize && buf[start] == 0 {
		start++
	}
	return base64url.Encode(buf[start:])
}

// decodeTimestamp reverses encodeTimestamp: base64-decode, left-pad the
// bytes back to the full integer width, add the epoch offset. Malformed
// base64, more than eight decoded bytes and values past the representable
// time range all report ErrTimestampInvalid.
func decodeTimestamp(encoded string) (time.Time, error) {
	raw, err := base64url.DecodeString(encoded)
	if err != nil || len(raw) > timestampSize {
		return time.Time{}, fmt.Errorf("%w: %q", ErrTimestampInvalid, encoded)
	}

	var buf [timestampSize]byte
	copy(buf[timestampSize-len(raw):], raw)
	delta := binary.BigEndian.Uint64(buf[:])
	if delta > math.MaxInt64-legacyEpoch {
		return time.Time{}, fmt.Errorf("%w: %q overflows the time range", ErrTimestampInvalid, encoded)
	}
	return time.Unix(int64(delta)+legacyEpoch, 0), nil
}
