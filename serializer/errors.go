package serializer

import "errors"

// ErrPayloadInvalid indicates a token's signature verified but its
// payload could not be decoded or unmarshaled back into a value. The
// wrapped error carries the collaborator failure (base64 or JSON).
var ErrPayloadInvalid = errors.New("payload cannot be decoded")
