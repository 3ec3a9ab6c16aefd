package validators

import "errors"

// ErrUnsupportedType is returned for values that are not structs.
var ErrUnsupportedType = errors.New("validators: value is not a struct")
