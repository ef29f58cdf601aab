package spatial

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind          = errors.New("unknown filter kind")
	ErrMissingNoiseVariance = errors.New("local_noise filter requires a noise variance")
	ErrEmptyImage           = errors.New("image is empty")
)

// ValidationError describes a rejected configuration field.
type ValidationError struct {
	Context string
	Field   string
	Value   interface{}
	Reason  string
	Err     error
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s value %v - %s", ve.Context, ve.Field, ve.Value, ve.Reason)
}

func (ve *ValidationError) Unwrap() error {
	return ve.Err
}
