package wire

import (
	stderrors "errors"

	"github.com/wippyai/splice/errors"
)

// FieldError attributes err to field of the named type. Generated codecs
// call it for every failing field; nested failures keep their own path
// in the cause chain.
func FieldError(phase errors.Phase, typeName, field string, err error) error {
	kind := errors.KindInvalidData
	var inner *errors.Error
	if stderrors.As(err, &inner) {
		kind = inner.Kind
	}
	return errors.New(phase, kind).
		Path(typeName, field).
		Cause(err).
		Build()
}

// DecodeError is FieldError for the decode direction.
func DecodeError(typeName, field string, err error) error {
	return FieldError(errors.PhaseDecode, typeName, field, err)
}

// EncodeError is FieldError for the encode direction.
func EncodeError(typeName, field string, err error) error {
	return FieldError(errors.PhaseEncode, typeName, field, err)
}

// UnknownVariant reports an enum tag at or past count.
func UnknownVariant(typeName string, tag uint64, count int) error {
	maxValid := uint64(0)
	if count > 0 {
		maxValid = uint64(count - 1)
	}
	return errors.InvalidDiscriminant(errors.PhaseDecode, []string{typeName}, tag, maxValid)
}

// NoVariant reports an enum value with no variant set.
func NoVariant(typeName string) error {
	return errors.New(errors.PhaseEncode, errors.KindInvalidVariant).
		Path(typeName).
		Detail("no variant set").
		Build()
}
