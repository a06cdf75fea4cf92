package wire

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/wippyai/splice/errors"
)

// Values without a fixed format travel as CBOR blobs. Core deterministic
// encoding keeps the bytes stable for equal values.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("wire: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("wire: CBOR decoder initialization failed: " + err.Error())
	}
}

func encodeCBOR(w *Writer, v any) error {
	data, err := encMode.Marshal(v)
	if err != nil {
		return errors.New(errors.PhaseEncode, errors.KindUnsupported).
			GoType(fmt.Sprintf("%T", v)).
			Detail("no fixed encoding and CBOR failed").
			Cause(err).
			Build()
	}
	w.WriteBlob(data)
	return nil
}

func decodeCBOR(r *Reader, dst any) error {
	data, err := r.ReadBlob()
	if err != nil {
		return err
	}
	if err := decMode.Unmarshal(data, dst); err != nil {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			GoType(fmt.Sprintf("%T", dst)).
			Detail("CBOR payload").
			Cause(err).
			Build()
	}
	return nil
}
