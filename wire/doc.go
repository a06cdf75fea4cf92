// Package wire is the runtime used by generated decoders and encoders.
//
// The format is fixed and schemaless: values are written back to back in
// field order with no tags or lengths except where a value needs one.
//
//	bool                1 byte, 0 or 1
//	int8, uint8         1 byte
//	int16 ... uint64    fixed width little endian
//	int, uint           8 bytes little endian
//	float32, float64    IEEE-754 little endian
//	string, []byte      uvarint length, then the bytes
//	enum                uvarint variant index, then the payload
//
// Types whose pointer implements Decoder, and whose value implements
// Encoder, handle themselves. Every other type, pointers included, is
// written as a length-prefixed CBOR blob.
package wire
