package model

import "reflect"

/*
Data wraps an opaque user payload attached to every entity. The payload
itself is never interpreted by the core; it is only ever round-tripped
through a codec (see the repository/codec package) supplied by the caller.
*/
type Data struct {
	typeTag string      // Runtime type tag for the payload, opaque to the core
	payload interface{} // Opaque payload
}

/*
NewData creates a Data value for the given runtime type tag and payload.
*/
func NewData(typeTag string, payload interface{}) Data {
	return Data{typeTag: typeTag, payload: payload}
}

/*
TypeTag returns the runtime type tag of the wrapped payload.
*/
func (d Data) TypeTag() string {
	return d.typeTag
}

/*
Payload returns the opaque payload.
*/
func (d Data) Payload() interface{} {
	return d.payload
}

/*
Equal reports whether two Data values carry the same type tag and a deeply
equal payload.
*/
func (d Data) Equal(other Data) bool {
	if d.typeTag != other.typeTag {
		return false
	}

	return reflect.DeepEqual(d.payload, other.payload)
}
