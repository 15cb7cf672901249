/*
 * Chronograph
 *
 * Copyright 2026 The Chronograph Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package codec implements the data codec contract of spec section 6: two
canonical codecs for the opaque payload a model.Data carries, a key-value
property codec (a flat map[string]interface{}, in the same shape EliasDB's
node/edge attribute maps use) and a JSON codec for arbitrary payload shapes.
*/
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/krotik/chronograph/graph/model"
)

/*
Codec serializes and deserializes a model.Data payload to and from a
backend-agnostic wire form (spec section 6: "serialize(Data) -> bytes-or-map;
deserialize(bytes-or-map) -> Data").
*/
type Codec interface {
	Serialize(d model.Data) (interface{}, error)
	Deserialize(typeTag string, wire interface{}) (model.Data, error)
}

/*
PropertyCodec serializes a payload that is already a flat
map[string]interface{} of scalar-ish values, the shape EliasDB's node/edge
attribute maps use. It performs no further transformation: the wire form is
the map itself, suited to backends with a native key-value row layout.
*/
type PropertyCodec struct{}

/*
Serialize returns the payload unchanged if it is a map[string]interface{},
and an error otherwise.
*/
func (PropertyCodec) Serialize(d model.Data) (interface{}, error) {
	props, ok := d.Payload().(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("codec: property codec requires a map[string]interface{} payload, got %T", d.Payload())
	}

	return props, nil
}

/*
Deserialize expects wire to already be a map[string]interface{} (as produced
by Serialize, or as read back from a key-value store) and wraps it in a
Data value carrying typeTag.
*/
func (PropertyCodec) Deserialize(typeTag string, wire interface{}) (model.Data, error) {
	props, ok := wire.(map[string]interface{})
	if !ok {
		return model.Data{}, fmt.Errorf("codec: property codec requires a map[string]interface{} wire value, got %T", wire)
	}

	return model.NewData(typeTag, props), nil
}

/*
JSONCodec serializes a payload of any JSON-marshalable shape to a []byte.
*/
type JSONCodec struct{}

/*
Serialize marshals the payload to JSON bytes.
*/
func (JSONCodec) Serialize(d model.Data) (interface{}, error) {
	bs, err := json.Marshal(d.Payload())
	if err != nil {
		return nil, fmt.Errorf("codec: json marshal failed: %w", err)
	}

	return bs, nil
}

/*
Deserialize unmarshals wire (expected to be []byte or string) into a generic
interface{} value and wraps it in a Data carrying typeTag.
*/
func (JSONCodec) Deserialize(typeTag string, wire interface{}) (model.Data, error) {
	var bs []byte

	switch v := wire.(type) {
	case []byte:
		bs = v
	case string:
		bs = []byte(v)
	default:
		return model.Data{}, fmt.Errorf("codec: json codec requires []byte or string wire value, got %T", wire)
	}

	var payload interface{}
	if err := json.Unmarshal(bs, &payload); err != nil {
		return model.Data{}, fmt.Errorf("codec: json unmarshal failed: %w", err)
	}

	return model.NewData(typeTag, payload), nil
}
