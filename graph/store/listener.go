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
Package store implements the in-memory directed multigraph which backs the
mutation engine and the temporal/path query layers. Vertex and edge identity
in the store is the record's Locator (spec section 4.2): two records with
the same locator are required to be the same record.
*/
package store

import "github.com/krotik/chronograph/graph/model"

/*
Listener is the structural-event contract a Store emits to, used by
persistence backends to mirror store contents durably. Events are emitted at
most once per physical operation, after the store's own index is consistent
(spec section 4.2). Listeners must not re-enter mutation APIs (spec section 5).
*/
type Listener interface {

	/*
		VertexAdded is called synchronously right after a node version is
		added to the store.
	*/
	VertexAdded(n model.Node)

	/*
		VertexRemoved is called synchronously right after a node version is
		removed from the store.
	*/
	VertexRemoved(n model.Node)

	/*
		EdgeAdded is called synchronously right after an edge version is
		added to the store.
	*/
	EdgeAdded(e model.Edge)

	/*
		EdgeRemoved is called synchronously right after an edge version is
		removed from the store.
	*/
	EdgeRemoved(e model.Edge)

	/*
		Flush is called at session boundaries; the listener should apply any
		queued operations at this point.
	*/
	Flush() error
}
