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
Package registry holds the component registry: a map from component uid to
its ordered list of versions. Components are never back-linked from the
elements that reference them (spec section 9); the registry only ever stores
the Component records themselves.
*/
package registry

import (
	"sort"
	"sync"

	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/identity"
)

/*
Registry maps component uid to its ordered list of versions (version 1
first). Not safe for concurrent use beyond the single-writer model the
mutation engine serializes against.
*/
type Registry struct {
	mutex    sync.RWMutex
	versions map[identity.Uid][]model.Component
}

/*
New creates an empty Registry.
*/
func New() *Registry {
	return &Registry{versions: make(map[identity.Uid][]model.Component)}
}

/*
Put inserts a component version. Versions for a uid must be inserted in
ascending order and appends to the existing slice for that uid, except when c
shares its Locator with the current last entry (an expired twin replacing the
version it closes), in which case it overwrites that entry in place.
*/
func (r *Registry) Put(c model.Component) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	history := r.versions[c.Uid()]

	if len(history) > 0 && history[len(history)-1].Locator == c.Locator {
		history[len(history)-1] = c
	} else {
		history = append(history, c)
	}

	r.versions[c.Uid()] = history
}

/*
Active returns the active (un-expired) version of the component with the
given uid, if any.
*/
func (r *Registry) Active(uid identity.Uid) (model.Component, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, c := range r.versions[uid] {
		if c.IsActive() {
			return c, true
		}
	}

	return model.Component{}, false
}

/*
At returns the component version active at instant t, if any. On a tie at a
boundary instant, the highest version wins (spec section 4.3's finder rule).
*/
func (r *Registry) At(uid identity.Uid, t model.Instant) (model.Component, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	versions := r.versions[uid]

	for i := len(versions) - 1; i >= 0; i-- {
		if versions[i].ExistedAt(t) {
			return versions[i], true
		}
	}

	return model.Component{}, false
}

/*
ByLocator returns the exact component version addressed by loc, if any.
*/
func (r *Registry) ByLocator(loc identity.Locator) (model.Component, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	versions := r.versions[loc.Uid]

	if loc.Version < 1 || loc.Version > len(versions) {
		return model.Component{}, false
	}

	return versions[loc.Version-1], true
}

/*
Versions returns all versions of a component uid, ascending by version.
*/
func (r *Registry) Versions(uid identity.Uid) []model.Component {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]model.Component, len(r.versions[uid]))
	copy(out, r.versions[uid])
	return out
}

/*
AllActive returns every component uid's active version, if it has one,
ordered by uid for determinism.
*/
func (r *Registry) AllActive() []model.Component {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	uids := make([]string, 0, len(r.versions))
	for uid := range r.versions {
		uids = append(uids, string(uid))
	}
	sort.Strings(uids)

	out := make([]model.Component, 0, len(uids))

	for _, uidStr := range uids {
		uid := identity.Uid(uidStr)
		for _, c := range r.versions[uid] {
			if c.IsActive() {
				out = append(out, c)
				break
			}
		}
	}

	return out
}
