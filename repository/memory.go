package repository

import (
	"fmt"
	"sort"
	"sync"

	"github.com/krotik/chronograph/graph/model"
	"github.com/krotik/chronograph/identity"
)

/*
MemoryNodes is the in-memory reference NodeRepository.
*/
type MemoryNodes struct {
	mutex    sync.RWMutex
	versions map[identity.Uid][]model.Node
}

/*
NewMemoryNodes creates an empty MemoryNodes repository.
*/
func NewMemoryNodes() *MemoryNodes {
	return &MemoryNodes{versions: make(map[identity.Uid][]model.Node)}
}

/*
Save inserts a node version, rejecting a duplicate locator (spec section 6).
*/
func (r *MemoryNodes) Save(n model.Node) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.versions[n.Uid()] {
		if existing.Locator == n.Locator {
			return fmt.Errorf("repository: duplicate locator %s", n.Locator)
		}
	}

	r.versions[n.Uid()] = append(r.versions[n.Uid()], n)
	return nil
}

func (r *MemoryNodes) FindActive(uid identity.Uid) (model.Node, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	versions := r.versions[uid]
	if len(versions) == 0 {
		return model.Node{}, false
	}

	last := versions[len(versions)-1]
	if !last.IsActive() {
		return model.Node{}, false
	}

	return last, true
}

func (r *MemoryNodes) FindAt(uid identity.Uid, t model.Instant) (model.Node, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	versions := r.versions[uid]
	for i := len(versions) - 1; i >= 0; i-- {
		if versions[i].ExistedAt(t) {
			return versions[i], true
		}
	}

	return model.Node{}, false
}

func (r *MemoryNodes) Find(loc identity.Locator) (model.Node, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	versions := r.versions[loc.Uid]
	if loc.Version < 1 || loc.Version > len(versions) {
		return model.Node{}, fmt.Errorf("repository: node %s not found", loc)
	}

	return versions[loc.Version-1], nil
}

func (r *MemoryNodes) FindVersions(uid identity.Uid) []model.Node {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]model.Node, len(r.versions[uid]))
	copy(out, r.versions[uid])
	return out
}

func (r *MemoryNodes) Expire(uid identity.Uid, t model.Instant) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	versions := r.versions[uid]
	if len(versions) == 0 {
		return false
	}

	last := versions[len(versions)-1]
	if !last.IsActive() {
		return false
	}

	versions[len(versions)-1] = last.WithExpiry(t)
	return true
}

func (r *MemoryNodes) Delete(uid identity.Uid) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.versions[uid]; !ok {
		return false
	}

	delete(r.versions, uid)
	return true
}

func (r *MemoryNodes) AllIds() []identity.Uid {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return sortedUids(r.versions)
}

func (r *MemoryNodes) AllActiveIds() []identity.Uid {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var out []identity.Uid
	for _, uid := range sortedUids(r.versions) {
		versions := r.versions[uid]
		if len(versions) > 0 && versions[len(versions)-1].IsActive() {
			out = append(out, uid)
		}
	}
	return out
}

/*
MemoryEdges is the in-memory reference EdgeRepository.
*/
type MemoryEdges struct {
	mutex    sync.RWMutex
	versions map[identity.Uid][]model.Edge
}

/*
NewMemoryEdges creates an empty MemoryEdges repository.
*/
func NewMemoryEdges() *MemoryEdges {
	return &MemoryEdges{versions: make(map[identity.Uid][]model.Edge)}
}

func (r *MemoryEdges) Save(e model.Edge) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.versions[e.Uid()] {
		if existing.Locator == e.Locator {
			return fmt.Errorf("repository: duplicate locator %s", e.Locator)
		}
	}

	r.versions[e.Uid()] = append(r.versions[e.Uid()], e)
	return nil
}

func (r *MemoryEdges) FindActive(uid identity.Uid) (model.Edge, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	versions := r.versions[uid]
	if len(versions) == 0 {
		return model.Edge{}, false
	}

	last := versions[len(versions)-1]
	if !last.IsActive() {
		return model.Edge{}, false
	}

	return last, true
}

func (r *MemoryEdges) FindAt(uid identity.Uid, t model.Instant) (model.Edge, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	versions := r.versions[uid]
	for i := len(versions) - 1; i >= 0; i-- {
		if versions[i].ExistedAt(t) {
			return versions[i], true
		}
	}

	return model.Edge{}, false
}

func (r *MemoryEdges) Find(loc identity.Locator) (model.Edge, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	versions := r.versions[loc.Uid]
	if loc.Version < 1 || loc.Version > len(versions) {
		return model.Edge{}, fmt.Errorf("repository: edge %s not found", loc)
	}

	return versions[loc.Version-1], nil
}

func (r *MemoryEdges) FindVersions(uid identity.Uid) []model.Edge {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]model.Edge, len(r.versions[uid]))
	copy(out, r.versions[uid])
	return out
}

func (r *MemoryEdges) Expire(uid identity.Uid, t model.Instant) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	versions := r.versions[uid]
	if len(versions) == 0 {
		return false
	}

	last := versions[len(versions)-1]
	if !last.IsActive() {
		return false
	}

	versions[len(versions)-1] = last.WithExpiry(t)
	return true
}

func (r *MemoryEdges) Delete(uid identity.Uid) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.versions[uid]; !ok {
		return false
	}

	delete(r.versions, uid)
	return true
}

func (r *MemoryEdges) AllIds() []identity.Uid {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return sortedUids(r.versions)
}

func (r *MemoryEdges) AllActiveIds() []identity.Uid {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var out []identity.Uid
	for _, uid := range sortedUids(r.versions) {
		versions := r.versions[uid]
		if len(versions) > 0 && versions[len(versions)-1].IsActive() {
			out = append(out, uid)
		}
	}
	return out
}

/*
MemoryComponents is the in-memory reference ComponentRepository.
*/
type MemoryComponents struct {
	mutex    sync.RWMutex
	versions map[identity.Uid][]model.Component
}

/*
NewMemoryComponents creates an empty MemoryComponents repository.
*/
func NewMemoryComponents() *MemoryComponents {
	return &MemoryComponents{versions: make(map[identity.Uid][]model.Component)}
}

func (r *MemoryComponents) Save(c model.Component) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.versions[c.Uid()] {
		if existing.Locator == c.Locator {
			return fmt.Errorf("repository: duplicate locator %s", c.Locator)
		}
	}

	r.versions[c.Uid()] = append(r.versions[c.Uid()], c)
	return nil
}

func (r *MemoryComponents) FindActive(uid identity.Uid) (model.Component, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	versions := r.versions[uid]
	if len(versions) == 0 {
		return model.Component{}, false
	}

	last := versions[len(versions)-1]
	if !last.IsActive() {
		return model.Component{}, false
	}

	return last, true
}

func (r *MemoryComponents) FindAt(uid identity.Uid, t model.Instant) (model.Component, bool) {
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

func (r *MemoryComponents) Find(loc identity.Locator) (model.Component, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	versions := r.versions[loc.Uid]
	if loc.Version < 1 || loc.Version > len(versions) {
		return model.Component{}, fmt.Errorf("repository: component %s not found", loc)
	}

	return versions[loc.Version-1], nil
}

func (r *MemoryComponents) FindVersions(uid identity.Uid) []model.Component {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]model.Component, len(r.versions[uid]))
	copy(out, r.versions[uid])
	return out
}

func (r *MemoryComponents) Expire(uid identity.Uid, t model.Instant) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	versions := r.versions[uid]
	if len(versions) == 0 {
		return false
	}

	last := versions[len(versions)-1]
	if !last.IsActive() {
		return false
	}

	versions[len(versions)-1] = last.WithExpiry(t)
	return true
}

func (r *MemoryComponents) Delete(uid identity.Uid) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.versions[uid]; !ok {
		return false
	}

	delete(r.versions, uid)
	return true
}

func (r *MemoryComponents) AllIds() []identity.Uid {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return sortedUids(r.versions)
}

func (r *MemoryComponents) AllActiveIds() []identity.Uid {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var out []identity.Uid
	for _, uid := range sortedUids(r.versions) {
		versions := r.versions[uid]
		if len(versions) > 0 && versions[len(versions)-1].IsActive() {
			out = append(out, uid)
		}
	}
	return out
}

/*
sortedUids is a small helper shared by all three in-memory repositories so
AllIds/AllActiveIds return a deterministic order for tests.
*/
func sortedUids[T any](versions map[identity.Uid][]T) []identity.Uid {
	out := make([]identity.Uid, 0, len(versions))
	for uid := range versions {
		out = append(out, uid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
