package repository

import (
	"github.com/krotik/chronograph/graph/model"
)

/*
pendingOp is one structural event queued by QueuedListener awaiting Flush.
*/
type pendingOp struct {
	kind string // "vertex_added", "vertex_removed", "edge_added", "edge_removed"
	node model.Node
	edge model.Edge
}

/*
QueuedListener implements repository.Listener by queuing every structural
event the graph store emits and applying them against a NodeRepository and
EdgeRepository only on Flush (spec section 6: "the listener queues
operations and applies them on flush"). It must not be reused across
sessions: construct a fresh one per Session.
*/
type QueuedListener struct {
	nodeRepo NodeRepository
	edgeRepo EdgeRepository

	pending []pendingOp
}

/*
NewQueuedListener creates a listener that will apply its queued events
against nodeRepo and edgeRepo on Flush.
*/
func NewQueuedListener(nodeRepo NodeRepository, edgeRepo EdgeRepository) *QueuedListener {
	return &QueuedListener{nodeRepo: nodeRepo, edgeRepo: edgeRepo}
}

func (l *QueuedListener) VertexAdded(n model.Node) {
	l.pending = append(l.pending, pendingOp{kind: "vertex_added", node: n})
}

func (l *QueuedListener) VertexRemoved(n model.Node) {
	l.pending = append(l.pending, pendingOp{kind: "vertex_removed", node: n})
}

func (l *QueuedListener) EdgeAdded(e model.Edge) {
	l.pending = append(l.pending, pendingOp{kind: "edge_added", edge: e})
}

func (l *QueuedListener) EdgeRemoved(e model.Edge) {
	l.pending = append(l.pending, pendingOp{kind: "edge_removed", edge: e})
}

/*
Flush applies every queued operation against the backing repositories, in
order, and clears the queue. A failed Save is a BackendError in the spec's
taxonomy: Flush stops at the first failure, leaving the remaining events
queued so a caller can retry or fall through to Rollback.
*/
func (l *QueuedListener) Flush() error {
	for len(l.pending) > 0 {
		op := l.pending[0]

		var err error

		switch op.kind {
		case "vertex_added":
			err = l.nodeRepo.Save(op.node)
		case "vertex_removed":
			l.nodeRepo.Expire(op.node.Uid(), op.node.Created)
		case "edge_added":
			err = l.edgeRepo.Save(op.edge)
		case "edge_removed":
			l.edgeRepo.Expire(op.edge.Uid(), op.edge.Created)
		}

		if err != nil {
			return err
		}

		l.pending = l.pending[1:]
	}

	return nil
}

/*
Discard drops every queued event without applying it (used by Session's
Rollback).
*/
func (l *QueuedListener) Discard() {
	l.pending = nil
}

/*
Session is the scoped resource contract of spec section 6: Handle exposes
the backend handle (here, the listener itself), Commit flushes queued
events, Rollback discards them, and Close is idempotent and safe to defer
unconditionally.
*/
type Session struct {
	listener *QueuedListener
	closed   bool
}

/*
NewSession wraps a QueuedListener as a Session.
*/
func NewSession(listener *QueuedListener) *Session {
	return &Session{listener: listener}
}

/*
Handle exposes the backend handle.
*/
func (s *Session) Handle() *QueuedListener {
	return s.listener
}

/*
Commit flushes every queued structural event against the backing
repositories.
*/
func (s *Session) Commit() error {
	if s.closed {
		return nil
	}
	return s.listener.Flush()
}

/*
Rollback discards every queued structural event without applying it.
*/
func (s *Session) Rollback() {
	if s.closed {
		return
	}
	s.listener.Discard()
}

/*
Close releases the session. In-memory sessions require no teardown beyond
dropping references (spec section 5); Close is idempotent and safe under a
defer regardless of whether Commit or Rollback already ran.
*/
func (s *Session) Close() {
	s.closed = true
}
