// Package graphstore provides an in-memory graph.Store that preserves
// vertex and edge insertion order, so DOT renderings of an equation graph
// are stable across runs.
package graphstore

import (
	"sync"

	"github.com/dominikbraun/graph"
)

type Store[K comparable, T any] struct {
	lock sync.RWMutex

	order            []K
	vertices         map[K]T
	vertexProperties map[K]graph.VertexProperties

	edgeOrder []edgeKey[K]
	edges     map[edgeKey[K]]graph.Edge[K]
}

type edgeKey[K comparable] struct {
	source K
	target K
}

func New[K comparable, T any]() *Store[K, T] {
	return &Store[K, T]{
		vertices:         make(map[K]T),
		vertexProperties: make(map[K]graph.VertexProperties),
		edges:            make(map[edgeKey[K]]graph.Edge[K]),
	}
}

func (s *Store[K, T]) AddVertex(k K, t T, p graph.VertexProperties) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.vertices[k]; ok {
		return graph.ErrVertexAlreadyExists
	}

	s.order = append(s.order, k)
	s.vertices[k] = t
	s.vertexProperties[k] = p

	return nil
}

func (s *Store[K, T]) Vertex(k K) (T, graph.VertexProperties, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	v, ok := s.vertices[k]
	if !ok {
		return v, graph.VertexProperties{}, graph.ErrVertexNotFound
	}

	return v, s.vertexProperties[k], nil
}

func (s *Store[K, T]) RemoveVertex(k K) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.vertices[k]; !ok {
		return graph.ErrVertexNotFound
	}

	for key := range s.edges {
		if key.source == k || key.target == k {
			return graph.ErrVertexHasEdges
		}
	}

	delete(s.vertices, k)
	delete(s.vertexProperties, k)

	for i, hash := range s.order {
		if hash == k {
			s.order = append(s.order[:i], s.order[i+1:]...)

			break
		}
	}

	return nil
}

// ListVertices returns the vertex hashes in insertion order.
func (s *Store[K, T]) ListVertices() ([]K, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return append([]K(nil), s.order...), nil
}

func (s *Store[K, T]) VertexCount() (int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.vertices), nil
}

func (s *Store[K, T]) AddEdge(sourceHash, targetHash K, edge graph.Edge[K]) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	key := edgeKey[K]{source: sourceHash, target: targetHash}
	if _, ok := s.edges[key]; !ok {
		s.edgeOrder = append(s.edgeOrder, key)
	}

	s.edges[key] = edge

	return nil
}

func (s *Store[K, T]) UpdateEdge(sourceHash, targetHash K, edge graph.Edge[K]) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	key := edgeKey[K]{source: sourceHash, target: targetHash}
	if _, ok := s.edges[key]; !ok {
		return graph.ErrEdgeNotFound
	}

	s.edges[key] = edge

	return nil
}

func (s *Store[K, T]) RemoveEdge(sourceHash, targetHash K) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	key := edgeKey[K]{source: sourceHash, target: targetHash}
	delete(s.edges, key)

	for i, k := range s.edgeOrder {
		if k == key {
			s.edgeOrder = append(s.edgeOrder[:i], s.edgeOrder[i+1:]...)

			break
		}
	}

	return nil
}

func (s *Store[K, T]) Edge(sourceHash, targetHash K) (graph.Edge[K], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	edge, ok := s.edges[edgeKey[K]{source: sourceHash, target: targetHash}]
	if !ok {
		return graph.Edge[K]{}, graph.ErrEdgeNotFound
	}

	return edge, nil
}

// ListEdges returns the edges in insertion order.
func (s *Store[K, T]) ListEdges() ([]graph.Edge[K], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	edges := make([]graph.Edge[K], 0, len(s.edgeOrder))
	for _, key := range s.edgeOrder {
		edges = append(edges, s.edges[key])
	}

	return edges, nil
}
