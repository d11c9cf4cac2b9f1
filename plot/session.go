// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aclements/ggdecl/dataset"
	"github.com/google/uuid"
)

// ErrNotRegistered is returned when a dataset reference does not name
// a dataset registered in the session.
var ErrNotRegistered = errors.New("dataset not registered")

// A Session owns the registry of datasets shared by its plots. Plots
// refer to datasets by an identifier issued at registration, so a
// serialized plot can be rebuilt against the same dataset object
// without copying its data.
//
// Registrations are reference counted. Each plot holds one reference
// per dataset attachment and drops them all on Close. A dataset is
// evicted when its count reaches zero.
//
// A Session is safe for concurrent use.
type Session struct {
	mu   sync.Mutex
	ids  map[*dataset.Dataset]string
	byID map[string]*entry
}

type entry struct {
	ds   *dataset.Dataset
	refs int
}

// DefaultSession is the session used by New.
var DefaultSession = NewSession()

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{ids: map[*dataset.Dataset]string{}, byID: map[string]*entry{}}
}

// Register adds a reference to ds and returns its identifier.
// Registering the same dataset again returns the same identifier.
func (s *Session) Register(ds *dataset.Dataset) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.ids[ds]
	if !ok {
		id = strings.ReplaceAll(uuid.NewString(), "-", "")
		s.ids[ds] = id
		s.byID[id] = &entry{ds: ds}
	}
	s.byID[id].refs++
	return id
}

// Release drops one reference to the dataset with identifier id.
func (s *Session) Release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.byID[id]
	if !ok {
		return
	}
	if e.refs--; e.refs <= 0 {
		delete(s.byID, id)
		delete(s.ids, e.ds)
	}
}

// ID returns the identifier of ds, if it is registered.
func (s *Session) ID(ds *dataset.Dataset) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.ids[ds]
	return id, ok
}

// Lookup returns the dataset with identifier id.
func (s *Session) Lookup(id string) (*dataset.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, id)
	}
	return e.ds, nil
}

// Len returns the number of registered datasets.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
