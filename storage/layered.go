// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package storage

import (
	"bytes"
	"errors"
	"slices"
)

// Layered is a Store buffering modifications in a stack of nested
// transaction layers on top of a base store. Reads see the innermost pending
// modification first. Committing the innermost layer merges it into its
// parent, or into the base store if it is the outermost layer; reverting it
// discards its modifications. Without any open layer, all operations are
// forwarded to the base store directly.
type Layered struct {
	base   Store
	layers []*layer // < innermost layer last
}

type layer struct {
	entries map[string]entry
}

type entry struct {
	value   []byte
	deleted bool
}

// NewLayered wraps the given store.
func NewLayered(base Store) *Layered {
	return &Layered{base: base}
}

// Depth returns the number of currently open transaction layers.
func (s *Layered) Depth() int {
	return len(s.layers)
}

// Begin opens a new transaction layer nested in the current one.
func (s *Layered) Begin() {
	s.layers = append(s.layers, &layer{entries: map[string]entry{}})
}

// Commit closes the innermost layer and applies its modifications to the
// enclosing layer or the base store.
func (s *Layered) Commit() error {
	top := s.pop()
	if len(s.layers) > 0 {
		parent := s.layers[len(s.layers)-1]
		for key, entry := range top.entries {
			parent.entries[key] = entry
		}
		return nil
	}

	// Keys are applied in order to make the base store's history deterministic.
	keys := make([]string, 0, len(top.entries))
	for key := range top.entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var errs []error
	for _, key := range keys {
		entry := top.entries[key]
		if entry.deleted {
			errs = append(errs, s.base.Delete([]byte(key)))
		} else {
			errs = append(errs, s.base.Set([]byte(key), entry.value))
		}
	}
	return errors.Join(errs...)
}

// Revert closes the innermost layer and discards its modifications.
func (s *Layered) Revert() {
	s.pop()
}

// Transaction runs the given function inside a new layer. The layer is
// committed if the function succeeds and reverted otherwise, including when
// it panics.
func (s *Layered) Transaction(run func() error) error {
	s.Begin()
	done := false
	defer func() {
		if !done {
			s.Revert()
		}
	}()
	if err := run(); err != nil {
		return err
	}
	done = true
	return s.Commit()
}

func (s *Layered) pop() *layer {
	if len(s.layers) == 0 {
		panic("no open transaction layer")
	}
	top := s.layers[len(s.layers)-1]
	s.layers = s.layers[:len(s.layers)-1]
	return top
}

func (s *Layered) Get(key []byte) ([]byte, error) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if entry, found := s.layers[i].entries[string(key)]; found {
			if entry.deleted {
				return nil, ErrNotFound
			}
			return bytes.Clone(entry.value), nil
		}
	}
	return s.base.Get(key)
}

func (s *Layered) Set(key []byte, value []byte) error {
	if len(s.layers) == 0 {
		return s.base.Set(key, value)
	}
	s.layers[len(s.layers)-1].entries[string(key)] = entry{value: bytes.Clone(value)}
	return nil
}

func (s *Layered) Delete(key []byte) error {
	if len(s.layers) == 0 {
		return s.base.Delete(key)
	}
	s.layers[len(s.layers)-1].entries[string(key)] = entry{deleted: true}
	return nil
}

func (s *Layered) Iterate(prefix []byte, visit func(key, value []byte) error) error {
	if len(s.layers) > 0 {
		panic("unable to iterate with open transaction layer")
	}
	return s.base.Iterate(prefix, visit)
}

func (s *Layered) Close() error {
	if len(s.layers) > 0 {
		return errors.New("unable to close store with open transaction layer")
	}
	return s.base.Close()
}
