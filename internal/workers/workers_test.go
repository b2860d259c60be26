// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
)

// countingWorker is a test implementation of the Worker interface
// that tracks how many times Start and Stop were called.
type countingWorker struct {
	starts, stops int
}

func (m *countingWorker) Start() { m.starts++ }
func (m *countingWorker) Stop()  { m.stops++ }

// touchWorker additionally implements Toucher.
type touchWorker struct {
	countingWorker
	touches int
}

func (m *touchWorker) Touch() { m.touches++ }

func TestWorkers_StartStop_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ws := New(w1, w2, w3)
	ws.Start()
	ws.Stop()

	for i, w := range []*countingWorker{w1, w2, w3} {
		if w.starts != 1 || w.stops != 1 {
			t.Errorf("worker[%d]: expected 1 start and 1 stop, got %d/%d", i, w.starts, w.stops)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := New()

	// Should not panic on an empty group
	ws.Start()
	ws.Touch()
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start()
	ws.Stop()
}

func TestWorkers_Order(t *testing.T) {
	order := []int{}

	ws := New(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)
	ws.Start()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_TouchOnlyReachesTouchers(t *testing.T) {
	plain := &countingWorker{}
	toucher := &touchWorker{}

	ws := New(plain, toucher)
	ws.Touch()
	ws.Touch()

	if toucher.touches != 2 {
		t.Errorf("expected 2 touches, got %d", toucher.touches)
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Start.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Start() { *o.order = append(*o.order, o.id) }
func (o *orderWorker) Stop()  {}
