package workers

// Workers runs a fixed set of workers as one unit.
type Workers struct {
	workers []Worker
}

// New groups ws.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Start arms every worker in order.
func (w *Workers) Start() {
	for _, worker := range w.workers {
		worker.Start()
	}
}

// Stop disarms every worker in order.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}

// Touch forwards an activity signal to the workers that care about it.
func (w *Workers) Touch() {
	for _, worker := range w.workers {
		if t, ok := worker.(Toucher); ok {
			t.Touch()
		}
	}
}
