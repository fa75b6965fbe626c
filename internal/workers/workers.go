package workers

// Workers aggregates background workers and starts them in registration
// order.
type Workers struct {
	workers []Worker
}

// NewWorkers builds a Workers aggregate from the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
