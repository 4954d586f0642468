package async

import (
	"context"
	"sync"
)

type Worker interface {
	Run(context.Context, func())
	Shutdown()
}

// Start launches every worker on its own goroutine. Each one releases wg when its Run returns.
func Start(ctx context.Context, wg *sync.WaitGroup, workers ...Worker) {
	for _, worker := range workers {
		wg.Add(1)
		go worker.Run(ctx, wg.Done)
	}
}

// ShutdownAll asks every worker to stop in reverse start order.
func ShutdownAll(workers ...Worker) {
	for i := len(workers) - 1; i >= 0; i-- {
		workers[i].Shutdown()
	}
}
