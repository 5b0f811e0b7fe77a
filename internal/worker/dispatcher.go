// Package worker runs the delivery worker pool: it consumes delivery
// requests from the queue and hands each to the message handler.
package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/kisanmitra/weather-engine/internal/rabbitmq/queue"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks

type deliveryConsumer interface {
	Consume(ctx context.Context, out chan<- queue.DeliveryMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.DeliveryMessage, strategy retry.Strategy)
}

type Dispatcher struct {
	queue   deliveryConsumer
	handler messageHandler
}

func NewDispatcher(q deliveryConsumer, h messageHandler) *Dispatcher {
	return &Dispatcher{
		queue:   q,
		handler: h,
	}
}

// Run consumes delivery messages with workerCount goroutines until the
// context is canceled. It blocks until all workers have drained.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.DeliveryMessage, workerCount*10)

	go func() {
		if err := d.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume delivery messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("delivery worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("delivery worker-%d shutting down", id)
					return
				case msg := <-msgChan:
					d.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	wg.Wait()
	zlog.Logger.Info().Msg("delivery dispatcher stopped")
}
