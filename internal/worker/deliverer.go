package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointment-reminder/internal/model"
	"github.com/aliskhannn/appointment-reminder/internal/rabbitmq/queue"
)

//go:generate mockgen -source=deliverer.go -destination=../mocks/worker/deliverer_mock.go -package=mocks
type reminderConsumer interface {
	Consume(ctx context.Context, out chan<- queue.ReminderMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.ReminderMessage, strategy retry.Strategy)
}

type statusReader interface {
	GetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error)
}

// Deliverer is the pool of delivery workers fed by the work queue.
type Deliverer struct {
	queue   reminderConsumer
	handler messageHandler
	status  statusReader
}

func NewDeliverer(q reminderConsumer, h messageHandler, s statusReader) *Deliverer {
	return &Deliverer{
		queue:   q,
		handler: h,
		status:  s,
	}
}

// Run consumes due tasks with workerCount workers until ctx is done.
func (d *Deliverer) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	msgChan := make(chan queue.ReminderMessage, workerCount*10)

	go func() {
		if err := d.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume reminder tasks")
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
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("delivery worker-%d channel closed, shutting down", id)
						return
					}

					if d.skip(ctx, strategy, msg) {
						continue
					}

					d.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("deliverer stopped")
}

// skip filters tasks whose cached status is final. A failed lookup does not
// skip: the handler reloads the record under its lease anyway.
func (d *Deliverer) skip(ctx context.Context, strategy retry.Strategy, msg queue.ReminderMessage) bool {
	status, err := d.status.GetStatus(ctx, strategy, msg.ID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Msg("failed to get dispatch status")
		return false
	}

	if status == model.StatusSent || status == model.StatusCancelled {
		zlog.Logger.Printf("dispatch %s is %s, skipping", msg.ID, status)
		return true
	}

	return false
}
