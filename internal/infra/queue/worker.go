package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DiscoveryRunner executes one discovery job and reports how many leads
// were inserted. Implemented by the find-leads workflow.
type DiscoveryRunner interface {
	Run(ctx context.Context, job DiscoveryJob) (inserted int, err error)
}

type Worker struct {
	Channel *amqp.Channel
	Runner  DiscoveryRunner
}

func NewWorker(ch *amqp.Channel, runner DiscoveryRunner) *Worker {
	return &Worker{Channel: ch, Runner: runner}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var job DiscoveryJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Printf("❌ [WORKER] Invalid JSON: %s", err)
				// Malformed message. Reject without requeue so the queue
				// does not jam.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Discovering leads for user %s (%s / %s)", job.UserID, job.Industry, job.Location)

			inserted, err := w.Runner.Run(context.Background(), job)
			if err != nil {
				log.Printf("❌ [WORKER] Discovery failed: %s", err)
				d.Nack(false, false)
				continue
			}

			log.Printf("✅ [WORKER] Discovery done for user %s: %d leads inserted", job.UserID, inserted)
			d.Ack(false)
		}
	}()

	log.Printf(" [*] Worker running, waiting on queue '%s'", queueName)
	<-forever
}
