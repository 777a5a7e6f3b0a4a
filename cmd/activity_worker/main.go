package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/abdelrhman445/learn-video-vercel/config"
	"github.com/abdelrhman445/learn-video-vercel/internal/application"
	"github.com/abdelrhman445/learn-video-vercel/pkg/helpers"
)

// Consumes activity events published by the API and mirrors them into the
// Elasticsearch logs index, so the audit trail is searchable without
// touching the primary database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.RabbitMQURL == "" || cfg.RabbitMQActivityQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	addrs := cfg.ESAddrs()
	if len(addrs) == 0 {
		log.Fatal("Elasticsearch not configured")
	}

	es, err := helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		log.Fatalf("elasticsearch client: %v", err)
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQActivityQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQActivityQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	ctx := context.Background()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var ev application.ActivityEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}

			body, err := json.Marshal(ev)
			if err != nil {
				_ = msg.Nack(false, false)
				continue
			}
			req := esapi.IndexRequest{
				Index:      cfg.ESLogsIndex,
				DocumentID: ev.ID,
				Body:       strings.NewReader(string(body)),
			}
			c, cancel := context.WithTimeout(ctx, 10*time.Second)
			res, err := req.Do(c, es)
			cancel()
			if err != nil {
				log.Printf("index failed: %v", err)
				_ = msg.Nack(false, true)
				continue
			}
			if res.IsError() {
				log.Printf("index response: %s", res.Status())
				_ = res.Body.Close()
				_ = msg.Nack(false, false)
				continue
			}
			_ = res.Body.Close()
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("activity worker listening on queue=%s", cfg.RabbitMQActivityQueue)
	<-stop
	log.Printf("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
