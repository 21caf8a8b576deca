package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/referral-ledger/pkg/bootstrap"
	"github.com/chris/referral-ledger/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Events.SQSQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}

	app, err := bootstrap.New(context.Background(), cfg, nil, bootstrap.DefaultAWSConfig)
	if err != nil {
		log.Fatalf("failed to build services: %v", err)
	}

	h := &Handler{
		Ledger:     app.Ledger,
		Publisher:  app.Publisher,
		StaleAfter: cfg.Reminder.StaleAfter,
		Now:        func() time.Time { return time.Now().UTC() },
	}
	lambda.Start(h.HandleRequest)
}
