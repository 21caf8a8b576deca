package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/referral-ledger/pkg/bootstrap"
	"github.com/chris/referral-ledger/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app, err := bootstrap.New(context.Background(), cfg, nil, bootstrap.DefaultAWSConfig)
	if err != nil {
		log.Fatalf("failed to build services: %v", err)
	}

	h := &Handler{Ledger: app.Ledger}
	lambda.Start(h.HandleRequest)
}
