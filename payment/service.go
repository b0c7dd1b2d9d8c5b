package payment

import (
	"context"
	"fmt"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"payoo.app/payment/business/bill"
	"payoo.app/payment/business/card"
	"payoo.app/payment/business/gateway"
	"payoo.app/payment/callback"
	"payoo.app/payment/domain"
	"payoo.app/payment/provider"
	"payoo.app/payment/store"
	"payoo.app/payment/transport"
	"payoo.app/payment/txid"
	"payoo.app/payment/workflow"
)

const (
	taskQueue           = "payment-orders"
	defaultTemporalHost = "localhost:7233"
)

var validate = validator.New()

var paymentsDB = sqldb.NewDatabase("payments", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

// Service is the payment service. It owns the payments database and the
// Temporal worker that expires unpaid gateway orders.
//
//encore:service
type Service struct {
	bills     bill.Business
	cards     card.Business
	gateways  gateway.Business
	callbacks *callback.Validator
	temporal  client.Client
	worker    worker.Worker
}

func initService() (*Service, error) {
	source, err := secretSource(gatewaySecretValues(), secrets.BillProviderKeys)
	if err != nil {
		return nil, err
	}

	registry, err := provider.NewDefaultRegistry(source)
	if err != nil {
		return nil, fmt.Errorf("build provider registry: %w", err)
	}
	if err := registry.RequireSecrets(provider.GatewayProviders...); err != nil {
		return nil, fmt.Errorf("payment secrets: %w", err)
	}

	pgxdb := sqldb.Driver(paymentsDB)
	repo := store.NewStore(pgxdb)
	workflow.SetActivityDependencies(domain.NewOrderStateMachine(pgxdb, store.New(pgxdb)))

	hostPort := secrets.TemporalHostPort
	if hostPort == "" {
		hostPort = defaultTemporalHost
	}
	rlog.Info("Connecting to Temporal", "host_port", hostPort)
	c, err := client.Dial(client.Options{HostPort: hostPort})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.GatewayOrder)
	w.RegisterActivity(workflow.RecordOrderOutcomeActivity)
	w.RegisterActivity(workflow.ExpireOrderActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	caller := transport.NewClient(registry.Timeouts())

	return &Service{
		bills:     bill.NewBillBusiness(registry, caller),
		cards:     card.NewCardBusiness(registry, repo, txid.New()),
		gateways:  gateway.NewGatewayBusiness(registry, caller, repo, gateway.DefaultSettings),
		callbacks: callback.NewValidator(registry),
		temporal:  c,
		worker:    w,
	}, nil
}

// Shutdown stops the worker before closing its client.
func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
