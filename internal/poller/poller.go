package poller

//go:generate mockgen -source=poller.go -destination=mocks.go -package=poller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"teleshop/internal/config"
	"teleshop/internal/domain"
	"teleshop/internal/service/settlementservice"
)

var inFlightInvoices sync.Map

type InvoiceRepo interface {
	FindPending(ctx context.Context, limit uint32) ([]domain.Invoice, error)
}

type Settler interface {
	Settle(ctx context.Context, invoiceID int64) (*settlementservice.Settlement, error)
}

// Service reconciles pending invoices in the background. It is opt-in:
// with a zero interval the default stays "polling is caller-initiated and
// invoices never expire".
type Service struct {
	invoiceRepo InvoiceRepo
	settler     Settler
	limit       uint32
	interval    time.Duration
	workerPool  WorkerPoolI
}

func New(cfg *config.Config, invoiceRepo InvoiceRepo, settler Settler) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		settler:     settler,
		limit:       1000,
		interval:    cfg.PollInterval,
		workerPool:  NewWorkerPool(10),
	}
}

func (s *Service) Start(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Info("invoice poller disabled")
		return
	}
	zap.L().Info("invoice poller started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping invoice poller")
			return
		case <-ticker.C:
			s.processInvoices(ctx)
		}
	}
}

func (s *Service) processInvoices(ctx context.Context) {
	invoices, err := s.invoiceRepo.FindPending(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("failed to fetch pending invoices", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, invoice := range invoices {
		invoice := invoice

		if _, loaded := inFlightInvoices.LoadOrStore(invoice.InvoiceID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlightInvoices.Delete(invoice.InvoiceID)
				return s.handleInvoice(ctx, invoice)
			})
			if err != nil {
				inFlightInvoices.Delete(invoice.InvoiceID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error processing invoices", zap.Error(err))
	}
}

func (s *Service) handleInvoice(ctx context.Context, invoice domain.Invoice) error {
	_, err := s.settler.Settle(ctx, invoice.InvoiceID)
	if errors.Is(err, settlementservice.ErrNotYetPaid) {
		// Still pending; the next tick will look again.
		return nil
	}
	if err != nil {
		return err
	}
	zap.L().Info("invoice settled by poller", zap.Int64("invoiceID", invoice.InvoiceID))
	return nil
}
