package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/occupa-lo-studente/internal/adapter"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

const (
	defaultMailQueueSize   = 64
	defaultMailConcurrency = 2
	defaultMailTimeout     = 30 * time.Second
)

// MailWorker delivers queued emails in the background. Delivery is best
// effort: failures are logged and the message is dropped.
type MailWorker struct {
	queue       chan models.Mail
	mailer      adapter.Mailer
	concurrency int
	sendTimeout time.Duration

	logger *logger.Logger
}

// NewMailWorker returns a worker with a queue of size messages. Zero values
// select the defaults.
func NewMailWorker(mailer adapter.Mailer, size, concurrency int, sendTimeout time.Duration, logger *logger.Logger) *MailWorker {
	if size <= 0 {
		size = defaultMailQueueSize
	}
	if concurrency <= 0 {
		concurrency = defaultMailConcurrency
	}
	if sendTimeout <= 0 {
		sendTimeout = defaultMailTimeout
	}

	return &MailWorker{
		queue:       make(chan models.Mail, size),
		mailer:      mailer,
		concurrency: concurrency,
		sendTimeout: sendTimeout,
		logger:      logger,
	}
}

// Enqueue schedules mail for delivery. It never blocks and reports false
// when the queue is full.
func (w *MailWorker) Enqueue(mail models.Mail) bool {
	select {
	case w.queue <- mail:
		return true
	default:
		w.logger.Warn().Str("func", "*MailWorker.Enqueue").Str("to", mail.To).Msg("mail queue is full, dropping message")
		return false
	}
}

// Run delivers messages until ctx is cancelled, then sends what is left in
// the queue.
func (w *MailWorker) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for range w.concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.loop(ctx)
		}()
	}
	wg.Wait()
}

func (w *MailWorker) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case mail := <-w.queue:
			w.send(mail)
		}
	}
}

func (w *MailWorker) drain() {
	for {
		select {
		case mail := <-w.queue:
			w.send(mail)
		default:
			return
		}
	}
}

func (w *MailWorker) send(mail models.Mail) {
	ctx, cancel := context.WithTimeout(context.Background(), w.sendTimeout)
	defer cancel()

	if err := w.mailer.Send(ctx, mail); err != nil {
		w.logger.Err(err).Str("func", "*MailWorker.send").
			Str("to", mail.To).
			Str("subject", mail.Subject).
			Msg("error sending mail")
		return
	}
	w.logger.Info().Str("to", mail.To).Str("subject", mail.Subject).Msg("mail sent")
}
