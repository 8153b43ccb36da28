package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tendersaarthi/tendersaarthi-api/internal/models"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/jobs"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/messaging"
)

// JobTenderPublished is the job type handled by AlertDispatcher.
const JobTenderPublished = "tender.published"

// AlertRoutingKey is the routing key of instant alert messages.
const AlertRoutingKey = "alerts.instant"

type alertSubscriberRepository interface {
	ListEnabled(ctx context.Context, frequency models.AlertFrequency) ([]models.AlertPreference, error)
}

// AlertDispatcherConfig tunes the dispatcher worker pool.
type AlertDispatcherConfig struct {
	Workers    int
	MaxRetries int
	RetryDelay time.Duration
}

// AlertDispatcher matches newly published tenders against instant alert subscriptions and
// publishes one message per match.
type AlertDispatcher struct {
	tenders   tenderFinder
	prefs     alertSubscriberRepository
	publisher messaging.Publisher
	metrics   *MetricsService
	logger    *zap.Logger
	queue     *jobs.Queue
	now       func() time.Time

	mu   sync.Mutex
	sent map[string]map[string]bool
}

// NewAlertDispatcher constructs an AlertDispatcher. Call Start before notifying it.
func NewAlertDispatcher(tenders tenderFinder, prefs alertSubscriberRepository, publisher messaging.Publisher, metrics *MetricsService, logger *zap.Logger, cfg AlertDispatcherConfig) *AlertDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if publisher == nil {
		publisher = messaging.NewLogPublisher(logger)
	}
	d := &AlertDispatcher{
		tenders:   tenders,
		prefs:     prefs,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		sent:      make(map[string]map[string]bool),
	}
	d.queue = jobs.NewQueue("alerts", d.handle, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		Logger:     logger,
		OnExhausted: func(job jobs.Job, _ error) {
			if tenderID, ok := job.Payload.(string); ok {
				d.forget(tenderID)
			}
		},
	})
	return d
}

// Start launches the worker pool.
func (d *AlertDispatcher) Start(ctx context.Context) {
	d.queue.Start(ctx)
}

// Stop waits for in-flight jobs and stops the workers.
func (d *AlertDispatcher) Stop() {
	d.queue.Stop()
}

// NotifyPublished queues alert matching for a tender. Failures are logged and never reach the
// publishing request.
func (d *AlertDispatcher) NotifyPublished(ctx context.Context, tenderID string) {
	job := jobs.Job{ID: tenderID, Type: JobTenderPublished, Payload: tenderID}
	if err := d.queue.Enqueue(ctx, job); err != nil {
		d.logger.Warn("failed to queue alert matching", zap.String("tender_id", tenderID), zap.Error(err))
	}
}

func (d *AlertDispatcher) handle(ctx context.Context, job jobs.Job) error {
	tenderID, ok := job.Payload.(string)
	if !ok {
		d.logger.Error("unexpected alert job payload", zap.String("job_id", job.ID), zap.Any("payload", job.Payload))
		return nil
	}
	_, err := d.Dispatch(ctx, tenderID)
	return err
}

// Dispatch publishes the alerts of one tender and returns how many were sent. Subscribers already
// alerted by an earlier attempt for the same tender are skipped.
func (d *AlertDispatcher) Dispatch(ctx context.Context, tenderID string) (int, error) {
	tender, err := d.tenders.FindByID(ctx, tenderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			d.forget(tenderID)
			return 0, nil
		}
		return 0, fmt.Errorf("load tender %s: %w", tenderID, err)
	}
	now := d.now()
	if tender.Status != models.TenderStatusActive || !tender.IsOpen(now) {
		d.forget(tenderID)
		return 0, nil
	}

	prefs, err := d.prefs.ListEnabled(ctx, models.AlertInstant)
	if err != nil {
		return 0, fmt.Errorf("list alert subscriptions: %w", err)
	}

	var sent int
	var failures []error
	for _, pref := range prefs {
		if !MatchesAlert(pref, *tender, now) || d.alreadySent(tenderID, pref.UserID) {
			continue
		}
		body, err := json.Marshal(alertMessage(pref, tender, now))
		if err != nil {
			return sent, fmt.Errorf("encode alert: %w", err)
		}
		err = d.publisher.Publish(ctx, AlertRoutingKey, body)
		d.metrics.RecordAlertPublish(err)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		d.markSent(tenderID, pref.UserID)
		sent++
	}

	d.logger.Info("tender alerts dispatched",
		zap.String("tender_id", tenderID),
		zap.Int("subscribers", len(prefs)),
		zap.Int("sent", sent),
		zap.Int("failed", len(failures)))

	if len(failures) > 0 {
		return sent, fmt.Errorf("publish alerts for %s: %w", tenderID, errors.Join(failures...))
	}
	d.forget(tenderID)
	return sent, nil
}

func alertMessage(pref models.AlertPreference, t *models.Tender, now time.Time) models.AlertMatch {
	msg := models.AlertMatch{
		UserID:         pref.UserID,
		WhatsAppNumber: pref.WhatsAppNumber,
		TenderID:       t.ID,
		Title:          t.Title,
		ReferenceNo:    t.ReferenceNo,
		Authority:      t.Authority,
		State:          t.State,
		TenderValue:    t.TenderValue,
		MatchedAt:      now,
	}
	if msg.TenderValue == "" && t.TenderValueNumeric != nil {
		msg.TenderValue = FormatINR(*t.TenderValueNumeric)
	}
	if t.BidEndTS != nil {
		msg.ClosesAt = *t.BidEndTS
	}
	return msg
}

func (d *AlertDispatcher) alreadySent(tenderID, userID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sent[tenderID][userID]
}

func (d *AlertDispatcher) markSent(tenderID, userID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sent[tenderID] == nil {
		d.sent[tenderID] = make(map[string]bool)
	}
	d.sent[tenderID][userID] = true
}

func (d *AlertDispatcher) forget(tenderID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.sent, tenderID)
}
