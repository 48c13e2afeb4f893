package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/atelierhq/atelier/backend/internal/config"
	"github.com/atelierhq/atelier/backend/pkg/logger"
	"github.com/hibiken/asynq"
)

// MailWorker delivers queued mail tasks when the Redis queue is enabled.
type MailWorker struct {
	server  *asynq.Server
	mux     *asynq.ServeMux
	sender  func(*MailTask) error
	wg      sync.WaitGroup
	running bool
	mu      sync.Mutex
}

// NewMailWorker creates a new worker instance
func NewMailWorker(cfg *config.RedisConfig) *MailWorker {
	if !cfg.Enabled {
		return nil
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Warnf("[MailWorker] Error processing task %s: %v", task.Type(), err)
			}),
		},
	)

	return &MailWorker{
		server: server,
		mux:    asynq.NewServeMux(),
	}
}

// SetSender sets the function that delivers mail tasks
func (w *MailWorker) SetSender(sender func(*MailTask) error) {
	w.sender = sender
}

// Start begins processing tasks
func (w *MailWorker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	w.mux.HandleFunc(TaskTypeMail, w.handleMailTask)

	w.running = true
	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		logger.Infof("[MailWorker] Starting async worker...")
		if err := w.server.Run(w.mux); err != nil {
			logger.Errorf("[MailWorker] Server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the worker
func (w *MailWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	logger.Infof("[MailWorker] Shutting down...")
	w.server.Shutdown()
	w.running = false
	w.wg.Wait()
	logger.Infof("[MailWorker] Shutdown complete")
}

// handleMailTask delivers a single queued email
func (w *MailWorker) handleMailTask(ctx context.Context, t *asynq.Task) error {
	var task MailTask
	if err := json.Unmarshal(t.Payload(), &task); err != nil {
		logger.Warnf("[MailWorker] Failed to unmarshal task: %v", err)
		return err
	}

	if w.sender == nil {
		logger.Warnf("[MailWorker] no sender set, task %q dropped", task.Subject)
		return nil
	}

	return w.sender(&task)
}
