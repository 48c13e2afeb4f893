package services

import (
	"encoding/json"
	"sync"

	"github.com/atelierhq/atelier/backend/internal/config"
	"github.com/atelierhq/atelier/backend/pkg/logger"
	"github.com/hibiken/asynq"
)

const (
	TaskTypeMail = "mail:send"
)

// MailTask represents one outbound email to be delivered.
type MailTask struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"` // HTML
}

// MailQueue defines the interface for mail delivery
type MailQueue interface {
	// Enqueue adds a mail task to the queue
	Enqueue(task *MailTask) error
	// IsAsync returns true if the queue delivers asynchronously via Redis
	IsAsync() bool
	// Close gracefully shuts down the queue
	Close() error
}

// Global mail queue instance
var (
	globalMailQueue MailQueue
	mailQueueOnce   sync.Once
)

// InitMailQueue initializes the global mail queue based on config
func InitMailQueue(cfg *config.Config) MailQueue {
	mailQueueOnce.Do(func() {
		if cfg.Redis.Enabled {
			queue, err := NewAsyncMailQueue(&cfg.Redis)
			if err != nil {
				logger.Warnf("[MailQueue] Redis unavailable, falling back to sync mode: %v", err)
				globalMailQueue = NewSyncMailQueue()
			} else {
				logger.Infof("[MailQueue] Async queue initialized with Redis at %s", cfg.Redis.Addr)
				globalMailQueue = queue
			}
		} else {
			logger.Infof("[MailQueue] Sync queue initialized (Redis disabled)")
			globalMailQueue = NewSyncMailQueue()
		}
	})
	return globalMailQueue
}

// GetMailQueue returns the global mail queue instance
func GetMailQueue() MailQueue {
	return globalMailQueue
}

// AsyncMailQueue implements MailQueue using asynq (Redis-based)
type AsyncMailQueue struct {
	client *asynq.Client
}

// NewAsyncMailQueue creates a new Redis-based async queue
func NewAsyncMailQueue(cfg *config.RedisConfig) (*AsyncMailQueue, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	client := asynq.NewClient(redisOpt)

	// Verify the connection before committing to async mode
	inspector := asynq.NewInspector(redisOpt)
	defer inspector.Close()

	if _, err := inspector.Queues(); err != nil {
		client.Close()
		return nil, err
	}

	return &AsyncMailQueue{client: client}, nil
}

// Enqueue adds a mail task to the async queue
func (q *AsyncMailQueue) Enqueue(task *MailTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}

	t := asynq.NewTask(TaskTypeMail, payload)
	info, err := q.client.Enqueue(t,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
	)
	if err != nil {
		return err
	}

	logger.Infof("[MailQueue] Task enqueued: id=%s, subject=%q", info.ID, task.Subject)
	return nil
}

// IsAsync returns true for async queue
func (q *AsyncMailQueue) IsAsync() bool {
	return true
}

// Close closes the async queue client
func (q *AsyncMailQueue) Close() error {
	return q.client.Close()
}

// SyncMailQueue implements MailQueue with in-process delivery (no Redis)
type SyncMailQueue struct {
	sender func(*MailTask) error
}

// NewSyncMailQueue creates a new synchronous queue
func NewSyncMailQueue() *SyncMailQueue {
	return &SyncMailQueue{}
}

// SetSender sets the function that delivers mail tasks
func (q *SyncMailQueue) SetSender(sender func(*MailTask) error) {
	q.sender = sender
}

// Enqueue delivers the task in a goroutine so form submissions are not
// blocked on SMTP.
func (q *SyncMailQueue) Enqueue(task *MailTask) error {
	if q.sender == nil {
		logger.Warnf("[MailQueue] no sender set, task %q dropped", task.Subject)
		return nil
	}

	go func() {
		if err := q.sender(task); err != nil {
			logger.Warnf("[MailQueue] delivery failed: %v", err)
		}
	}()

	return nil
}

// IsAsync returns false for sync queue
func (q *SyncMailQueue) IsAsync() bool {
	return false
}

// Close is a no-op for sync queue
func (q *SyncMailQueue) Close() error {
	return nil
}
