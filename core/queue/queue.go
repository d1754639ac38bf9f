package queue

import (
	"context"
	"encoding/json"

	"slotswapper/core/constants"
	"slotswapper/core/logger"

	"github.com/hibiken/asynq"
)

// NotificationEmailPayload is the task body for the notification mailer.
type NotificationEmailPayload struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Config struct {
	Addr     string
	Password string
	DB       int
}

// Client enqueues background tasks onto the Redis-backed queue.
type Client struct {
	client *asynq.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// EnqueueNotificationEmail queues a mail task. Errors are returned so the
// caller can decide whether the operation is best-effort.
func (c *Client) EnqueueNotificationEmail(ctx context.Context, payload NotificationEmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(constants.TaskTypeNotificationEmail, body, asynq.MaxRetry(3))
	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}
	logger.Info("Queue:EnqueueNotificationEmail", "task_id", info.ID, "queue", info.Queue)
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Server runs the task handlers.
type Server struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewServer(cfg Config) *Server {
	return &Server{
		server: asynq.NewServer(
			asynq.RedisClientOpt{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB},
			asynq.Config{Concurrency: 5},
		),
		mux: asynq.NewServeMux(),
	}
}

func (s *Server) HandleFunc(pattern string, handler func(context.Context, *asynq.Task) error) {
	s.mux.HandleFunc(pattern, handler)
}

// Start runs the worker loop in the background.
func (s *Server) Start() error {
	return s.server.Start(s.mux)
}

func (s *Server) Shutdown() {
	s.server.Shutdown()
}
