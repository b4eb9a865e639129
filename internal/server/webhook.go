package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdateHandler consumes decoded updates; satisfied by service.Moderation
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update *tgbotapi.Update)
}

// Webhook is the inbound HTTP endpoint for platform updates. It always
// acknowledges with 200, even for bodies it cannot decode, so the platform
// never redelivers, and it processes each update in its own goroutine so the
// acknowledgment is never delayed by moderation RPCs.
type Webhook struct {
	svc    UpdateHandler
	addr   string
	path   string
	server *http.Server
}

// NewWebhook creates a new webhook server
func NewWebhook(svc UpdateHandler, addr, path string) *Webhook {
	return &Webhook{
		svc:  svc,
		addr: addr,
		path: path,
	}
}

// Start starts the HTTP server (blocking)
func (w *Webhook) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc(w.path, w.handleUpdate)
	mux.HandleFunc("/health", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
		rw.Write([]byte("ok"))
	})

	w.server = &http.Server{
		Addr:    w.addr,
		Handler: mux,
	}

	fmt.Printf("[Webhook] Listening on %s%s\n", w.addr, w.path)
	return w.server.ListenAndServe()
}

// Stop shuts the HTTP server down
func (w *Webhook) Stop() error {
	if w.server != nil {
		return w.server.Shutdown(context.Background())
	}
	return nil
}

func (w *Webhook) handleUpdate(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(rw, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		// Ack anyway: a malformed envelope aborts this event only and must
		// not trigger redelivery
		fmt.Printf("[Webhook] Dropping undecodable update: %v\n", err)
		rw.WriteHeader(http.StatusOK)
		return
	}

	go w.svc.HandleUpdate(context.Background(), &update)

	rw.WriteHeader(http.StatusOK)
}
