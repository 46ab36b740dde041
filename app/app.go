package app

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/replykit/reply"
	"github.com/replykit/reply/http/resp"
	"github.com/replykit/reply/http/router"
	"github.com/replykit/reply/http/session"
	"github.com/replykit/reply/logger"
)

// An App manages and exposes all components of a reply web application to one another.
type App struct {
	*resp.Responder
	*router.Router

	cancel   context.CancelFunc
	ctx      context.Context
	env      reply.Environment
	l        logger.Logger
	sessions session.SessionStorer
	srv      *http.Server
	url      *url.URL
}

// New constructs an App from the provided options.
// Options passed into New are applied first;
// defaults then fill in whichever components remain unset,
// so an App is usable with no options at all.
func New(opts ...Option) (*App, error) {
	a := new(App)
	for _, opt := range append(opts, defaultOpts()...) {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("%w: %s", reply.ErrBadConfig, err)
		}
	}

	a.srv.Handler = a.Router

	return a, nil
}

func (a *App) EmitEnv() reply.Environment              { return a.env }
func (a *App) EmitLogger() logger.Logger               { return a.l }
func (a *App) EmitSessionStore() session.SessionStorer { return a.sessions }

// Cancel returns a context.CancelFunc that stops a running Start.
func (a *App) Cancel() context.CancelFunc { return a.cancel }

// Start begins the web server.
//
// These, and (*App).Shutdown, stop Start:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (a *App) Start() error {
	a.ctx, a.cancel = context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		s := <-ch
		a.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
		a.cancel()
	}()

	go func() {
		a.l.Info(fmt.Sprintf("running web server at %s", a.srv.Addr), nil)
		a.srv.Handler = a.Router
		if err := a.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			a.l.Error(err.Error(), nil)
		}
	}()

	<-a.ctx.Done()
	return a.Shutdown()
}

// Shutdown shutdowns the web server.
func (a *App) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.l.Info("shutting down web server", nil)
	err := a.srv.Shutdown(shutdownCtx)
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	a.l.Info("web server shutdown successfully", nil)
	return nil
}
