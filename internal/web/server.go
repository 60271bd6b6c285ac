// Package web serves the zoom animation to browsers. Each websocket
// connection gets its own Animation whose draw calls are streamed as JSON
// batches and replayed on a canvas by the embedded page.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/fractalzoom/internal/engine"
	"github.com/san-kum/fractalzoom/internal/host"
	"github.com/san-kum/fractalzoom/internal/logging"
)

//go:embed static
var static embed.FS

// Commands a client may send.
const (
	CmdPause  = "pause"
	CmdResume = "resume"
	CmdReset  = "reset"
)

type Command struct {
	Type string `json:"type"`
}

// Factory builds an Animation drawing onto s.
type Factory func(s host.Surface) (*engine.Animation, error)

type Server struct {
	Addr string
	FPS  int
	New  Factory

	srv *http.Server
}

func NewServer(addr string, fps int, f Factory) *Server {
	if fps <= 0 {
		fps = 60
	}
	return &Server{Addr: addr, FPS: fps, New: f}
}

func (s *Server) Handler() http.Handler {
	sub, _ := fs.Sub(static, "static")
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.Handle("/", http.FileServer(http.FS(sub)))
	return mux
}

// Run serves until ctx is done, then shuts the http server down.
func (s *Server) Run(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Logger().Info("listening", "addr", s.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web: listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdown)
	})
	return g.Wait()
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		logging.Logger().Warn("websocket accept", "err", err)
		return
	}
	defer conn.CloseNow()

	err = s.serve(r.Context(), conn)
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		err = nil
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Logger().Warn("session ended", "remote", r.RemoteAddr, "err", err)
		conn.Close(websocket.StatusInternalError, "session failed")
		return
	}
	conn.Close(websocket.StatusNormalClosure, "")
}

// serve runs one session: a reader for client commands and the frame loop.
func (s *Server) serve(ctx context.Context, conn *websocket.Conn) error {
	g, ctx := errgroup.WithContext(ctx)

	surface := NewSurface(func(m Message) error {
		return wsjson.Write(ctx, conn, m)
	})
	anim, err := s.New(surface)
	if err != nil {
		return err
	}
	sess := newSession(anim, surface, func(m Message) error { return wsjson.Write(ctx, conn, m) })

	g.Go(func() error {
		for {
			var cmd Command
			if err := wsjson.Read(ctx, conn, &cmd); err != nil {
				return err
			}
			select {
			case sess.commands <- cmd:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})
	g.Go(func() error {
		loop, cancel := context.WithCancel(ctx)
		defer cancel()
		sess.cancel = cancel
		if err := sess.start(); err != nil {
			return err
		}
		err := host.Run(loop, sess, time.Second/time.Duration(s.FPS))
		if sess.err != nil {
			return sess.err
		}
		return err
	})
	return g.Wait()
}

// session serializes commands and frames onto one goroutine. The first
// send error cancels the frame loop.
type session struct {
	anim     *engine.Animation
	surface  *Surface
	send     func(Message) error
	commands chan Command
	paused   bool
	cancel   context.CancelFunc
	err      error
}

func newSession(anim *engine.Animation, surface *Surface, send func(Message) error) *session {
	s := &session{
		anim:     anim,
		surface:  surface,
		send:     send,
		commands: make(chan Command, 8),
		cancel:   func() {},
	}
	anim.AddObserver(s)
	return s
}

func (s *session) start() error {
	s.anim.Start()
	return s.surface.Flush()
}

func (s *session) OnFrame(dt float64) {
drain:
	for {
		select {
		case cmd := <-s.commands:
			s.apply(cmd)
		default:
			break drain
		}
	}
	if s.paused || s.err != nil {
		return
	}
	s.anim.OnFrame(dt)
	if err := s.anim.Err(); err != nil {
		s.fail(err)
	}
}

func (s *session) apply(cmd Command) {
	switch cmd.Type {
	case CmdPause:
		s.paused = true
	case CmdResume:
		s.paused = false
	case CmdReset:
		s.anim.Reset()
		if err := s.surface.Flush(); err != nil {
			s.fail(err)
		}
	default:
		logging.Logger().Debug("unknown command", "type", cmd.Type)
	}
}

func (s *session) OnTick(info engine.TickInfo) {
	err := s.send(Message{Type: TypeStats, Stats: &Stats{
		Tick:      info.Tick,
		CenterRe:  info.Center.Re,
		CenterIm:  info.Center.Im,
		Width:     info.Window.Width(),
		Cap:       info.Cap,
		DrawCalls: info.DrawCalls,
		Cells:     info.Cells,
		Saturated: info.Saturated,
	}})
	if err != nil {
		s.fail(err)
	}
}

func (s *session) fail(err error) {
	if s.err == nil {
		s.err = err
		s.cancel()
	}
}
