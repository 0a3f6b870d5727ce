package server

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/ayushkumar121/real-db/compiler"
	"github.com/ayushkumar121/real-db/config"
	"github.com/ayushkumar121/real-db/db"
	"github.com/ayushkumar121/real-db/parser"
	"github.com/ayushkumar121/real-db/vm"
)

// Server accepts query connections and runs one program per request.
// Lexing and compiling happen on the worker without any shared lock;
// only execution and response rendering hold the store's exclusive lock.
type Server struct {
	cfg    config.Config
	store  *db.Store
	logger *slog.Logger

	listener net.Listener
	connPool *ants.Pool
	wg       sync.WaitGroup
	mu       sync.Mutex
	running  bool

	connections map[net.Conn]struct{}
	connMu      sync.Mutex
}

// New creates a server over an existing store
func New(cfg config.Config, store *db.Store, logger *slog.Logger) *Server {
	return &Server{
		cfg:         cfg,
		store:       store,
		logger:      logger,
		connections: make(map[net.Conn]struct{}),
	}
}

// Start listens on the configured address and begins accepting
// connections. Connection handlers run on a bounded worker pool sized by
// MaxConnections.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server already running")
	}

	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	pool, err := ants.NewPool(s.cfg.MaxConnections, ants.WithPanicHandler(func(v any) {
		s.logger.Error("connection handler panic", "panic", v)
	}))
	if err != nil {
		listener.Close()
		return fmt.Errorf("worker pool: %w", err)
	}

	s.listener = listener
	s.connPool = pool
	s.running = true

	s.logger.Info("listening", "addr", listener.Addr().String(), "workers", s.cfg.MaxConnections)

	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

// Addr returns the bound listen address, for callers that started with
// an ephemeral port
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop closes the listener and every open connection, then waits for the
// handlers to drain.
func (s *Server) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.listener.Close()
	s.mu.Unlock()

	s.connMu.Lock()
	for conn := range s.connections {
		conn.Close()
	}
	s.connMu.Unlock()

	s.wg.Wait()

	s.connPool.ReleaseTimeout(3 * time.Second)
	s.logger.Info("server stopped")
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.mu.Lock()
			running := s.running
			s.mu.Unlock()
			if !running {
				return
			}
			s.logger.Error("accept failed", "err", err)
			continue
		}

		s.connMu.Lock()
		s.connections[conn] = struct{}{}
		s.connMu.Unlock()

		s.wg.Add(1)
		if err := s.connPool.Submit(func() {
			defer s.wg.Done()
			s.handleConnection(conn)
		}); err != nil {
			s.wg.Done()
			conn.Close()
			s.connMu.Lock()
			delete(s.connections, conn)
			s.connMu.Unlock()
			s.logger.Error("submit to worker pool failed", "err", err)
		}
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer func() {
		conn.Close()
		s.connMu.Lock()
		delete(s.connections, conn)
		s.connMu.Unlock()
	}()

	s.logger.Debug("connection open", "remote", conn.RemoteAddr().String())

	reader := bufio.NewReader(conn)
	writer := bufio.NewWriter(conn)

	for {
		if s.cfg.ReadTimeout > 0 {
			conn.SetReadDeadline(time.Now().Add(time.Duration(s.cfg.ReadTimeout) * time.Second))
		}

		query, err := readQuery(reader)
		if err != nil {
			s.logger.Debug("connection closed", "remote", conn.RemoteAddr().String())
			return
		}

		if err := writeResponse(writer, s.runQuery(query)); err != nil {
			s.logger.Debug("write failed", "remote", conn.RemoteAddr().String(), "err", err)
			return
		}
	}
}

// runQuery takes one program from text to rendered JSON. The store lock
// is held from before execution until the response body has been built,
// so concurrent programs never observe each other mid-flight.
func (s *Server) runQuery(query string) string {
	program, err := compiler.Compile(parser.Tokenize(query))
	if err != nil {
		s.logger.Debug("compile failed", "err", err)
		return renderError(err)
	}

	h := s.store.Acquire()
	defer h.Release()

	ids, err := vm.Execute(h, program)
	if err != nil {
		s.logger.Debug("execute failed", "err", err)
		return renderError(err)
	}
	return renderResult(h, ids)
}
