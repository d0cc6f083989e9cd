package server

import (
	"net"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/csdt/netcalc/calc"
	"github.com/csdt/netcalc/threadpool"
	"github.com/csdt/netcalc/wire"
)

// Config holds the runtime parameters the server needs. All fields are
// required.
type Config struct {
	// Port is the TCP port to listen on, kept as its original command
	// line text.
	Port string

	// ThreadPool runs one session task per accepted connection.
	ThreadPool *threadpool.ThreadPool
}

// Server accepts netcalc client connections and dispatches each one to the
// thread pool as a calculation session.
type Server struct {
	started  int32
	shutdown int32

	cfg      *Config
	listener net.Listener
	wg       sync.WaitGroup

	connsLock sync.Mutex
	conns     map[net.Conn]struct{}
}

// New returns a new netcalc server which will listen on the configured port
// once started.
func New(cfg *Config) *Server {
	return &Server{
		cfg:   cfg,
		conns: make(map[net.Conn]struct{}),
	}
}

// Start binds the listening socket and begins accepting connections.
func (s *Server) Start() error {
	// Already started?
	if atomic.AddInt32(&s.started, 1) != 1 {
		return nil
	}

	log.Trace("Starting server")

	listener, err := net.Listen("tcp", net.JoinHostPort("", s.cfg.Port))
	if err != nil {
		return errors.Wrapf(err, "couldn't listen on port %s", s.cfg.Port)
	}
	s.listener = listener

	s.wg.Add(1)
	spawn(func() {
		s.listenHandler(listener)
	})

	return nil
}

// Addr returns the address the server is listening on. It is nil before
// Start has been called.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// listenHandler accepts incoming connections on a given listener. It must be
// run as a goroutine.
func (s *Server) listenHandler(listener net.Listener) {
	log.Infof("Server listening on %s", listener.Addr())
	for atomic.LoadInt32(&s.shutdown) == 0 {
		conn, err := listener.Accept()
		if err != nil {
			// Only log the error if not forcibly shutting down.
			if atomic.LoadInt32(&s.shutdown) == 0 {
				log.Errorf("Can't accept connection: %s", err)
			}
			continue
		}
		s.addConn(conn)
		s.wg.Add(1)
		err = s.cfg.ThreadPool.Submit(func() {
			defer s.wg.Done()
			s.sessionHandler(conn)
		})
		if err != nil {
			// The pool only refuses tasks once it has been stopped,
			// which happens during shutdown.
			s.wg.Done()
			s.removeConn(conn)
		}
	}
	s.wg.Done()
	log.Tracef("Listener handler done for %s", listener.Addr())
}

// sessionHandler serves a single client connection. It reads requests and
// writes one response per request until the client disconnects, an error
// occurs, or the server shuts down.
func (s *Server) sessionHandler(conn net.Conn) {
	defer s.removeConn(conn)

	log.Debugf("Accepted connection from %s", conn.RemoteAddr())
	for {
		request := &wire.MsgCalcRequest{}
		err := request.Deserialize(conn)
		if err != nil {
			if wire.IsEOF(err) {
				log.Debugf("Client %s disconnected", conn.RemoteAddr())
			} else if atomic.LoadInt32(&s.shutdown) == 0 {
				log.Errorf("Can't read request from %s: %s", conn.RemoteAddr(), err)
			}
			return
		}

		response := s.handleRequest(request)
		err = response.Serialize(conn)
		if err != nil {
			if atomic.LoadInt32(&s.shutdown) == 0 {
				log.Errorf("Can't write response to %s: %s", conn.RemoteAddr(), err)
			}
			return
		}
	}
}

// handleRequest evaluates a single request and builds the response for it.
// Malformed requests produce an error status rather than tearing down the
// session.
func (s *Server) handleRequest(request *wire.MsgCalcRequest) *wire.MsgCalcResponse {
	if request.Version != wire.ProtocolVersion {
		log.Debugf("Rejecting request with protocol version %d", request.Version)
		return wire.NewMsgCalcResponse(wire.StatusBadVersion, 0)
	}

	result, err := calc.Evaluate(request.Op, request.OperandA, request.OperandB)
	if err != nil {
		log.Debugf("Request %s failed: %s", request.Op, err)
		return wire.NewMsgCalcResponse(calc.StatusOf(err), 0)
	}

	log.Tracef("Evaluated %s(%d, %d) = %d", request.Op, request.OperandA,
		request.OperandB, result)
	return wire.NewMsgCalcResponse(wire.StatusOK, result)
}

// addConn registers a live connection so Stop can close it.
func (s *Server) addConn(conn net.Conn) {
	s.connsLock.Lock()
	defer s.connsLock.Unlock()
	s.conns[conn] = struct{}{}
}

// removeConn unregisters a connection and closes it.
func (s *Server) removeConn(conn net.Conn) {
	s.connsLock.Lock()
	defer s.connsLock.Unlock()
	delete(s.conns, conn)
	conn.Close()
}

// Stop closes the listener and every live connection, releasing any session
// blocked on a read.
func (s *Server) Stop() error {
	// Make sure this only happens once.
	if atomic.AddInt32(&s.shutdown, 1) != 1 {
		log.Infof("Server is already in the process of shutting down")
		return nil
	}

	log.Warnf("Server shutting down")

	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}

	s.connsLock.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.connsLock.Unlock()

	return err
}

// WaitForShutdown blocks until the listen handler and every session have
// finished.
func (s *Server) WaitForShutdown() {
	s.wg.Wait()
}
