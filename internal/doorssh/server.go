// Package doorssh is a pure-Go SSH server exposing a directory of NFO
// files as a non-interactive "door": connect, pick a file, view its
// rendered grid, disconnect. It wraps gliderlabs/ssh (itself wrapping
// golang.org/x/crypto/ssh) and adds legacy algorithm support for retro
// terminal clients (SyncTERM, NetRunner) that still show up wanting to
// view ANSI art over SSH, plus a read-interruptible session so a
// disconnect cleanly unblocks an in-progress render.
package doorssh

import (
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/stlalpha/nfoview/internal/nfo/internal/nlog"
)

// ErrReadInterrupted is returned by Session.Read when a read interrupt
// fires before data arrives.
var ErrReadInterrupted = fmt.Errorf("read interrupted")

// Config holds SSH server configuration.
type Config struct {
	HostKeyPath         string
	Addr                string
	LegacySSHAlgorithms bool
	SessionHandler      func(ssh.Session)
	Version             string
}

// Server wraps a gliderlabs/ssh server.
type Server struct {
	inner *ssh.Server
}

// NewServer creates and configures a new SSH server. Authentication is
// intentionally open (no PasswordHandler/PublicKeyHandler is set): this
// is a read-only viewer door, not an authenticated BBS session.
func NewServer(cfg Config) (*Server, error) {
	keyBytes, err := os.ReadFile(cfg.HostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read host key %s: %w", cfg.HostKeyPath, err)
	}
	signer, err := gossh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("parse host key: %w", err)
	}

	srv := &ssh.Server{
		Addr:        cfg.Addr,
		Handler:     cfg.SessionHandler,
		HostSigners: []ssh.Signer{signer},
		Version:     cfg.Version,
		ConnectionFailedCallback: func(conn net.Conn, err error) {
			nlog.Debug("SSH connection failed from %s: %v", conn.RemoteAddr(), err)
		},
	}

	legacy := cfg.LegacySSHAlgorithms
	srv.ServerConfigCallback = func(ctx ssh.Context) *gossh.ServerConfig {
		sc := &gossh.ServerConfig{}
		if legacy {
			nlog.Debug("legacy SSH algorithms enabled for retro terminal client compatibility")
			sc.Config.KeyExchanges = []string{
				"curve25519-sha256",
				"curve25519-sha256@libssh.org",
				"ecdh-sha2-nistp256",
				"diffie-hellman-group14-sha256",
				"diffie-hellman-group14-sha1",
				"diffie-hellman-group1-sha1",
			}
			sc.Config.Ciphers = []string{
				"chacha20-poly1305@openssh.com",
				"aes128-gcm@openssh.com",
				"aes256-ctr",
				"aes128-cbc",
				"3des-cbc",
			}
			sc.Config.MACs = []string{
				"hmac-sha2-256-etm@openssh.com",
				"hmac-sha2-256",
				"hmac-sha1",
			}
		}
		return sc
	}

	return &Server{inner: srv}, nil
}

// ListenAndServe binds to the configured address and serves SSH
// connections. It blocks until the server is closed.
func (s *Server) ListenAndServe() error {
	return s.inner.ListenAndServe()
}

// Close shuts down the server and all active connections.
func (s *Server) Close() error {
	return s.inner.Close()
}

type readResult struct {
	data []byte
	err  error
}

// Session wraps a gliderlabs ssh.Session to add SetReadInterrupt for
// clean cancellation of an in-progress render when the session ends.
//
// Design invariant: at most ONE goroutine reads from the underlying
// ssh.Session at any time. When a read is interrupted, the orphaned
// goroutine's result channel is kept so the next Read() drains it
// before issuing a new read, preventing two concurrent readers from
// racing for bytes.
type Session struct {
	ssh.Session
	riMu          sync.Mutex
	readInterrupt <-chan struct{}
	orphanCh      chan readResult
	pending       *readResult
}

// WrapSession wraps a gliderlabs ssh.Session.
func WrapSession(s ssh.Session) *Session {
	return &Session{Session: s}
}

// SetReadInterrupt registers a channel that, when closed, causes any
// blocked Read() to return ErrReadInterrupted without consuming data.
// Pass nil to clear the interrupt.
func (s *Session) SetReadInterrupt(ch <-chan struct{}) {
	s.riMu.Lock()
	s.readInterrupt = ch
	s.riMu.Unlock()
}

// Read reads from the underlying SSH channel, honoring a registered
// read interrupt.
func (s *Session) Read(p []byte) (int, error) {
	s.riMu.Lock()
	if s.pending != nil {
		res := s.pending
		s.pending = nil
		s.riMu.Unlock()
		return s.drain(p, res)
	}
	if s.orphanCh != nil {
		ch := s.orphanCh
		s.orphanCh = nil
		s.riMu.Unlock()
		res := <-ch
		if len(res.data) > 0 || res.err != nil {
			return s.drain(p, &res)
		}
	} else {
		s.riMu.Unlock()
	}

	s.riMu.Lock()
	interrupt := s.readInterrupt
	s.riMu.Unlock()

	if interrupt == nil {
		return s.Session.Read(p)
	}

	select {
	case <-interrupt:
		return 0, ErrReadInterrupted
	default:
	}

	buf := make([]byte, len(p))
	ch := make(chan readResult, 1)
	go func() {
		n, err := s.Session.Read(buf)
		ch <- readResult{data: buf[:n], err: err}
	}()

	select {
	case res := <-ch:
		n := copy(p, res.data)
		return n, res.err
	case <-interrupt:
		s.riMu.Lock()
		s.orphanCh = ch
		s.riMu.Unlock()
		return 0, ErrReadInterrupted
	}
}

func (s *Session) drain(p []byte, res *readResult) (int, error) {
	if len(res.data) == 0 {
		return 0, res.err
	}
	n := copy(p, res.data)
	if n < len(res.data) {
		s.riMu.Lock()
		s.pending = &readResult{data: res.data[n:], err: res.err}
		s.riMu.Unlock()
		return n, nil
	}
	return n, res.err
}
