// MIT License

// Copyright (c) 2023 wetrycode

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
	"github.com/wetrycode/wirereply"
)

var serverLog *logrus.Entry = wirereply.GetLogger("server")

// RequestLine the first line of an incoming request
type RequestLine struct {
	Method  string
	Path    string
	Version string
}

// Handler builds the reply for a request line
type Handler func(req *RequestLine) *wirereply.Response

// Settings server section of settings.yaml
type Settings struct {
	Addr        string        `mapstructure:"addr"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
}

// Server answers one request per connection and closes it
type Server struct {
	handler     Handler
	sender      *wirereply.Sender
	readTimeout time.Duration

	mu      sync.Mutex
	conns   map[net.Conn]struct{}
	closing bool
}

const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = 1 * time.Second
)

// ServerOption NewServer 可选参数
type ServerOption func(s *Server)

// ServerWithSender 使用指定的发送器
func ServerWithSender(sender *wirereply.Sender) ServerOption {
	return func(s *Server) {
		s.sender = sender
	}
}

// ServerWithReadTimeout 读取请求的超时时间
func ServerWithReadTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.readTimeout = timeout
	}
}

// NewServer 创建服务
func NewServer(handler Handler, opts ...ServerOption) *Server {
	s := &Server{
		handler:     handler,
		sender:      wirereply.NewSender(),
		readTimeout: 10 * time.Second,
		conns:       make(map[net.Conn]struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// GetSender 获取服务使用的发送器
func (s *Server) GetSender() *wirereply.Sender {
	return s.sender
}

// ListenAndServe listen on addr and serve until ctx is done
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	serverLog.Infof("listening on %s", l.Addr().String())
	return s.Serve(ctx, l)
}

// Serve accept connections from l until ctx is done.
// l and every open connection are closed when ctx is done,
// Serve returns once all connections are finished.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	s.mu.Lock()
	s.closing = false
	s.mu.Unlock()
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
		case <-stop:
		}
		l.Close()
		s.closeConns()
	}()
	var wg conc.WaitGroup
	defer wg.Wait()
	var delay time.Duration
	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			delay = nextAcceptDelay(delay)
			serverLog.Errorf("accept connection error %s, retrying in %s", err.Error(), delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil
			}
			continue
		}
		delay = 0
		if !s.trackConn(conn) {
			conn.Close()
			continue
		}
		wg.Go(func() {
			defer s.untrackConn(conn)
			s.handleConn(ctx, conn)
		})
	}
}

// nextAcceptDelay doubles the delay from minAcceptDelay up to maxAcceptDelay
func nextAcceptDelay(delay time.Duration) time.Duration {
	if delay == 0 {
		return minAcceptDelay
	}
	delay *= 2
	if delay > maxAcceptDelay {
		return maxAcceptDelay
	}
	return delay
}

// trackConn registers conn, false once the server is closing
func (s *Server) trackConn(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrackConn(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

// closeConns close every open connection and refuse new ones
func (s *Server) closeConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closing = true
	for conn := range s.conns {
		conn.Close()
	}
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	defer func() {
		if p := recover(); p != nil {
			serverLog.Errorf("handle request panic %v", p)
			s.reply(ctx, conn, wirereply.NewResponse(wirereply.StatusInternalServerError,
				wirereply.ResponseWithBody(wirereply.StatusText(wirereply.StatusInternalServerError))))
		}
	}()
	if s.readTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.readTimeout))
	}
	req, err := readRequest(bufio.NewReader(conn))
	if err != nil && ctx.Err() != nil {
		return
	}
	if err != nil {
		serverLog.Warnf("read request from %s error %s", conn.RemoteAddr().String(), err.Error())
		s.reply(ctx, conn, wirereply.NewResponse(wirereply.StatusBadRequest,
			wirereply.ResponseWithBody(wirereply.StatusText(wirereply.StatusBadRequest))))
		return
	}
	serverLog.Debugf("%s %s %s", req.Method, req.Path, req.Version)
	s.reply(ctx, conn, s.handler(req))
}

func (s *Server) reply(ctx context.Context, conn net.Conn, resp *wirereply.Response) {
	if err := s.sender.SendResponse(ctx, resp, conn); err != nil {
		serverLog.Errorf("send response to %s error %s", conn.RemoteAddr().String(), err.Error())
	}
}

// readRequest read the request line and skip headers up to the blank line
func readRequest(reader *bufio.Reader) (*RequestLine, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read request line: %w", err)
	}
	req, err := ParseRequestLine(line)
	if err != nil {
		return nil, err
	}
	for {
		header, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("read request header: %w", err)
		}
		if strings.TrimSpace(header) == "" {
			return req, nil
		}
	}
}

// ParseRequestLine split "METHOD PATH VERSION"
func ParseRequestLine(line string) (*RequestLine, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid request line %q", strings.TrimSpace(line))
	}
	return &RequestLine{
		Method:  parts[0],
		Path:    parts[1],
		Version: parts[2],
	}, nil
}
