package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"chainregistry/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fakeNode answers eth_chainId and eth_blockNumber, single or batched.
// The first failFirst requests get a 503.
type fakeNode struct {
	chainID   uint64
	block     uint64
	failFirst int32
	requests  atomic.Int32
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count := n.requests.Add(1)
	if count <= n.failFirst {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}

	body, _ := io.ReadAll(r.Body)
	body = bytes.TrimSpace(body)

	var reqs []rpcRequest
	batch := len(body) > 0 && body[0] == '['
	if batch {
		_ = json.Unmarshal(body, &reqs)
	} else {
		var single rpcRequest
		_ = json.Unmarshal(body, &single)
		reqs = []rpcRequest{single}
	}

	resps := make([]rpcResponse, 0, len(reqs))
	for _, req := range reqs {
		resp := rpcResponse{JSONRPC: "2.0", ID: req.ID}
		switch req.Method {
		case "eth_chainId":
			resp.Result = fmt.Sprintf("0x%x", n.chainID)
		case "eth_blockNumber":
			resp.Result = fmt.Sprintf("0x%x", n.block)
		default:
			resp.Error = &rpcError{Code: -32601, Message: "method not found"}
		}
		resps = append(resps, resp)
	}

	w.Header().Set("Content-Type", "application/json")
	if batch {
		_ = json.NewEncoder(w).Encode(resps)
		return
	}
	_ = json.NewEncoder(w).Encode(resps[0])
}

// ethService is registered under the "eth" namespace of an in-process rpc.Server.
type ethService struct {
	chainID uint64
	block   uint64
}

func (s *ethService) ChainId() hexutil.Uint64     { return hexutil.Uint64(s.chainID) }
func (s *ethService) BlockNumber() hexutil.Uint64 { return hexutil.Uint64(s.block) }

func newWebsocketNode(t *testing.T, svc *ethService) string {
	t.Helper()
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", svc))
	ts := httptest.NewServer(srv.WebsocketHandler([]string{"*"}))
	t.Cleanup(func() {
		ts.Close()
		srv.Stop()
	})
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func newTestProber(t *testing.T, retries uint) *EVMProber {
	t.Helper()
	return newTestProberWithTimeout(t, retries, time.Second)
}

func newTestProberWithTimeout(t *testing.T, retries uint, connect time.Duration) *EVMProber {
	t.Helper()
	p := NewEVMProber(ProberConfig{
		ConnectionTimeout: connect,
		CallTimeout:       time.Second,
		MaxRetries:        retries,
		RetryDelay:        time.Millisecond,
		RatePerSecond:     1000,
		Burst:             10,
	}, zaptest.NewLogger(t))
	t.Cleanup(p.Close)
	return p
}

func TestProbeHealthy(t *testing.T) {
	node := &fakeNode{chainID: 8453, block: 0x1234}
	srv := httptest.NewServer(node)
	defer srv.Close()

	st := newTestProber(t, 0).Probe(context.Background(), 8453, srv.URL)

	require.True(t, st.Healthy, st.Error)
	assert.Equal(t, uint64(8453), st.ChainID)
	assert.Equal(t, uint64(8453), st.ReportedChainID)
	assert.Equal(t, uint64(0x1234), st.BlockNumber)
	assert.Equal(t, srv.URL, st.URL)
	assert.Empty(t, st.Error)
	assert.False(t, st.CheckedAt.IsZero())
	assert.Positive(t, st.Latency)
	assert.Equal(t, st.Latency.Milliseconds(), st.LatencyMs)
	assert.Equal(t, int32(1), node.requests.Load(), "both calls go out in one batch")
}

func TestWebsocketEndpointReusesConnection(t *testing.T) {
	url := newWebsocketNode(t, &ethService{chainID: 964, block: 77})
	p := newTestProber(t, 0)

	for i := 0; i < 2; i++ {
		st := p.Probe(context.Background(), 964, url)
		require.True(t, st.Healthy, st.Error)
		assert.Equal(t, uint64(964), st.ReportedChainID)
		assert.Equal(t, uint64(77), st.BlockNumber)
		assert.Equal(t, url, st.URL)
	}

	p.pool.mu.Lock()
	defer p.pool.mu.Unlock()
	assert.Len(t, p.pool.clients, 1)
	assert.Contains(t, p.pool.clients, url)
}

func TestHangingDialDoesNotStallOtherEndpoints(t *testing.T) {
	// Accepts TCP connections but never completes the websocket handshake.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	accepted := make(chan net.Conn, 1)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			accepted <- conn
		}
	}()

	node := &fakeNode{chainID: 1, block: 5}
	srv := httptest.NewServer(node)
	defer srv.Close()

	connectTimeout := 3 * time.Second
	p := newTestProberWithTimeout(t, 0, connectTimeout)

	var wg sync.WaitGroup
	wg.Add(1)
	var stalled entity.EndpointStatus
	go func() {
		defer wg.Done()
		stalled = p.Probe(context.Background(), 1, "ws://"+ln.Addr().String())
	}()

	var conn net.Conn
	select {
	case conn = <-accepted:
	case <-time.After(connectTimeout):
		t.Fatal("websocket dial never reached the listener")
	}

	start := time.Now()
	st := p.Probe(context.Background(), 1, srv.URL)
	elapsed := time.Since(start)

	require.True(t, st.Healthy, st.Error)
	assert.Less(t, elapsed, time.Second, "http endpoint waited on an unrelated dial")

	_ = ln.Close()
	_ = conn.Close()
	wg.Wait()
	assert.False(t, stalled.Healthy)
}

func TestProbeChainIDMismatchIsNotRetried(t *testing.T) {
	node := &fakeNode{chainID: 10, block: 1}
	srv := httptest.NewServer(node)
	defer srv.Close()

	st := newTestProber(t, 3).Probe(context.Background(), 8453, srv.URL)

	assert.False(t, st.Healthy)
	assert.Equal(t, uint64(10), st.ReportedChainID)
	assert.Contains(t, st.Error, entity.ErrChainIDMismatch.Error())
	assert.Equal(t, int32(1), node.requests.Load())
}

func TestProbeRetriesTransientFailures(t *testing.T) {
	node := &fakeNode{chainID: 1, block: 100, failFirst: 2}
	srv := httptest.NewServer(node)
	defer srv.Close()

	st := newTestProber(t, 2).Probe(context.Background(), 1, srv.URL)

	assert.True(t, st.Healthy, st.Error)
	assert.Equal(t, int32(3), node.requests.Load())
}

func TestProbeGivesUpAfterRetries(t *testing.T) {
	node := &fakeNode{chainID: 1, failFirst: 100}
	srv := httptest.NewServer(node)
	defer srv.Close()

	st := newTestProber(t, 1).Probe(context.Background(), 1, srv.URL)

	assert.False(t, st.Healthy)
	assert.NotEmpty(t, st.Error)
	assert.Equal(t, int32(2), node.requests.Load())
}

func TestProbeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	st := newTestProber(t, 0).Probe(context.Background(), 1, url)
	assert.False(t, st.Healthy)
	assert.NotEmpty(t, st.Error)
}

func TestProbeCancelledContext(t *testing.T) {
	node := &fakeNode{chainID: 1}
	srv := httptest.NewServer(node)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := newTestProber(t, 3).Probe(ctx, 1, srv.URL)
	assert.False(t, st.Healthy)
}

func TestHostLimitersShareHost(t *testing.T) {
	h := newHostLimiters(1, 1)
	a := h.forURL("https://rpc.example/a")
	b := h.forURL("https://rpc.example/b")
	c := h.forURL("https://other.example")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}
