package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/travelbuddy/internal/auth"
	"github.com/mmynk/travelbuddy/internal/membership"
	"github.com/mmynk/travelbuddy/internal/models"
	"github.com/mmynk/travelbuddy/pkg/api"
	"github.com/mmynk/travelbuddy/pkg/api/apiconnect"
)

const (
	whoAmIProcedure = "/test.v1.Echo/WhoAmI"
	publicProcedure = "/test.v1.Echo/Public"
)

// whoAmI echoes the caller's email from the context as the trip location.
func whoAmI(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	if req.Msg.TripID == 404 {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("trip not found: 404"))
	}
	return connect.NewResponse(&api.GetTripResponse{Trip: &api.Trip{
		ID:        GetUserID(ctx),
		Location:  GetEmail(ctx),
		CreatedBy: req.Msg.TripID,
	}}), nil
}

type echoClients struct {
	whoAmI *connect.Client[api.GetTripRequest, api.GetTripResponse]
	public *connect.Client[api.GetTripRequest, api.GetTripResponse]
}

func setupEchoServer(t *testing.T, interceptors ...connect.Interceptor) echoClients {
	t.Helper()

	opts := []connect.HandlerOption{
		connect.WithCodec(apiconnect.JSONCodec{}),
		connect.WithInterceptors(interceptors...),
	}
	mux := http.NewServeMux()
	mux.Handle(whoAmIProcedure, connect.NewUnaryHandler(whoAmIProcedure, whoAmI, opts...))
	mux.Handle(publicProcedure, connect.NewUnaryHandler(publicProcedure, whoAmI, opts...))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	codec := connect.WithCodec(apiconnect.JSONCodec{})
	return echoClients{
		whoAmI: connect.NewClient[api.GetTripRequest, api.GetTripResponse](http.DefaultClient, server.URL+whoAmIProcedure, codec),
		public: connect.NewClient[api.GetTripRequest, api.GetTripResponse](http.DefaultClient, server.URL+publicProcedure, codec),
	}
}

func withHeader(msg *api.GetTripRequest, key, value string) *connect.Request[api.GetTripRequest] {
	req := connect.NewRequest(msg)
	if value != "" {
		req.Header().Set(key, value)
	}
	return req
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	clients := setupEchoServer(t, RequireAuth(jwtManager, publicProcedure))
	ctx := context.Background()

	token, err := jwtManager.Generate(&models.User{ID: 7, Email: "bob@x.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + token},
		{"bearer without token", "Bearer "},
		{"bad token", "Bearer abc.def.ghi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clients.whoAmI.CallUnary(ctx, withHeader(&api.GetTripRequest{TripID: 1}, "Authorization", tt.header))
			if connect.CodeOf(err) != connect.CodeUnauthenticated {
				t.Errorf("expected unauthenticated, got %v", err)
			}
		})
	}

	t.Run("valid token", func(t *testing.T) {
		resp, err := clients.whoAmI.CallUnary(ctx, withHeader(&api.GetTripRequest{TripID: 1}, "Authorization", "Bearer "+token))
		if err != nil {
			t.Fatalf("call failed: %v", err)
		}
		if resp.Msg.Trip.ID != 7 || resp.Msg.Trip.Location != "bob@x.com" {
			t.Errorf("identity not propagated: %+v", resp.Msg.Trip)
		}
	})

	t.Run("public procedure", func(t *testing.T) {
		resp, err := clients.public.CallUnary(ctx, connect.NewRequest(&api.GetTripRequest{TripID: 1}))
		if err != nil {
			t.Fatalf("public call failed: %v", err)
		}
		if resp.Msg.Trip.Location != "" {
			t.Errorf("public call should carry no identity, got %q", resp.Msg.Trip.Location)
		}
	})
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	clients := setupEchoServer(t, metrics.Interceptor())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := clients.whoAmI.CallUnary(ctx, connect.NewRequest(&api.GetTripRequest{TripID: 1})); err != nil {
			t.Fatalf("call failed: %v", err)
		}
	}
	if _, err := clients.whoAmI.CallUnary(ctx, connect.NewRequest(&api.GetTripRequest{TripID: 404})); err == nil {
		t.Fatal("expected not found")
	}

	if got := testutil.ToFloat64(metrics.requests.WithLabelValues(whoAmIProcedure, "ok")); got != 2 {
		t.Errorf("ok requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.requests.WithLabelValues(whoAmIProcedure, "not_found")); got != 1 {
		t.Errorf("not_found requests = %v, want 1", got)
	}

	metrics.ObserveTransition("", membership.StatusPending)
	metrics.ObserveTransition(membership.StatusPending, membership.StatusApproved)
	metrics.ObserveTransition(membership.StatusPending, membership.StatusApproved)
	if got := testutil.ToFloat64(metrics.transitions.WithLabelValues("Pending", "Approved")); got != 2 {
		t.Errorf("Pending->Approved = %v, want 2", got)
	}
	if got := testutil.CollectAndCount(metrics.duration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	clients := setupEchoServer(t, LoggingInterceptor(logger))
	ctx := context.Background()

	if _, err := clients.whoAmI.CallUnary(ctx, connect.NewRequest(&api.GetTripRequest{TripID: 1})); err != nil {
		t.Fatalf("call failed: %v", err)
	}
	_, _ = clients.whoAmI.CallUnary(ctx, connect.NewRequest(&api.GetTripRequest{TripID: 404}))

	out := buf.String()
	if !strings.Contains(out, "RPC ok") || !strings.Contains(out, whoAmIProcedure) {
		t.Errorf("missing success line: %q", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "code=not_found") {
		t.Errorf("missing warning line for not_found: %q", out)
	}
}
