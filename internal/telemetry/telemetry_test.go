package telemetry

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/posthog/posthog-go"

	"github.com/monsterdex/monsterdex/internal/config"
)

// TestLoggerDoesNotOutputToStderr checks that failed deliveries stay silent,
// since stderr output would corrupt the TUI.
func TestLoggerDoesNotOutputToStderr(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("simulated failure"))
	}))
	defer server.Close()

	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stderr = w

	testClient, err := posthog.NewWithConfig("test-key", posthog.Config{
		Endpoint:  server.URL,
		Logger:    logger{},
		BatchSize: 1,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	testClient.Enqueue(posthog.Capture{
		DistinctId: "test-user",
		Event:      "test-event",
	})
	testClient.Close()

	w.Close()
	os.Stderr = oldStderr

	var stderrBuf bytes.Buffer
	io.Copy(&stderrBuf, r)
	r.Close()

	if out := stderrBuf.String(); out != "" {
		t.Errorf("expected no stderr output, got: %q", out)
	}
}

func TestInitRespectsOptOut(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TelemetryConfig
		env  map[string]string
	}{
		{
			name: "disabled in config",
			cfg:  config.TelemetryConfig{Enabled: false, Key: "phc_test"},
		},
		{
			name: "no key",
			cfg:  config.TelemetryConfig{Enabled: true},
		},
		{
			name: "do not track",
			cfg:  config.TelemetryConfig{Enabled: true, Key: "phc_test"},
			env:  map[string]string{"DO_NOT_TRACK": "1"},
		},
		{
			name: "app opt out",
			cfg:  config.TelemetryConfig{Enabled: true, Key: "phc_test"},
			env:  map[string]string{"MONSTERDEX_TELEMETRY_DISABLED": "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			Init(tt.cfg)
			defer Flush()

			if client != nil {
				t.Errorf("Init() created a client, want none")
			}
			// Events are dropped without a client.
			TUIActionExecute("copy_name")
			CLICommandEnd()
		})
	}
}

func TestInitSendsToEndpoint(t *testing.T) {
	t.Setenv("DO_NOT_TRACK", "")
	t.Setenv("MONSTERDEX_TELEMETRY_DISABLED", "")

	hits := make(chan struct{}, 8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case hits <- struct{}{}:
		default:
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	Init(config.TelemetryConfig{Enabled: true, Key: "phc_test", Endpoint: server.URL})
	if client == nil {
		t.Fatalf("Init() did not create a client")
	}
	if distinctId == "" {
		t.Errorf("Init() left distinctId empty")
	}

	TUIScreenOpen("Monster")
	Flush()

	if len(hits) == 0 {
		t.Errorf("Flush() sent no requests")
	}
	if client != nil {
		t.Errorf("Flush() kept the client")
	}
}

func TestPairsToProps(t *testing.T) {
	tests := []struct {
		name  string
		props []any
		want  posthog.Properties
	}{
		{"pairs", []any{"screen", "Monster", "count", 3}, posthog.NewProperties().Set("screen", "Monster").Set("count", 3)},
		{"odd length", []any{"screen"}, posthog.NewProperties()},
		{"non string key skipped", []any{1, "x", "ok", true}, posthog.NewProperties().Set("ok", true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pairsToProps(tt.props...)
			if len(got) != len(tt.want) {
				t.Fatalf("pairsToProps() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("pairsToProps()[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestLoggerMethodsDoNotPanic(t *testing.T) {
	l := logger{}
	l.Debugf("debug message: %s", "test")
	l.Logf("log message: %s", "test")
	l.Warnf("warn message: %s", "test")
	l.Errorf("error message: %s", "test")
}
