package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"

	"github.com/denisbrodbeck/machineid"
	"github.com/posthog/posthog-go"

	"github.com/monsterdex/monsterdex/internal/config"
	"github.com/monsterdex/monsterdex/internal/logging"
	"github.com/monsterdex/monsterdex/internal/version"
)

const (
	appID           = "monsterdex"
	defaultEndpoint = "https://eu.i.posthog.com"
)

var (
	client     posthog.Client
	distinctId string

	baseProps = posthog.NewProperties().
			Set("goos", runtime.GOOS).
			Set("goarch", runtime.GOARCH).
			Set("term", os.Getenv("TERM")).
			Set("shell", filepath.Base(os.Getenv("SHELL"))).
			Set("version", version.Version).
			Set("go_version", runtime.Version())
)

// Init starts the PostHog client when the config opts in and the
// environment does not opt out.
func Init(cfg config.TelemetryConfig) {
	if !cfg.Enabled || cfg.Key == "" || isDisabled() {
		return
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	c, err := posthog.NewWithConfig(cfg.Key, posthog.Config{
		Endpoint: endpoint,
		Logger:   logger{},
	})
	if err != nil {
		logging.Logger.Error("Failed to initialize PostHog client", "error", err)
		return
	}
	client = c
	distinctId = getDistinctId()
}

func isDisabled() bool {
	if v, _ := strconv.ParseBool(os.Getenv("MONSTERDEX_TELEMETRY_DISABLED")); v {
		return true
	}
	if v, _ := strconv.ParseBool(os.Getenv("DO_NOT_TRACK")); v {
		return true
	}
	return false
}

// getDistinctId returns an app-scoped hash of the machine id, so the raw id
// never leaves the machine.
func getDistinctId() string {
	id, err := machineid.ProtectedID(appID)
	if err != nil {
		logging.Logger.Debug("machine id unavailable", "error", err)
		return "anonymous"
	}
	return id
}

func send(event string, props ...any) {
	if client == nil {
		return
	}
	err := client.Enqueue(posthog.Capture{
		DistinctId: distinctId,
		Event:      event,
		Properties: pairsToProps(props...).Merge(baseProps),
	})
	if err != nil {
		logging.Logger.Error("Failed to enqueue PostHog event", "event", event, "props", props, "error", err)
		return
	}
}

func Error(err any, props ...any) {
	if client == nil {
		return
	}
	props = append(
		[]any{
			"$exception_list",
			[]map[string]string{
				{"type": reflect.TypeOf(err).String(), "value": fmt.Sprintf("%v", err)},
			},
		},
		props...,
	)
	send("$exception", props...)
}

func Flush() {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logging.Logger.Error("Failed to flush PostHog events", "error", err)
	}
	client = nil
}

func pairsToProps(props ...any) posthog.Properties {
	p := posthog.NewProperties()

	if !isEven(len(props)) {
		logging.Logger.Error("Event properties must be provided as key-value pairs", "props", props)
		return p
	}

	for i := 0; i < len(props); i += 2 {
		key, ok := props[i].(string)
		if !ok {
			logging.Logger.Error("Event property key is not a string", "key", props[i])
			continue
		}
		p = p.Set(key, props[i+1])
	}
	return p
}

func isEven(n int) bool {
	return n%2 == 0
}
