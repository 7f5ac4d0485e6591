package app

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lubu-ai/soletrack/internal/store"
)

const probeTimeout = 3 * time.Second

// StartConnectivityWatcher launches a background goroutine that probes the
// endpoint host at a fixed cadence and flips the store's online flag.
// While offline, synchronization is short-circuited by the store; when
// connectivity returns, exactly one synchronize is triggered. Returns
// immediately.
func StartConnectivityWatcher(ctx context.Context, st *store.Store, endpoint string, interval time.Duration) {
	addr := probeAddr(endpoint)
	if addr == "" {
		return
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			online := probe(ctx, addr)
			if st.SetOnline(online) {
				logrus.Info("connectivity restored, syncing")
				st.Synchronize(ctx)
			}
		}
	}()
}

func probe(ctx context.Context, addr string) bool {
	dialer := &net.Dialer{Timeout: probeTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// probeAddr extracts host:port from the endpoint URL, defaulting the port
// from the scheme.
func probeAddr(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return ""
	}
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		if u.Scheme == "http" {
			port = "80"
		} else {
			port = "443"
		}
	}
	return net.JoinHostPort(host, port)
}
