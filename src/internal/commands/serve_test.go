package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	if err := ln.Close(); err != nil {
		t.Fatal(err)
	}
	return addr
}

func lookupNames(t *testing.T, addr, value string) []string {
	t.Helper()
	resp, err := http.Get(fmt.Sprintf("http://%s/api/v1/lookup?value=%s", addr, value))
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	var body struct {
		Data struct {
			Results []struct {
				Matches []struct {
					Name string `json:"name"`
				} `json:"matches"`
			} `json:"results"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Data.Results) != 1 {
		return nil
	}
	var names []string
	for _, m := range body.Data.Results[0].Matches {
		names = append(names, m.Name)
	}
	return names
}

func TestServeCommand(t *testing.T) {
	env := newTestEnv(t, "[api]\nenable_metrics = true\n[watch]\nenabled = false\n")
	addr := freeAddr(t)

	cmd := CreateServeCommand("test").(*ServeCommand)
	if err := cmd.Init([]string{"-listen", addr}, env.ctx()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	hup := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() { done <- cmd.serve(ctx, hup) }()

	waitFor(t, "server to answer", func() bool {
		names := lookupNames(t, addr, "8.8.8.8")
		return len(names) == 1 && names[0] == "List of known IPv4 public DNS resolvers"
	})

	env.writeList(t, "private", `{"name": "Private ranges", "type": "cidr", "list": ["10.0.0.0/8"]}`)
	hup <- syscall.SIGHUP
	waitFor(t, "reload", func() bool {
		names := lookupNames(t, addr, "10.2.3.4")
		return len(names) == 1 && names[0] == "Private ranges"
	})

	resp, err := http.Get("http://" + addr + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain") {
		t.Errorf("Expected metrics endpoint, got %d %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve() error = %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestServeCommand_EmptyDataDir(t *testing.T) {
	dir := t.TempDir()
	ctx := &AppContext{ConfigPath: dir + "/missing.toml"}

	cmd := CreateServeCommand("test").(*ServeCommand)
	if err := cmd.Init([]string{"-listen", freeAddr(t), "-no-watch"}, ctx); err != nil {
		t.Fatal(err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.serve(runCtx, nil) }()

	waitFor(t, "health endpoint", func() bool {
		resp, err := http.Get("http://" + cmd.listenAddr + "/api/v1/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusServiceUnavailable
	})

	cancel()
	if err := <-done; err != nil {
		t.Errorf("serve() error = %v", err)
	}
}
