package cli

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func listenLoopback(t *testing.T) (*net.UDPConn, string) {
	t.Helper()
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn, strconv.Itoa(conn.LocalAddr().(*net.UDPAddr).Port)
}

func readAll(t *testing.T, conn *net.UDPConn, n int) []string {
	t.Helper()
	var got []string
	buf := make([]byte, 64)
	for len(got) < n {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		k, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			t.Fatalf("read datagram %d: %v (got %v)", len(got), err, got)
		}
		got = append(got, string(buf[:k]))
	}
	return got
}

// reset puts every command back to its defaults: flag values, Changed
// marks and context all survive between Execute calls on the shared tree.
func reset(cmd *cobra.Command, ctx context.Context) {
	restore := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(restore)
	cmd.PersistentFlags().VisitAll(restore)
	cmd.SetContext(ctx)
	for _, sub := range cmd.Commands() {
		reset(sub, ctx)
	}
}

func executeContext(ctx context.Context, args ...string) (string, error) {
	reset(rootCmd, ctx)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(context.Background(), args...)
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func expectSilence(t *testing.T, conn *net.UDPConn, d time.Duration) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(d))
	buf := make([]byte, 64)
	if n, _, err := conn.ReadFromUDP(buf); err == nil {
		t.Fatalf("unexpected datagram %q", buf[:n])
	}
}

func TestSetCommand(t *testing.T) {
	conn, port := listenLoopback(t)

	out, err := execute(t, "set", "Red", "-p", port)
	if err != nil {
		t.Fatalf("set err=%v", err)
	}
	if got := readAll(t, conn, 1); got[0] != "red" {
		t.Fatalf("payload: got=%q want=red", got[0])
	}
	if !strings.Contains(out, "red") {
		t.Fatalf("output should name the color: %q", out)
	}
}

func TestSetCommand_UnknownColor(t *testing.T) {
	_, port := listenLoopback(t)
	if _, err := execute(t, "set", "magenta", "-p", port); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestSetCommand_InvalidPort(t *testing.T) {
	if _, err := execute(t, "set", "red", "-p", "70000"); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestQuitCommand(t *testing.T) {
	conn, port := listenLoopback(t)

	if _, err := execute(t, "quit", "-p", port); err != nil {
		t.Fatalf("quit err=%v", err)
	}
	if got := readAll(t, conn, 1); got[0] != "quit" {
		t.Fatalf("payload: got=%q want=quit", got[0])
	}
}

func TestColorsCommand(t *testing.T) {
	out, err := execute(t, "colors")
	if err != nil {
		t.Fatalf("colors err=%v", err)
	}
	for _, name := range colorNames() {
		if !strings.Contains(out, name) {
			t.Fatalf("missing %q in output: %q", name, out)
		}
	}
}

func TestPlayCommand_FromConfig(t *testing.T) {
	conn, port := listenLoopback(t)

	// the config port is overridden by --port
	yaml := `
anybar:
  port: 1
  sequence:
    loops: 2
    quit_at_end: true
    steps:
      - color: question
        hold_ms: 0
      - color: exclamation
        hold_ms: 1
`
	path := filepath.Join(t.TempDir(), "anybar.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := execute(t, "play", path, "-p", port); err != nil {
		t.Fatalf("play err=%v", err)
	}

	got := readAll(t, conn, 5)
	want := []string{"question", "exclamation", "question", "exclamation", "quit"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("datagram %d: got=%q want=%q", i, got[i], want[i])
		}
	}
}

func TestPlayCommand_NoSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anybar.yaml")
	if err := os.WriteFile(path, []byte("anybar:\n  port: 1738\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, port := listenLoopback(t)
	if _, err := execute(t, "play", path, "-p", port); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestWatchCommand_NoWatchSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anybar.yaml")
	if err := os.WriteFile(path, []byte("anybar: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := execute(t, "watch", path); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version err=%v", err)
	}
	if !strings.Contains(out, "anybar") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestPlayCommand_ConfigPortWithoutFlag(t *testing.T) {
	conn, port := listenLoopback(t)

	path := filepath.Join(t.TempDir(), "anybar.yaml")
	writeConfig(t, path, `
anybar:
  port: `+port+`
  sequence:
    loops: 1
    steps:
      - color: yellow
`)

	// an earlier -p must not leak into this run
	if _, err := execute(t, "set", "red", "-p", "1"); err != nil {
		t.Fatalf("set err=%v", err)
	}
	if _, err := execute(t, "play", path); err != nil {
		t.Fatalf("play err=%v", err)
	}
	if got := readAll(t, conn, 1); got[0] != "yellow" {
		t.Fatalf("payload: got=%q want=yellow", got[0])
	}
}

func followConfig(color string) string {
	return `
anybar:
  sequence:
    loops: 1
    steps:
      - color: ` + color + `
`
}

func TestPlayCommand_FollowReloads(t *testing.T) {
	conn, port := listenLoopback(t)
	path := filepath.Join(t.TempDir(), "anybar.yaml")
	writeConfig(t, path, followConfig("red"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		_, err := executeContext(ctx, "play", path, "--follow", "-p", port)
		errc <- err
	}()

	if got := readAll(t, conn, 1); got[0] != "red" {
		t.Fatalf("initial run: got=%q want=red", got[0])
	}

	// a valid edit restarts the sequence
	writeConfig(t, path, followConfig("blue"))
	if got := readAll(t, conn, 1); got[0] != "blue" {
		t.Fatalf("after edit: got=%q want=blue", got[0])
	}

	// a broken edit sends nothing, the finished sequence is not replayed
	writeConfig(t, path, "anybar: [")
	expectSilence(t, conn, 700*time.Millisecond)

	// still following after the broken edit
	writeConfig(t, path, followConfig("green"))
	if got := readAll(t, conn, 1); got[0] != "green" {
		t.Fatalf("after fix: got=%q want=green", got[0])
	}

	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("play --follow err=%v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("play --follow did not stop after cancel")
	}
}

func TestPlayCommand_FollowBrokenEditStopsRunning(t *testing.T) {
	conn, port := listenLoopback(t)
	path := filepath.Join(t.TempDir(), "anybar.yaml")
	writeConfig(t, path, `
anybar:
  sequence:
    loops: 0
    steps:
      - color: cyan
        hold_ms: 150
`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		_, err := executeContext(ctx, "play", path, "--follow", "-p", port)
		errc <- err
	}()

	if got := readAll(t, conn, 1); got[0] != "cyan" {
		t.Fatalf("initial run: got=%q want=cyan", got[0])
	}

	writeConfig(t, path, "anybar: [")
	// give the reload time to land, then drain what the endless run sent before it
	time.Sleep(400 * time.Millisecond)
	for {
		_ = conn.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
		if _, _, err := conn.ReadFromUDP(make([]byte, 64)); err != nil {
			break
		}
	}
	expectSilence(t, conn, 500*time.Millisecond)

	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("play --follow err=%v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("play --follow did not stop after cancel")
	}
}
