package notifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/wrenhold/commute/internal/constants"
)

// Mock Process
type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func writeLockfile(t *testing.T, dir, content string) string {
	t.Helper()
	appDir := filepath.Join(dir, constants.AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(appDir, constants.NotifierLockfileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindAndValidateDaemon(t *testing.T) {
	oldFindProcess := findProcessFunc
	defer func() { findProcessFunc = oldFindProcess }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: constants.NotifierExecutable}, nil
	}

	tests := []struct {
		name       string
		content    string
		wantPort   string
		wantSecret string
		wantErr    bool
		wantUnavl  bool
	}{
		{
			name:       "valid lockfile",
			content:    "8080|1234|s3cret",
			wantPort:   "8080",
			wantSecret: "s3cret",
		},
		{
			name:       "trailing newline is tolerated",
			content:    "8080|1234|s3cret\n",
			wantPort:   "8080",
			wantSecret: "s3cret",
		},
		{
			name:    "malformed lockfile",
			content: "8080|1234",
			wantErr: true,
		},
		{
			name:    "non-numeric port",
			content: "http|1234|s3cret",
			wantErr: true,
		},
		{
			name:    "port out of range",
			content: "70000|1234|s3cret",
			wantErr: true,
		},
		{
			name:    "empty secret",
			content: "8080|1234| ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLockfile(t, t.TempDir(), tt.content)
			port, secret, err := findAndValidateDaemon(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("findAndValidateDaemon() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if port != tt.wantPort || secret != tt.wantSecret {
				t.Errorf("findAndValidateDaemon() = (%q, %q), want (%q, %q)", port, secret, tt.wantPort, tt.wantSecret)
			}
		})
	}
}

func TestFindAndValidateDaemonMissingLockfile(t *testing.T) {
	_, _, err := findAndValidateDaemon(filepath.Join(t.TempDir(), "nope.lock"))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestFindAndValidateDaemonDeadProcess(t *testing.T) {
	oldFindProcess := findProcessFunc
	defer func() { findProcessFunc = oldFindProcess }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return nil, nil
	}

	path := writeLockfile(t, t.TempDir(), "8080|1234|s3cret")
	_, _, err := findAndValidateDaemon(path)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestFindAndValidateDaemonWrongExecutable(t *testing.T) {
	oldFindProcess := findProcessFunc
	defer func() { findProcessFunc = oldFindProcess }()
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "something-else"}, nil
	}

	path := writeLockfile(t, t.TempDir(), "8080|1234|s3cret")
	if _, _, err := findAndValidateDaemon(path); err == nil {
		t.Error("expected error for wrong executable")
	}
}

func TestNotifyDeliversPayload(t *testing.T) {
	var gotSecret string
	var gotPayload WebhookPayload

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-Commute-Secret")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	u, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatal(err)
	}

	tempDir := t.TempDir()
	writeLockfile(t, tempDir, fmt.Sprintf("%s|1234|s3cret", u.Port()))

	oldUserConfigDir := userConfigDirFunc
	oldFindProcess := findProcessFunc
	defer func() {
		userConfigDirFunc = oldUserConfigDir
		findProcessFunc = oldFindProcess
	}()
	userConfigDirFunc = func() (string, error) { return tempDir, nil }
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: constants.NotifierExecutable}, nil
	}

	if err := New().Notify("Time to leave!", "Your Bus 42 leaves in 10 minutes!"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	if gotSecret != "s3cret" {
		t.Errorf("secret header = %q, want %q", gotSecret, "s3cret")
	}
	if gotPayload.Title != "Time to leave!" {
		t.Errorf("payload title = %q", gotPayload.Title)
	}
	if gotPayload.Body != "Your Bus 42 leaves in 10 minutes!" {
		t.Errorf("payload body = %q", gotPayload.Body)
	}
	if gotPayload.DurationMs != constants.NotificationDurationMs {
		t.Errorf("payload duration = %d, want %d", gotPayload.DurationMs, constants.NotificationDurationMs)
	}
}

func TestNotifyNonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer ts.Close()

	u, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatal(err)
	}

	tempDir := t.TempDir()
	writeLockfile(t, tempDir, fmt.Sprintf("%s|1234|wrong", u.Port()))

	oldUserConfigDir := userConfigDirFunc
	oldFindProcess := findProcessFunc
	defer func() {
		userConfigDirFunc = oldUserConfigDir
		findProcessFunc = oldFindProcess
	}()
	userConfigDirFunc = func() (string, error) { return tempDir, nil }
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: constants.NotifierExecutable}, nil
	}

	if err := New().Notify("title", "body"); err == nil {
		t.Error("Notify() succeeded on a non-OK response")
	}
}
