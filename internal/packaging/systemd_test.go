package packaging

import (
	"os"
	"os/exec"
	"testing"
)

func TestNewSystemdController_IsAvailable(t *testing.T) {
	c := NewSystemdController()

	_, err := exec.LookPath("systemctl")
	if want := err == nil; c.IsAvailable() != want {
		t.Errorf("IsAvailable() = %v, want %v", c.IsAvailable(), want)
	}
}

func TestNewPrivilegeChecker(t *testing.T) {
	c := NewPrivilegeChecker()

	if want := os.Geteuid() == 0; c.IsPrivileged() != want {
		t.Errorf("IsPrivileged() = %v, want %v", c.IsPrivileged(), want)
	}
}

func TestNewFileMover_MissingSource(t *testing.T) {
	m := NewFileMover()

	err := m.Move("/nonexistent/src", t.TempDir()+"/dst")
	if err == nil {
		t.Fatal("Move() = nil, want error for missing source")
	}
}
