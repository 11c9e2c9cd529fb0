package packaging

import (
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// realSystemdController implements SystemdController using os/exec to call systemctl.
type realSystemdController struct{}

// NewSystemdController returns a SystemdController that calls the real systemctl binary.
func NewSystemdController() SystemdController {
	return &realSystemdController{}
}

func (c *realSystemdController) IsAvailable() bool {
	_, err := exec.LookPath("systemctl")
	return err == nil
}

func (c *realSystemdController) DaemonReload() error {
	return c.run("daemon-reload")
}

func (c *realSystemdController) Enable(unit string) error {
	return c.run("enable", unit)
}

func (c *realSystemdController) Start(unit string) error {
	return c.run("start", unit)
}

func (c *realSystemdController) run(args ...string) error {
	output, err := exec.Command("systemctl", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("packaging: systemctl %s: %s: %w", args[0], strings.TrimSpace(string(output)), err)
	}
	return nil
}

// realFileMover implements FileMover using mv(1).
type realFileMover struct{}

// NewFileMover returns a FileMover that calls the real mv binary.
func NewFileMover() FileMover {
	return &realFileMover{}
}

func (m *realFileMover) Move(src, dst string) error {
	output, err := exec.Command("mv", src, dst).CombinedOutput()
	if err != nil {
		return fmt.Errorf("packaging: mv %s %s: %s: %w", src, dst, strings.TrimSpace(string(output)), err)
	}
	return nil
}

// realPrivilegeChecker implements PrivilegeChecker using the effective UID.
type realPrivilegeChecker struct{}

// NewPrivilegeChecker returns a PrivilegeChecker that checks the real process euid.
func NewPrivilegeChecker() PrivilegeChecker {
	return &realPrivilegeChecker{}
}

func (c *realPrivilegeChecker) IsPrivileged() bool {
	return unix.Geteuid() == 0
}
