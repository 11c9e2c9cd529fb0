package packaging

// SystemdController abstracts systemd service management for testability.
type SystemdController interface {
	// IsAvailable returns true if systemd (systemctl) is available on the system.
	IsAvailable() bool

	// DaemonReload executes systemctl daemon-reload to reload unit file changes.
	DaemonReload() error

	// Enable enables the named unit to start on boot.
	Enable(unit string) error

	// Start starts the named unit immediately.
	Start(unit string) error
}

// FileMover abstracts moving the staged unit file into the system unit
// directory. The real implementation is an external command so failures
// carry the tool's own error text.
type FileMover interface {
	Move(src, dst string) error
}

// PrivilegeChecker abstracts privilege checking for testability.
type PrivilegeChecker interface {
	// IsPrivileged returns true if the process may modify system configuration.
	IsPrivileged() bool
}
