package packaging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ServiceSpec describes a single service to generate a unit file for.
// Fields are already sanitized and normalized; build one via NewServiceSpec.
type ServiceSpec struct {
	// Name is the sanitized service name, also the unit filename stem.
	Name string

	// Command is the command line placed in ExecStart.
	Command string

	// WorkingDir is the absolute working directory, or empty when none was
	// supplied or the supplied one did not exist.
	WorkingDir string
}

// UnitName returns the systemd unit filename, e.g. "myapp.service".
func (s ServiceSpec) UnitName() string {
	return s.Name + ".service"
}

// NewServiceSpec builds a validated ServiceSpec from raw CLI inputs.
// A missing or empty command file and a name that sanitizes to nothing are
// fatal; a working directory that does not exist only degrades the spec.
func NewServiceSpec(commandFile, rawName, workingDir string, logger *slog.Logger) (ServiceSpec, error) {
	command, err := ReadCommand(commandFile)
	if err != nil {
		return ServiceSpec{}, err
	}

	name := SanitizeServiceName(rawName)
	if name == "" {
		return ServiceSpec{}, fmt.Errorf("packaging: service name %q contains no usable characters", rawName)
	}

	return ServiceSpec{
		Name:       name,
		Command:    NormalizeCommand(command),
		WorkingDir: ResolveWorkingDir(workingDir, logger),
	}, nil
}

// SanitizeServiceName strips every character outside letters, digits,
// '-' and '_'. The result may be empty.
func SanitizeServiceName(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ReadCommand reads the command file and returns its trimmed content.
func ReadCommand(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("packaging: command file %s not found: %w", path, err)
	}
	command := strings.TrimSpace(string(data))
	if command == "" {
		return "", fmt.Errorf("packaging: command file %s is empty", path)
	}
	return command, nil
}

// NormalizeCommand absolutizes a bare-path command. A command containing a
// space is a command line rather than a path and is returned unchanged, even
// when a matching filesystem entry exists.
func NormalizeCommand(command string) string {
	if strings.Contains(command, " ") {
		return command
	}
	if _, err := os.Stat(command); err != nil {
		return command
	}
	abs, err := filepath.Abs(command)
	if err != nil {
		return command
	}
	return abs
}

// ResolveWorkingDir absolutizes dir when it names an existing directory.
// Otherwise it logs a warning and returns empty: the unit is generated
// without a WorkingDirectory directive but the run continues.
func ResolveWorkingDir(dir string, logger *slog.Logger) string {
	if dir == "" {
		return ""
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Warn("working directory does not exist, omitting WorkingDirectory", "dir", dir)
		return ""
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger.Warn("working directory could not be resolved, omitting WorkingDirectory", "dir", dir, "error", err)
		return ""
	}
	return abs
}
