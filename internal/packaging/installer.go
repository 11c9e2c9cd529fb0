package packaging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Installer stages a generated unit file and either installs it as a system
// service (privileged) or prints the manual install commands (unprivileged).
type Installer struct {
	cfg     Config
	systemd SystemdController
	mover   FileMover
	priv    PrivilegeChecker
	out     io.Writer
	logger  *slog.Logger
}

// NewInstaller creates a new Installer with defaults applied. User-facing
// output (instructions, confirmation) is written to out.
func NewInstaller(cfg Config, systemd SystemdController, mover FileMover, priv PrivilegeChecker, out io.Writer, logger *slog.Logger) *Installer {
	cfg.ApplyDefaults()
	return &Installer{
		cfg:     cfg,
		systemd: systemd,
		mover:   mover,
		priv:    priv,
		out:     out,
		logger:  logger.With("component", "packaging"),
	}
}

// installStep is one privileged install action. Steps run in order; the
// first failure aborts the rest and completed steps are not rolled back.
type installStep struct {
	name string
	run  func() error
}

// Run stages the unit file for spec, then installs it when privileged or
// prints manual install instructions when not. The advisory branch is a
// success: producing correct staged content is the job.
func (ins *Installer) Run(spec ServiceSpec) error {
	stagedPath, err := ins.Stage(spec)
	if err != nil {
		return err
	}

	if !ins.priv.IsPrivileged() {
		ins.advise(spec, stagedPath)
		return nil
	}
	return ins.install(spec, stagedPath)
}

// Stage writes the rendered unit file to the staging directory. The write
// goes through a temp file and rename so readers never observe a partially
// written unit.
func (ins *Installer) Stage(spec ServiceSpec) (string, error) {
	content := GenerateUnitFile(spec)
	stagedPath := filepath.Join(ins.cfg.StagingDir, spec.UnitName())
	tmpPath := filepath.Join(ins.cfg.StagingDir, ".tmp-"+spec.UnitName())

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("packaging: stage unit file: %w", err)
	}
	defer os.Remove(tmpPath) // clean up on error

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return "", fmt.Errorf("packaging: stage unit file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return "", fmt.Errorf("packaging: stage unit file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("packaging: stage unit file: %w", err)
	}
	if err := os.Rename(tmpPath, stagedPath); err != nil {
		return "", fmt.Errorf("packaging: stage unit file: %w", err)
	}

	ins.logger.Info("unit file staged", "path", stagedPath)
	return stagedPath, nil
}

func (ins *Installer) installPath(spec ServiceSpec) string {
	return filepath.Join(ins.cfg.UnitDir, spec.UnitName())
}

// advise prints the staged path and the commands a privileged user must run
// to finish the install by hand.
func (ins *Installer) advise(spec ServiceSpec, stagedPath string) {
	installPath := ins.installPath(spec)

	fmt.Fprintln(ins.out, "Root privileges are required to install a system service.")
	fmt.Fprintf(ins.out, "Unit file staged at: %s\n", stagedPath)
	fmt.Fprintln(ins.out, "Run the following commands to install the service:")
	fmt.Fprintf(ins.out, "sudo mv %s %s\n", stagedPath, installPath)
	fmt.Fprintln(ins.out, "sudo systemctl daemon-reload")
	fmt.Fprintf(ins.out, "sudo systemctl enable %s\n", spec.UnitName())
	fmt.Fprintf(ins.out, "sudo systemctl start %s\n", spec.UnitName())

	ins.logger.Info("manual install instructions printed", "service", spec.Name)
}

// install runs the privileged steps in order, stopping at the first failure.
func (ins *Installer) install(spec ServiceSpec, stagedPath string) error {
	if !ins.systemd.IsAvailable() {
		return errors.New("packaging: systemctl is not available on this system")
	}

	installPath := ins.installPath(spec)
	steps := []installStep{
		{"move unit file", func() error { return ins.mover.Move(stagedPath, installPath) }},
		{"daemon-reload", ins.systemd.DaemonReload},
		{"enable service", func() error { return ins.systemd.Enable(spec.UnitName()) }},
		{"start service", func() error { return ins.systemd.Start(spec.UnitName()) }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("packaging: %s: %w", step.name, err)
		}
		ins.logger.Info("install step completed", "step", step.name, "service", spec.Name)
	}

	fmt.Fprintf(ins.out, "Service %q has been created and enabled.\n", spec.Name)
	fmt.Fprintf(ins.out, "You can check its status with: systemctl status %s\n", spec.UnitName())
	return nil
}
