package packaging

import "fmt"

// GenerateUnitFile renders the systemd unit file body for spec. The field
// order is a contract other tooling may match on, so the body is a single
// literal template rather than an assembled option list. Identical specs
// render byte-identical output.
func GenerateUnitFile(spec ServiceSpec) string {
	workingDir := ""
	if spec.WorkingDir != "" {
		workingDir = "WorkingDirectory=" + spec.WorkingDir + "\n"
	}

	return fmt.Sprintf(`[Unit]
Description=%s service
After=network.target

[Service]
Type=simple
ExecStart=%s
%sRestart=on-failure
RestartSec=5
StandardOutput=journal
StandardError=journal

[Install]
WantedBy=multi-user.target
`, spec.Name, spec.Command, workingDir)
}
