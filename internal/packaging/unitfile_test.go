package packaging

import (
	"strings"
	"testing"

	"github.com/coreos/go-systemd/v22/unit"
)

func TestGenerateUnitFile_NoWorkingDir(t *testing.T) {
	spec := ServiceSpec{Name: "myapp", Command: "/usr/bin/myapp --serve"}

	want := `[Unit]
Description=myapp service
After=network.target

[Service]
Type=simple
ExecStart=/usr/bin/myapp --serve
Restart=on-failure
RestartSec=5
StandardOutput=journal
StandardError=journal

[Install]
WantedBy=multi-user.target
`
	if got := GenerateUnitFile(spec); got != want {
		t.Errorf("GenerateUnitFile() = %q, want %q", got, want)
	}
}

func TestGenerateUnitFile_WithWorkingDir(t *testing.T) {
	spec := ServiceSpec{Name: "myapp", Command: "/usr/bin/myapp", WorkingDir: "/srv/myapp"}
	output := GenerateUnitFile(spec)

	if !strings.Contains(output, "ExecStart=/usr/bin/myapp\nWorkingDirectory=/srv/myapp\nRestart=on-failure\n") {
		t.Errorf("WorkingDirectory line missing or misplaced:\n%s", output)
	}
}

func TestGenerateUnitFile_Idempotent(t *testing.T) {
	spec := ServiceSpec{Name: "myapp", Command: "/usr/bin/myapp", WorkingDir: "/srv/myapp"}

	if GenerateUnitFile(spec) != GenerateUnitFile(spec) {
		t.Error("identical specs must render byte-identical output")
	}
}

// TestGenerateUnitFile_RoundTrip parses the rendered body back through the
// systemd unit parser and checks every directive in order.
func TestGenerateUnitFile_RoundTrip(t *testing.T) {
	spec := ServiceSpec{Name: "web", Command: "/usr/bin/web --port 8080", WorkingDir: "/srv/web"}
	opts, err := unit.Deserialize(strings.NewReader(GenerateUnitFile(spec)))
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}

	want := []unit.UnitOption{
		{Section: "Unit", Name: "Description", Value: "web service"},
		{Section: "Unit", Name: "After", Value: "network.target"},
		{Section: "Service", Name: "Type", Value: "simple"},
		{Section: "Service", Name: "ExecStart", Value: "/usr/bin/web --port 8080"},
		{Section: "Service", Name: "WorkingDirectory", Value: "/srv/web"},
		{Section: "Service", Name: "Restart", Value: "on-failure"},
		{Section: "Service", Name: "RestartSec", Value: "5"},
		{Section: "Service", Name: "StandardOutput", Value: "journal"},
		{Section: "Service", Name: "StandardError", Value: "journal"},
		{Section: "Install", Name: "WantedBy", Value: "multi-user.target"},
	}
	if len(opts) != len(want) {
		t.Fatalf("Deserialize() returned %d options, want %d", len(opts), len(want))
	}
	for i, w := range want {
		if *opts[i] != w {
			t.Errorf("option %d = %+v, want %+v", i, *opts[i], w)
		}
	}
}
