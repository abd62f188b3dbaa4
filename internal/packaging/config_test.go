package packaging

import (
	"testing"
)

func TestInstallConfig_ApplyDefaults(t *testing.T) {
	cfg := InstallConfig{}
	cfg.ApplyDefaults()

	if cfg.DestDir != "" {
		t.Errorf("DestDir = %q, want empty", cfg.DestDir)
	}
	if cfg.Prefix != "/usr/local" {
		t.Errorf("Prefix = %q, want %q", cfg.Prefix, "/usr/local")
	}
	if cfg.BinDir != "/usr/local/bin" {
		t.Errorf("BinDir = %q, want %q", cfg.BinDir, "/usr/local/bin")
	}
	if cfg.SystemdDir != "/usr/local/lib/systemd/system/" {
		t.Errorf("SystemdDir = %q, want %q", cfg.SystemdDir, "/usr/local/lib/systemd/system/")
	}
	if cfg.ScriptPath != "temper.py" {
		t.Errorf("ScriptPath = %q, want %q", cfg.ScriptPath, "temper.py")
	}
	if cfg.TemplatePath != "temper.service" {
		t.Errorf("TemplatePath = %q, want %q", cfg.TemplatePath, "temper.service")
	}
}

func TestInstallConfig_DerivesFromPrefix(t *testing.T) {
	cfg := InstallConfig{Prefix: "/opt/temper"}
	cfg.ApplyDefaults()

	if cfg.BinDir != "/opt/temper/bin" {
		t.Errorf("BinDir = %q, want %q", cfg.BinDir, "/opt/temper/bin")
	}
	if cfg.SystemdDir != "/opt/temper/lib/systemd/system/" {
		t.Errorf("SystemdDir = %q, want %q", cfg.SystemdDir, "/opt/temper/lib/systemd/system/")
	}
}

func TestInstallConfig_CustomValues(t *testing.T) {
	cfg := InstallConfig{
		DestDir:      "/tmp/stage",
		Prefix:       "/usr",
		BinDir:       "/usr/sbin",
		SystemdDir:   "/lib/systemd/system",
		ScriptPath:   "src/temper.py",
		TemplatePath: "src/temper.service",
	}
	cfg.ApplyDefaults()

	if cfg.BinDir != "/usr/sbin" {
		t.Errorf("BinDir = %q, want %q", cfg.BinDir, "/usr/sbin")
	}
	if cfg.SystemdDir != "/lib/systemd/system" {
		t.Errorf("SystemdDir = %q, want %q", cfg.SystemdDir, "/lib/systemd/system")
	}
	if cfg.ScriptPath != "src/temper.py" {
		t.Errorf("ScriptPath = %q, want %q", cfg.ScriptPath, "src/temper.py")
	}
	if cfg.TemplatePath != "src/temper.service" {
		t.Errorf("TemplatePath = %q, want %q", cfg.TemplatePath, "src/temper.service")
	}
}

func TestInstallConfig_Validate(t *testing.T) {
	valid := InstallConfig{}
	valid.ApplyDefaults()
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*InstallConfig)
	}{
		{"empty BinDir", func(c *InstallConfig) { c.BinDir = "" }},
		{"empty SystemdDir", func(c *InstallConfig) { c.SystemdDir = "" }},
		{"empty ScriptPath", func(c *InstallConfig) { c.ScriptPath = "" }},
		{"empty TemplatePath", func(c *InstallConfig) { c.TemplatePath = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestInstallConfig_Paths(t *testing.T) {
	tests := []struct {
		name       string
		cfg        InstallConfig
		wantBinary string
		wantUnit   string
		wantLegacy string
	}{
		{
			name:       "defaults",
			cfg:        InstallConfig{},
			wantBinary: "/usr/local/bin/temper",
			wantUnit:   "/usr/local/lib/systemd/system/temper.service",
			wantLegacy: "/etc/systemd/system/temper.service",
		},
		{
			name:       "destdir",
			cfg:        InstallConfig{DestDir: "/tmp/stage"},
			wantBinary: "/tmp/stage/usr/local/bin/temper",
			wantUnit:   "/tmp/stage/usr/local/lib/systemd/system/temper.service",
			wantLegacy: "/tmp/stage/etc/systemd/system/temper.service",
		},
		{
			name:       "prefix",
			cfg:        InstallConfig{DestDir: "/pkg", Prefix: "/usr"},
			wantBinary: "/pkg/usr/bin/temper",
			wantUnit:   "/pkg/usr/lib/systemd/system/temper.service",
			wantLegacy: "/pkg/etc/systemd/system/temper.service",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.ApplyDefaults()
			if got := cfg.BinaryPath(); got != tt.wantBinary {
				t.Errorf("BinaryPath() = %q, want %q", got, tt.wantBinary)
			}
			if got := cfg.UnitFilePath(); got != tt.wantUnit {
				t.Errorf("UnitFilePath() = %q, want %q", got, tt.wantUnit)
			}
			if got := cfg.LegacyUnitFilePath(); got != tt.wantLegacy {
				t.Errorf("LegacyUnitFilePath() = %q, want %q", got, tt.wantLegacy)
			}
		})
	}
}
