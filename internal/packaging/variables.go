package packaging

import (
	"fmt"
	"strings"
)

// Variable names recognised in the environment and in KEY=VALUE arguments.
// The spelling follows the make variables they replace.
const (
	VarDestDir    = "DESTDIR"
	VarPrefix     = "prefix"
	VarBinDir     = "bindir"
	VarSystemdDir = "systemddir"
)

// Variables lists every recognised variable name.
var Variables = []string{VarDestDir, VarPrefix, VarBinDir, VarSystemdDir}

// Set assigns a path variable by name. An empty value leaves the field unset.
func (c *InstallConfig) Set(name, value string) error {
	if value == "" {
		return nil
	}
	switch name {
	case VarDestDir:
		c.DestDir = value
	case VarPrefix:
		c.Prefix = value
	case VarBinDir:
		c.BinDir = value
	case VarSystemdDir:
		c.SystemdDir = value
	default:
		return fmt.Errorf("packaging: unknown variable %q (want one of %s)", name, strings.Join(Variables, ", "))
	}
	return nil
}

// ApplyEnv overrides the path variables present in the environment.
// lookup has the signature of os.LookupEnv.
func (c *InstallConfig) ApplyEnv(lookup func(string) (string, bool)) {
	for _, name := range Variables {
		if v, ok := lookup(name); ok {
			// Set only fails for unknown names.
			_ = c.Set(name, v)
		}
	}
}

// ApplyAssignments applies make-style NAME=VALUE arguments in order.
func (c *InstallConfig) ApplyAssignments(args []string) error {
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return fmt.Errorf("packaging: invalid assignment %q, want NAME=VALUE", arg)
		}
		if err := c.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}
