package command

import (
	"context"
	"errors"
	"runtime/debug"
)

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	ver := "unknown"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			ver = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		ver += "-dev"
	}
	return ver
}

func loadConfig(ctx context.Context) (*cliConfig, error) {
	cfg, ok := ctx.Value(configKey{}).(*cliConfig)
	if !ok {
		return nil, errors.New("configuration resolution failed")
	}
	return cfg, nil
}
