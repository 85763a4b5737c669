package config

import (
    "os"
    "path/filepath"
    "strings"
)

// App is process-level configuration: where things live and what to start.
// Values come from defaults, then CONTEXTMD_* env vars, then CLI flags.
type App struct {
    SettingsPath string
    LogFile      string // empty disables logging
    LogLevel     string
    PreviewAddr  string // empty disables the browser preview
    OutDir       string // where document.md is written
}

// Dir is the per-user state directory, ~/.contextmd.
func Dir() string {
    if h, err := os.UserHomeDir(); err == nil && h != "" {
        return filepath.Join(h, ".contextmd")
    }
    return ".contextmd"
}

func DefaultApp() App {
    return App{
        SettingsPath: filepath.Join(Dir(), "settings.yaml"),
        LogLevel:     "info",
        OutDir:       ".",
    }
}

// ApplyEnvOverrides layers CONTEXTMD_* variables over a.
func ApplyEnvOverrides(a App) App {
    if v := os.Getenv("CONTEXTMD_SETTINGS"); v != "" {
        a.SettingsPath = ExpandPath(v)
    }
    if v := os.Getenv("CONTEXTMD_LOG_FILE"); v != "" {
        a.LogFile = ExpandPath(v)
    }
    if v := os.Getenv("CONTEXTMD_LOG_LEVEL"); v != "" {
        a.LogLevel = v
    }
    if v := os.Getenv("CONTEXTMD_PREVIEW_ADDR"); v != "" {
        a.PreviewAddr = v
    }
    if v := os.Getenv("CONTEXTMD_OUT_DIR"); v != "" {
        a.OutDir = ExpandPath(v)
    }
    return a
}

// ExpandPath resolves ~/, environment references and relative paths.
func ExpandPath(p string) string {
    p = strings.TrimSpace(p)
    if p == "" {
        return p
    }
    if strings.HasPrefix(p, "~/") {
        if h, err := os.UserHomeDir(); err == nil {
            p = filepath.Join(h, p[2:])
        }
    }
    p = os.ExpandEnv(p)
    if !filepath.IsAbs(p) {
        if abs, err := filepath.Abs(p); err == nil {
            p = abs
        }
    }
    return p
}
