package config

import (
    "strings"

    "go.uber.org/zap"
)

// Persisted preference keys.
const (
    KeyTheme = "theme"
    KeyLang  = "lang"
)

// ThemeMode is the user's theme preference. System defers to the
// environment's color-scheme signal whenever it is applied.
type ThemeMode string

const (
    Light  ThemeMode = "light"
    Dark   ThemeMode = "dark"
    System ThemeMode = "system"
)

// ThemeModes lists the modes in the order the settings modal cycles them.
var ThemeModes = []ThemeMode{Light, Dark, System}

// ParseThemeMode reports whether s names a known theme mode.
func ParseThemeMode(s string) (ThemeMode, bool) {
    switch m := ThemeMode(s); m {
    case Light, Dark, System:
        return m, true
    }
    return "", false
}

// Language is a supported UI language tag.
type Language string

const (
    English            Language = "en"
    TraditionalChinese Language = "zh-TW"
    SimplifiedChinese  Language = "zh-CN"
    Japanese           Language = "ja"
    Korean             Language = "ko"
)

// SupportedLanguages is the closed set of UI languages, in display order.
var SupportedLanguages = []Language{English, TraditionalChinese, SimplifiedChinese, Japanese, Korean}

// ParseLanguage accepts only members of SupportedLanguages.
func ParseLanguage(s string) (Language, bool) {
    for _, l := range SupportedLanguages {
        if string(l) == s {
            return l, true
        }
    }
    return "", false
}

// InferLanguage maps a free-form locale string (LANG, Accept-Language, ...)
// onto a supported language.
func InferLanguage(locale string) Language {
    l := strings.ToLower(locale)
    switch {
    case strings.HasPrefix(l, "zh"):
        if strings.Contains(l, "tw") || strings.Contains(l, "hk") {
            return TraditionalChinese
        }
        return SimplifiedChinese
    case strings.HasPrefix(l, "ja"):
        return Japanese
    case strings.HasPrefix(l, "ko"):
        return Korean
    }
    return English
}

// KV is the key-value persistence the resolver reads and writes.
type KV interface {
    Get(key string) (string, bool)
    Set(key, value string) error
}

// ResolveTheme returns the persisted theme, or Dark when absent or invalid.
func ResolveTheme(kv KV) ThemeMode {
    if v, ok := kv.Get(KeyTheme); ok {
        if m, ok := ParseThemeMode(v); ok {
            return m
        }
    }
    return Dark
}

// ResolveLanguage returns the persisted language when it is supported and
// falls back to inferring one from locale.
func ResolveLanguage(kv KV, locale string) Language {
    if v, ok := kv.Get(KeyLang); ok {
        if l, ok := ParseLanguage(v); ok {
            return l
        }
    }
    return InferLanguage(locale)
}

// EffectiveTheme collapses System into Light or Dark using prefersDark.
// prefersDark is consulted only for System.
func EffectiveTheme(mode ThemeMode, prefersDark func() bool) ThemeMode {
    if mode != System {
        return mode
    }
    if prefersDark != nil && prefersDark() {
        return Dark
    }
    return Light
}

// Root is the document-level class list the effective theme is applied to.
type Root struct {
    classes []string
}

// NewRoot returns a root carrying the given base classes.
func NewRoot(base ...string) *Root {
    return &Root{classes: append([]string(nil), base...)}
}

// Apply removes any previously applied theme class and adds the class for
// mode, resolving System at call time. It returns the applied theme.
func (r *Root) Apply(mode ThemeMode, prefersDark func() bool) ThemeMode {
    eff := EffectiveTheme(mode, prefersDark)
    r.classes = append(r.withoutTheme(), string(eff))
    return eff
}

// Defer marks the root with mode as given. System stays unresolved so that
// whoever displays the root later decides, as a static page does with its
// prefers-color-scheme stylesheet.
func (r *Root) Defer(mode ThemeMode) {
    r.classes = append(r.withoutTheme(), string(mode))
}

func (r *Root) withoutTheme() []string {
    kept := r.classes[:0]
    for _, c := range r.classes {
        switch ThemeMode(c) {
        case Light, Dark, System:
        default:
            kept = append(kept, c)
        }
    }
    return kept
}

// Classes returns a copy of the current class list.
func (r *Root) Classes() []string {
    return append([]string(nil), r.classes...)
}

// Class returns the class list as an HTML class attribute value.
func (r *Root) Class() string {
    return strings.Join(r.classes, " ")
}

// Preferences is the resolved theme and language plus the setters that
// persist them. One value is owned by the top-level model and passed down.
type Preferences struct {
    Theme ThemeMode
    Lang  Language

    kv   KV
    env  Env
    root *Root
    log  *zap.Logger
}

// Load resolves both preferences, persists the resolved values and applies
// the theme to a fresh root.
func Load(kv KV, env Env, log *zap.Logger) *Preferences {
    if log == nil {
        log = zap.NewNop()
    }
    p := &Preferences{
        Theme: ResolveTheme(kv),
        Lang:  ResolveLanguage(kv, env.Locale()),
        kv:    kv,
        env:   env,
        root:  NewRoot(),
        log:   log,
    }
    p.persist(KeyTheme, string(p.Theme))
    p.persist(KeyLang, string(p.Lang))
    p.root.Apply(p.Theme, env.PrefersDark)
    return p
}

// SetTheme updates, persists and re-applies the theme.
func (p *Preferences) SetTheme(m ThemeMode) {
    p.Theme = m
    p.persist(KeyTheme, string(m))
    p.root.Apply(m, p.env.PrefersDark)
}

// SetLanguage updates and persists the language.
func (p *Preferences) SetLanguage(l Language) {
    p.Lang = l
    p.persist(KeyLang, string(l))
}

// Effective resolves the current theme against the environment now.
func (p *Preferences) Effective() ThemeMode {
    return EffectiveTheme(p.Theme, p.env.PrefersDark)
}

// Root exposes the class list the theme was last applied to.
func (p *Preferences) Root() *Root { return p.root }

func (p *Preferences) persist(key, value string) {
    if err := p.kv.Set(key, value); err != nil {
        p.log.Warn("persist preference", zap.String("key", key), zap.Error(err))
    }
}
