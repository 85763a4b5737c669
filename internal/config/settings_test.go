package config

import (
    "testing"

    "github.com/spf13/afero"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

type mapKV map[string]string

func (m mapKV) Get(k string) (string, bool) { v, ok := m[k]; return v, ok }
func (m mapKV) Set(k, v string) error      { m[k] = v; return nil }

func TestResolveTheme(t *testing.T) {
    assert.Equal(t, Dark, ResolveTheme(mapKV{}))
    assert.Equal(t, Light, ResolveTheme(mapKV{KeyTheme: "light"}))
    assert.Equal(t, System, ResolveTheme(mapKV{KeyTheme: "system"}))
    assert.Equal(t, Dark, ResolveTheme(mapKV{KeyTheme: "sepia"}))
}

func TestResolveLanguage(t *testing.T) {
    cases := []struct {
        name   string
        kv     mapKV
        locale string
        want   Language
    }{
        {"hong kong", mapKV{}, "zh-HK", TraditionalChinese},
        {"taiwan posix", mapKV{}, "zh_TW.UTF-8", TraditionalChinese},
        {"mainland", mapKV{}, "zh-CN", SimplifiedChinese},
        {"bare zh", mapKV{}, "zh", SimplifiedChinese},
        {"japanese", mapKV{}, "ja_JP.UTF-8", Japanese},
        {"korean", mapKV{}, "ko-KR", Korean},
        {"french", mapKV{}, "fr-FR", English},
        {"empty", mapKV{}, "", English},
        {"persisted wins", mapKV{KeyLang: "ja"}, "ko-KR", Japanese},
        {"unsupported persisted", mapKV{KeyLang: "xx"}, "zh-HK", TraditionalChinese},
        {"unsupported persisted no locale", mapKV{KeyLang: "xx"}, "", English},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            assert.Equal(t, tc.want, ResolveLanguage(tc.kv, tc.locale))
        })
    }
}

func TestLoadPersistsInitialResolution(t *testing.T) {
    kv := mapKV{KeyLang: "xx"}
    p := Load(kv, StaticEnv{Loc: "ko_KR.UTF-8"}, nil)
    assert.Equal(t, Dark, p.Theme)
    assert.Equal(t, Korean, p.Lang)
    assert.Equal(t, "dark", kv[KeyTheme])
    assert.Equal(t, "ko", kv[KeyLang])
    assert.Equal(t, []string{"dark"}, p.Root().Classes())
}

func TestSystemThemeAppliesEnvironmentSignal(t *testing.T) {
    kv := mapKV{KeyTheme: "system"}
    p := Load(kv, StaticEnv{Dark: true}, nil)
    assert.Equal(t, System, p.Theme)
    assert.Equal(t, Dark, p.Effective())
    assert.Equal(t, "dark", p.Root().Class())

    p = Load(kv, StaticEnv{Dark: false}, nil)
    assert.Equal(t, Light, p.Effective())
    assert.Equal(t, "light", p.Root().Class())
}

func TestSetThemeReplacesPreviousClass(t *testing.T) {
    kv := mapKV{}
    p := Load(kv, StaticEnv{}, nil)
    p.Root().classes = append(p.Root().classes, "app")
    p.SetTheme(Light)
    p.SetTheme(Dark)
    p.SetTheme(Light)
    assert.ElementsMatch(t, []string{"app", "light"}, p.Root().Classes())
    assert.Equal(t, "light", kv[KeyTheme])

    p.SetLanguage(SimplifiedChinese)
    assert.Equal(t, "zh-CN", kv[KeyLang])
}

func TestRootApplyKeepsOtherClasses(t *testing.T) {
    r := NewRoot("light", "md", "dark")
    got := r.Apply(Dark, nil)
    assert.Equal(t, Dark, got)
    assert.Equal(t, []string{"md", "dark"}, r.Classes())
}

func TestRootDeferLeavesSystemUnresolved(t *testing.T) {
    r := NewRoot("md", "dark")
    r.Defer(System)
    assert.Equal(t, []string{"md", "system"}, r.Classes())

    got := r.Apply(System, func() bool { return true })
    assert.Equal(t, Dark, got)
    assert.Equal(t, []string{"md", "dark"}, r.Classes())

    r.Defer(Light)
    assert.Equal(t, "md light", r.Class())
}

func TestStoreRoundTrip(t *testing.T) {
    fs := afero.NewMemMapFs()
    s := OpenStore(fs, "/home/u/.contextmd/settings.yaml", nil)
    _, ok := s.Get(KeyTheme)
    assert.False(t, ok)

    require.NoError(t, s.Set(KeyTheme, "light"))
    require.NoError(t, s.Set(KeyLang, "zh-TW"))

    again := OpenStore(fs, s.Path(), nil)
    v, ok := again.Get(KeyTheme)
    require.True(t, ok)
    assert.Equal(t, "light", v)
    v, _ = again.Get(KeyLang)
    assert.Equal(t, "zh-TW", v)
}

func TestStoreMalformedFileIsAbsent(t *testing.T) {
    fs := afero.NewMemMapFs()
    require.NoError(t, afero.WriteFile(fs, "/s.yaml", []byte("theme: [unclosed"), 0o644))
    s := OpenStore(fs, "/s.yaml", nil)
    _, ok := s.Get(KeyTheme)
    assert.False(t, ok)
    assert.Equal(t, Dark, ResolveTheme(s))
}

func TestStoreNonStringValueIsAbsent(t *testing.T) {
    fs := afero.NewMemMapFs()
    require.NoError(t, afero.WriteFile(fs, "/s.yaml", []byte("theme: 3\nlang: ja\n"), 0o644))
    s := OpenStore(fs, "/s.yaml", nil)
    _, ok := s.Get(KeyTheme)
    assert.False(t, ok)
    assert.Equal(t, Japanese, ResolveLanguage(s, "en_US"))
}

func TestStoreWriteFailureDoesNotBreakLoad(t *testing.T) {
    fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
    s := OpenStore(fs, "/ro/settings.yaml", nil)
    assert.Error(t, s.Set(KeyTheme, "light"))

    p := Load(s, StaticEnv{Loc: "ja"}, nil)
    assert.Equal(t, Japanese, p.Lang)
}

func TestApplyEnvOverrides(t *testing.T) {
    t.Setenv("CONTEXTMD_LOG_LEVEL", "debug")
    t.Setenv("CONTEXTMD_PREVIEW_ADDR", "127.0.0.1:7777")
    a := ApplyEnvOverrides(DefaultApp())
    assert.Equal(t, "debug", a.LogLevel)
    assert.Equal(t, "127.0.0.1:7777", a.PreviewAddr)
    assert.NotEmpty(t, a.SettingsPath)
}
