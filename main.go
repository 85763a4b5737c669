// Copyright
// SPDX-License-Identifier: MIT
// contextmd: terminal Markdown editor with live preview, single-line export and an optional browser preview
package main

import (
    "context"
    "fmt"
    "io"
    "os"
    "os/signal"
    "syscall"

    "github.com/spf13/afero"
    "github.com/spf13/cobra"
    "go.uber.org/zap"

    "contextmd/internal/config"
    "contextmd/internal/document"
    "contextmd/internal/i18n"
    "contextmd/internal/logging"
    "contextmd/internal/preview"
    "contextmd/internal/render"
    "contextmd/internal/tui"
    "contextmd/internal/tui/util"
)

const Version = "0.1.0"

func main() {
    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()
    if err := newCLI(afero.NewOsFs(), os.Stdin, os.Stdout).root().ExecuteContext(ctx); err != nil {
        os.Exit(1)
    }
}

/* ---------- command tree ---------- */

type cli struct {
    app     config.App
    noColor bool

    fs     afero.Fs
    stdin  io.Reader
    stdout io.Writer
    log    *zap.Logger
}

func newCLI(fs afero.Fs, stdin io.Reader, stdout io.Writer) *cli {
    return &cli{
        app:    config.ApplyEnvOverrides(config.DefaultApp()),
        fs:     fs,
        stdin:  stdin,
        stdout: stdout,
        log:    zap.NewNop(),
    }
}

func (c *cli) root() *cobra.Command {
    root := &cobra.Command{
        Use:   "contextmd [file]",
        Short: "Markdown editor with live preview and single-line export",
        Long: `contextmd edits a Markdown document in the terminal next to a live preview.

Start the editor on the welcome document, or on a file (read once, never written back):
  contextmd
  contextmd notes.md

Serve a browser preview that follows the editor:
  contextmd --preview 127.0.0.1:7070

Render or flatten without the editor:
  contextmd render notes.md --theme light > notes.html
  cat notes.md | contextmd export -`,
        Args:         cobra.MaximumNArgs(1),
        SilenceUsage: true,
        PersistentPreRun: func(cmd *cobra.Command, args []string) {
            c.log = logging.New(logging.Config{
                Level: c.app.LogLevel,
                File:  config.ExpandPath(c.app.LogFile),
            })
        },
        PersistentPostRun: func(cmd *cobra.Command, args []string) {
            _ = c.log.Sync()
        },
        RunE: func(cmd *cobra.Command, args []string) error {
            return c.runEditor(cmd.Context(), args)
        },
    }

    flags := root.PersistentFlags()
    flags.StringVar(&c.app.SettingsPath, "settings", c.app.SettingsPath, "preferences file")
    flags.StringVar(&c.app.LogFile, "log-file", c.app.LogFile, "append logs to this file (rotated); empty disables logging")
    flags.StringVar(&c.app.LogLevel, "log-level", c.app.LogLevel, "debug | info | warn | error")
    flags.StringVar(&c.app.OutDir, "out-dir", c.app.OutDir, "directory document.md is saved to")
    flags.StringVar(&c.app.PreviewAddr, "preview", c.app.PreviewAddr, "serve a browser preview on this loopback address")
    flags.BoolVar(&c.noColor, "no-color", false, "disable colors (NO_COLOR is honored too)")

    root.AddCommand(c.renderCmd(), c.exportCmd(), c.versionCmd())
    return root
}

func (c *cli) renderCmd() *cobra.Command {
    var theme, lang string
    cmd := &cobra.Command{
        Use:   "render [file]",
        Short: "Print the document as a standalone HTML page",
        Long: `Render the document through the same pipeline as the browser preview and
print the full page. Without --theme/--lang the saved preferences are used.
A file of "-" reads standard input.`,
        Args: cobra.MaximumNArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            doc, err := c.loadDoc(args)
            if err != nil {
                return err
            }
            mode, l, err := c.pageSettings(theme, lang)
            if err != nil {
                return err
            }
            // a static page has no viewer yet; system is left to its stylesheet
            root := config.NewRoot("md-root")
            root.Defer(mode)

            body := render.New().RenderOrEscape([]byte(doc.Text()))
            if err := render.Page(c.stdout, body, render.PageOptions{
                Title: i18n.For(string(l)).Title,
                Lang:  string(l),
                Class: root.Class(),
            }); err != nil {
                return fmt.Errorf("write page: %w", err)
            }
            return nil
        },
    }
    cmd.Flags().StringVar(&theme, "theme", "", "light | dark | system")
    cmd.Flags().StringVar(&lang, "lang", "", "en | zh-TW | zh-CN | ja | ko")
    return cmd
}

func (c *cli) exportCmd() *cobra.Command {
    return &cobra.Command{
        Use:   "export [file]",
        Short: "Print the document flattened to one escaped line",
        Args:  cobra.MaximumNArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            doc, err := c.loadDoc(args)
            if err != nil {
                return err
            }
            _, err = fmt.Fprintln(c.stdout, doc.Escaped())
            return err
        },
    }
}

func (c *cli) versionCmd() *cobra.Command {
    return &cobra.Command{
        Use:   "version",
        Short: "Print version",
        Run: func(cmd *cobra.Command, args []string) {
            fmt.Fprintln(c.stdout, "contextmd", Version)
        },
    }
}

/* ---------- actions ---------- */

func (c *cli) runEditor(ctx context.Context, args []string) error {
    doc, err := c.loadDoc(args)
    if err != nil {
        return err
    }

    env := config.SystemEnv{}
    // the background query needs the terminal before the editor takes it over
    env.PrefersDark()
    store := config.OpenStore(c.fs, config.ExpandPath(c.app.SettingsPath), c.log)
    prefs := config.Load(store, env, c.log)

    opts := tui.Options{
        Doc:     doc,
        Prefs:   prefs,
        Fs:      c.fs,
        OutDir:  config.ExpandPath(c.app.OutDir),
        Log:     c.log,
        NoColor: util.NoColor(c.noColor),
    }

    if c.app.PreviewAddr != "" {
        ctx, cancel := context.WithCancel(ctx)
        defer cancel()
        srv := preview.New(render.New(), c.log)
        url, err := srv.Start(ctx, c.app.PreviewAddr)
        if err != nil {
            return fmt.Errorf("start preview: %w", err)
        }
        opts.Publisher = srv
        opts.PreviewURL = url
    }

    c.log.Info("editor starting",
        zap.String("settings", store.Path()),
        zap.String("theme", string(prefs.Theme)),
        zap.String("lang", string(prefs.Lang)))
    return tui.Run(opts)
}

// loadDoc returns the welcome document, stdin for "-", or the named file.
func (c *cli) loadDoc(args []string) (*document.Document, error) {
    if len(args) == 0 {
        return document.New(document.Sample), nil
    }
    if args[0] == "-" {
        doc, err := document.Read(c.stdin)
        if err != nil {
            return nil, fmt.Errorf("read stdin: %w", err)
        }
        return doc, nil
    }
    f, err := c.fs.Open(config.ExpandPath(args[0]))
    if err != nil {
        return nil, fmt.Errorf("open document: %w", err)
    }
    defer f.Close()
    doc, err := document.Read(f)
    if err != nil {
        return nil, fmt.Errorf("read %s: %w", args[0], err)
    }
    return doc, nil
}

// pageSettings validates explicit flags and otherwise falls back to the
// saved preferences without writing them.
func (c *cli) pageSettings(theme, lang string) (config.ThemeMode, config.Language, error) {
    store := config.OpenStore(c.fs, config.ExpandPath(c.app.SettingsPath), c.log)

    mode := config.ResolveTheme(store)
    if theme != "" {
        m, ok := config.ParseThemeMode(theme)
        if !ok {
            return "", "", fmt.Errorf("unknown theme %q", theme)
        }
        mode = m
    }
    l := config.ResolveLanguage(store, config.SystemEnv{}.Locale())
    if lang != "" {
        v, ok := config.ParseLanguage(lang)
        if !ok {
            return "", "", fmt.Errorf("unsupported language %q", lang)
        }
        l = v
    }
    return mode, l, nil
}
