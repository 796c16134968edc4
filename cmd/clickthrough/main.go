package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/clickthrough/internal/actionlog"
	"github.com/1broseidon/clickthrough/internal/config"
	"github.com/1broseidon/clickthrough/internal/platform"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "on":
		os.Exit(runToggle("on", true, os.Args[2:]))
	case "off":
		os.Exit(runToggle("off", false, os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "move":
		os.Exit(runMove(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: clickthrough <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  on <window>           Make a window ignore mouse events")
	fmt.Fprintln(w, "  off <window>          Restore normal pointer handling")
	fmt.Fprintln(w, "  status <window>       Show whether a window ignores mouse events")
	fmt.Fprintln(w, "  move <window> X Y     Ask the window manager to move a window (X11)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config print          Print effective configuration")
	fmt.Fprintln(w, "  mcp serve             Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "<window> is --window ID (decimal or 0x hex), --title SUBSTRING or --active.")
	fmt.Fprintln(w, "Run 'clickthrough <command> --help' for command-specific options.")
}

type windowFlags struct {
	id     string
	title  string
	active bool
}

func addWindowFlags(fs *flag.FlagSet) *windowFlags {
	w := &windowFlags{}
	fs.StringVar(&w.id, "window", "", "Native window handle (decimal or 0x hex)")
	fs.StringVar(&w.title, "title", "", "Select the first window whose title contains SUBSTRING (X11)")
	fs.BoolVar(&w.active, "active", false, "Select the active window (X11)")
	return w
}

func (w *windowFlags) target() platform.Target {
	return platform.Target{ID: w.id, Title: w.title, Active: w.active}
}

// session bundles what every window command needs.
type session struct {
	cfg     *config.Config
	backend platform.Backend
	actions *actionlog.Logger
	logger  *slog.Logger
}

func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	backend, err := platform.Open(cfg.Backend, cfg.PlatformOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s backend: %w", cfg.Backend, err)
	}
	logger.Debug("backend selected", "backend", backend.Name())

	logCfg := cfg.GetActionLogConfig()
	var actions *actionlog.Logger
	if logCfg.Enabled {
		actions, err = actionlog.New(actionlog.Config{
			Enabled:   logCfg.Enabled,
			FilePath:  logCfg.File,
			MaxSizeMB: logCfg.MaxSizeMB,
			MaxFiles:  logCfg.MaxFiles,
		})
		if err != nil {
			logger.Warn("failed to initialize action log", "err", err)
			actions = nil
		}
	}

	return &session{cfg: cfg, backend: backend, actions: actions, logger: logger}, nil
}

func (s *session) resolve(w *windowFlags) (platform.Handle, error) {
	h, err := platform.Resolve(w.target(), s.cfg.PlatformOptions())
	if err != nil {
		return 0, err
	}
	s.logger.Debug("window resolved", "window", h.String())
	return h, nil
}

func (s *session) close() {
	if s.actions != nil {
		s.actions.Close()
	}
}

func details(kv map[string]any, err error) map[string]any {
	if err != nil {
		kv["error"] = err
	}
	return kv
}

// acceptBareWindow lets "clickthrough on 0x3a00007" stand in for --window.
func acceptBareWindow(fs *flag.FlagSet, w *windowFlags) error {
	switch fs.NArg() {
	case 0:
		return nil
	case 1:
		if w.id != "" || w.title != "" || w.active {
			return fmt.Errorf("unexpected argument: %s", fs.Arg(0))
		}
		w.id = fs.Arg(0)
		return nil
	default:
		return fmt.Errorf("too many arguments")
	}
}

func runToggle(name string, ignore bool, args []string) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	w := addWindowFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: clickthrough %s [--window ID | --title SUBSTRING | --active]\n", name)
		fmt.Fprintln(os.Stderr, "")
		if ignore {
			fmt.Fprintln(os.Stderr, "Make the window ignore mouse events so clicks pass through it.")
		} else {
			fmt.Fprintln(os.Stderr, "Restore normal pointer handling on the window.")
		}
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if err := acceptBareWindow(fs, w); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return 2
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer s.close()

	h, err := s.resolve(w)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	err = s.backend.SetIgnoresMouseEvents(h, ignore)
	s.actions.Log(actionlog.ActionSet, uint64(h), details(map[string]any{
		"backend": s.backend.Name(),
		"ignore":  ignore,
	}, err))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	w := addWindowFlags(fs)
	plain := fs.Bool("plain", false, "Print only true/false, even on a terminal")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: clickthrough status [--plain] [--window ID | --title SUBSTRING | --active]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Report whether the window ignores mouse events.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if err := acceptBareWindow(fs, w); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return 2
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer s.close()

	h, err := s.resolve(w)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ignores, err := s.backend.IgnoresMouseEvents(h)
	s.actions.Log(actionlog.ActionQuery, uint64(h), details(map[string]any{
		"backend": s.backend.Name(),
		"ignores": ignores,
	}, err))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	human := !*plain && term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Println(formatStatus(h, ignores, s.backend.Name(), human))
	return 0
}

func formatStatus(h platform.Handle, ignores bool, backend string, human bool) string {
	if !human {
		return strconv.FormatBool(ignores)
	}
	state := "off"
	if ignores {
		state = "on"
	}
	return fmt.Sprintf("window:        %s\nbackend:       %s\nclick_through: %s", h, backend, state)
}

// parseCoords reads the X Y pair of move. Negative values need a preceding
// "--" so the flag parser leaves them alone.
func parseCoords(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("move requires X and Y")
	}
	x, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid X %q: %w", args[0], err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid Y %q: %w", args[1], err)
	}
	return x, y, nil
}

func runMove(args []string) int {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	w := addWindowFlags(fs)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: clickthrough move [--window ID | --title SUBSTRING | --active] [--] X Y")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Ask the window manager to move the window via _NET_WM_MOVERESIZE (X11 only).")
		fmt.Fprintln(os.Stderr, "The request is asynchronous; the window manager may ignore it.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	x, y, err := parseCoords(fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return 2
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer s.close()

	mover, ok := s.backend.(platform.Mover)
	if !ok {
		fmt.Fprintf(os.Stderr, "move is not supported by the %s backend\n", s.backend.Name())
		return 1
	}

	h, err := s.resolve(w)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	err = mover.MoveWindow(h, x, y)
	s.actions.Log(actionlog.ActionMove, uint64(h), details(map[string]any{
		"x": x,
		"y": y,
	}, err))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  clickthrough config print [--path PATH] [--defaults]")
		return 2
	}

	switch args[0] {
	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/clickthrough/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var cfg *config.Config
		var err error
		switch {
		case *printDefaults:
			cfg = config.DefaultConfig()
		case *path != "":
			cfg, err = config.LoadFromPath(*path)
		default:
			cfg, err = config.Load()
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		return 2
	}
}
