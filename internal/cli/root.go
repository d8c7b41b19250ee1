// Package cli wires configuration, storage and the task list into the todo
// command tree.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Drumstickz64/todolist/internal/config"
	"github.com/Drumstickz64/todolist/internal/logging"
	"github.com/Drumstickz64/todolist/internal/store"
	"github.com/Drumstickz64/todolist/internal/tasklist"
	"github.com/Drumstickz64/todolist/internal/tui"
	"github.com/Drumstickz64/todolist/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// exitErr carries an exit code through cobra.
type exitErr struct {
	code int
	msg  string
	hint string
}

func (e *exitErr) Error() string { return e.msg }

func usageError(format string, args ...any) error {
	return &exitErr{code: exitUsage, msg: fmt.Sprintf(format, args...)}
}

func runtimeError(op string, err error) error {
	return &exitErr{code: exitError, msg: op + ": " + err.Error()}
}

// app is the state shared by every subcommand during one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *logging.Logger
	store   *store.FileStore
	out     io.Writer
	errOut  io.Writer
}

// Run executes the command line in args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{
		v:      viper.New(),
		log:    logging.NopLogger(),
		out:    stdout,
		errOut: stderr,
	}
	defer func() { _ = a.log.Close() }()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	var ee *exitErr
	if errors.As(err, &ee) {
		ui.Fail(stderr, ee.msg)
		if ee.hint != "" {
			fmt.Fprintln(stderr, ui.MutedStyle.Render(ee.hint))
		}
		return ee.code
	}

	// Anything cobra rejected before a command ran is a usage problem.
	ui.Fail(stderr, err.Error())
	fmt.Fprintln(stderr, ui.MutedStyle.Render("Run `todo --help` for usage"))
	return exitUsage
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "A tiny to-do list",
		Long: `todo keeps a short list of tasks you can add, tick off and delete.

Run without a subcommand to open the interactive list. The list is saved
when you quit.`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runInteractive,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is "+config.ConfigFile()+")")
	root.PersistentFlags().String("data", "", "task list file (default is "+store.DefaultPath()+")")
	_ = a.v.BindPFlag("storage.path", root.PersistentFlags().Lookup("data"))

	root.AddCommand(
		a.addCmd(),
		a.lsCmd(),
		a.doneCmd(),
		a.rmCmd(),
	)
	return root
}

// setup loads configuration and opens the logger and store.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return runtimeError("config", err)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return runtimeError("config", err)
	}
	a.cfg = cfg

	if cfg.Logging.Enabled {
		l, err := logging.NewLogger(cfg.LogPath(), cfg.Logging.Level)
		if err != nil {
			return runtimeError("logging", err)
		}
		a.log = l.With("command", cmd.Name())
	}

	a.store = store.New(cfg.StatePath())
	a.log.Debug("configured", "state", a.store.Path())
	return nil
}

// load restores the saved list. A read failure aborts rather than risking
// an overwrite of data we could not read; unreadable contents start empty.
func (a *app) load() (*tasklist.Controller, error) {
	blob, err := a.store.Load()
	if err != nil {
		a.log.Error("load failed", "path", a.store.Path(), "error", err)
		return nil, runtimeError("load", err)
	}
	return tasklist.Deserialize(blob, tasklist.WithLogger(a.log)), nil
}

func (a *app) save(c *tasklist.Controller) error {
	blob, err := c.Serialize()
	if err != nil {
		return runtimeError("save", err)
	}
	if err := a.store.Save(blob); err != nil {
		a.log.Error("save failed", "path", a.store.Path(), "error", err)
		return runtimeError("save", err)
	}
	a.log.Info("saved", "tasks", c.Len())
	return nil
}

func (a *app) runInteractive(_ *cobra.Command, _ []string) error {
	c, err := a.load()
	if err != nil {
		return err
	}
	err = tui.Run(c, tui.Options{
		CharLimit: a.cfg.UI.CharLimit,
		ShowHelp:  a.cfg.UI.ShowHelp,
		Logger:    a.log,
	})
	if err != nil {
		return runtimeError("tui", err)
	}
	if err := a.save(c); err != nil {
		return err
	}
	ui.OK(a.out, "saved")
	return nil
}
