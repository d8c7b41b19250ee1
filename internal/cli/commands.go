package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Drumstickz64/todolist/internal/tasklist"
	"github.com/Drumstickz64/todolist/internal/ui"
)

const indexHint = "Hint: run `todo ls` to see valid indexes"

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <title...>",
		Short:   "Add a new item (title can be multiple words)",
		Example: `  todo add "Buy milk"`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError("usage: todo add <title...>")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			c.AddTask(strings.Join(args, " "))
			if err := a.save(c); err != nil {
				return err
			}
			ui.OK(a.out, "added")
			return nil
		},
	}
}

func (a *app) lsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List items",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := a.load()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, ui.Panel(listLines(c, a.v.GetBool("ui.group"))))
			return nil
		},
	}
	cmd.Flags().Bool("group", false, "group output by pending/done")
	_ = a.v.BindPFlag("ui.group", cmd.Flags().Lookup("group"))
	return cmd
}

func listLines(c *tasklist.Controller, group bool) []string {
	rows := c.Snapshot().Rows
	done, pending := c.Stats()

	lines := []string{
		ui.Header(done, pending),
		ui.MutedStyle.Render(ui.ProgressBar(done, done+pending, 28)),
		"",
	}
	if group {
		lines = append(lines, ui.GroupLines(rows)...)
	} else {
		lines = append(lines, ui.ListLines(rows)...)
	}
	lines = append(lines, "", ui.MutedStyle.Render("Tip: add with `todo add \"Buy milk\"`"))
	return lines
}

func (a *app) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <index>",
		Short: "Toggle done for item at 1-based index",
		Args:  indexArg("done"),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.atIndex("toggled", args[0], func(c *tasklist.Controller, i int) {
				c.ToggleDone(i)
			})
		},
	}
}

func (a *app) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove item at 1-based index",
		Args:  indexArg("rm"),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.atIndex("removed", args[0], func(c *tasklist.Controller, i int) {
				c.MarkForDeletion(i)
				c.Tick(nil)
			})
		},
	}
}

func indexArg(name string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return usageError("usage: todo %s <index>", name)
		}
		if _, err := strconv.Atoi(args[0]); err != nil {
			return usageError("%s: not a number: %s", name, args[0])
		}
		return nil
	}
}

// atIndex loads the list, checks the 1-based index, applies fn and saves.
func (a *app) atIndex(verb, arg string, fn func(c *tasklist.Controller, i int)) error {
	userIndex, _ := strconv.Atoi(arg) // validated by indexArg
	c, err := a.load()
	if err != nil {
		return err
	}
	if userIndex < 1 || userIndex > c.Len() {
		return &exitErr{
			code: exitUsage,
			msg:  fmt.Sprintf("index out of range: have %d, got %d", c.Len(), userIndex),
			hint: indexHint,
		}
	}
	fn(c, userIndex-1)
	if err := a.save(c); err != nil {
		return err
	}
	ui.OK(a.out, verb)
	return nil
}
