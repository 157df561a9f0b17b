package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amonks/checklist/internal/editor"
	"github.com/amonks/checklist/internal/listflags"
	"github.com/amonks/checklist/internal/ui"
	"github.com/amonks/checklist/todo"
	"github.com/spf13/cobra"
)

// add
var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add a todo",
	Long: `Add a todo.

By default, opens $EDITOR to edit a TOML representation of the todo
when running interactively without text or flags. Use --no-edit to skip
the editor, or --edit to force opening the editor even when not interactive.`,
	Args: cobra.ArbitraryArgs,
	RunE: runAdd,
}

var (
	addDescription string
	addPriority    = newPriorityValue(todo.PriorityMedium)
	addDue         = newDueValue()
	addEditor      editorMode
)

// edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a todo",
	Long: `Edit a todo.

By default, opens $EDITOR to edit a TOML representation of the todo
when running interactively and no edit flags are provided.
Use --no-edit to skip the editor, or --edit to force opening the editor even when not interactive.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editText        string
	editDescription string
	editPriority    = newPriorityValue("")
	editDue         = newDueValue()
	editClearDue    bool
	editEditor      editorMode
)

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	Long: `List todos, highest priority first.

Filters: all, active, completed, overdue, high-priority, medium-priority
and low-priority. Priority filters only show incomplete todos. --search
matches text and descriptions case-insensitively.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listFilter = newFilterValue(todo.FilterAll)
	listSearch string
	listJSON   bool
)

// show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about todos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// toggle
var toggleCmd = &cobra.Command{
	Use:   "toggle <id>...",
	Short: "Mark todos done, or reopen them",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runToggle,
}

// delete
var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more todos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

// clear-completed
var clearCompletedCmd = &cobra.Command{
	Use:   "clear-completed",
	Short: "Delete every completed todo",
	Args:  cobra.NoArgs,
	RunE:  runClearCompleted,
}

// reorder
var reorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Move todos to the front of their priority group",
	Long: `Move todos to the front in the given order.

The named todos take the first positions; the rest keep their current
display order after them. Display still groups todos by priority.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReorder,
}

// counts
var countsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Summarize the todo list",
	Args:  cobra.NoArgs,
	RunE:  runCounts,
}

var countsJSON bool

// purge
var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every todo in the scope",
	Args:  cobra.NoArgs,
	RunE:  runPurge,
}

var purgeYes bool

func init() {
	rootCmd.AddCommand(addCmd, editCmd, listCmd, showCmd, toggleCmd, deleteCmd,
		clearCompletedCmd, reorderCmd, countsCmd, purgeCmd)

	addTodoFlagAliases(addCmd, editCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	addCmd.Flags().VarP(addPriority, "priority", "p", "Priority (high, medium, low)")
	addCmd.Flags().Var(addDue, "due", "Due date (YYYY-MM-DD, today, tomorrow)")
	addEditor.register(addCmd)

	editCmd.Flags().StringVar(&editText, "text", "", "New text")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description (use '-' to read from stdin, '' to clear)")
	editCmd.Flags().VarP(editPriority, "priority", "p", "New priority (high, medium, low)")
	editCmd.Flags().Var(editDue, "due", "New due date (YYYY-MM-DD, today, tomorrow)")
	editCmd.Flags().BoolVar(&editClearDue, "clear-due", false, "Remove the due date")
	editEditor.register(editCmd)
	editCmd.MarkFlagsMutuallyExclusive("due", "clear-due")

	listCmd.Flags().VarP(listFilter, "filter", "f", "Filter (all, active, completed, overdue, high-priority, medium-priority, low-priority)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only todos whose text or description contains this")
	listflags.AddJSONFlag(listCmd, &listJSON)

	listflags.AddJSONFlag(showCmd, &showJSON)
	listflags.AddJSONFlag(countsCmd, &countsJSON)
	purgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "Confirm deleting every todo")
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	description, err := resolveDescriptionFromStdin(addDescription, cmd.InOrStdin())
	if err != nil {
		return err
	}

	opts := todo.AddOptions{
		Description: description,
		Priority:    addPriority.priority,
	}
	if cmd.Flags().Changed("due") {
		due := addDue.date
		opts.DueDate = &due
	}

	hasInput := text != "" || hasChangedFlags(cmd, "description", "priority", "due")
	if addEditor.use(hasInput, editor.IsInteractive()) {
		data := editor.DefaultCreateData()
		data.Text = text
		data.Description = description
		data.Priority = string(opts.Priority)
		if opts.DueDate != nil {
			data.Due = opts.DueDate.Format(time.DateOnly)
		}
		parsed, err := editor.EditTodoWithData(data)
		if err != nil {
			return err
		}
		text = parsed.Text
		opts = parsed.ToAddOptions()
	}

	return withTodoSession(cmd, func(session *todoSession) error {
		id, err := session.store.Add(text, opts)
		if err != nil {
			return err
		}
		item, _ := session.store.Get(id)
		highlight := idHighlighter(session.store.IDIndex().PrefixLengths(), ui.HighlightID)
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s\n", highlight(id), item.Text)
		return nil
	})
}

func runEdit(cmd *cobra.Command, args []string) error {
	return withTodoSession(cmd, func(session *todoSession) error {
		items, err := resolveTodos(session.store, args)
		if err != nil {
			return err
		}
		item := items[0]

		hasFlags := hasChangedFlags(cmd, "text", "description", "priority", "due", "clear-due")
		var opts todo.EditOptions
		if editEditor.use(hasFlags, editor.IsInteractive()) {
			parsed, err := editor.EditTodo(&item)
			if err != nil {
				return err
			}
			opts = parsed.ToEditOptions()
		} else {
			if !hasFlags {
				return errors.New("nothing to edit: pass --text, --description, --priority, --due or --clear-due")
			}
			opts, err = editOptionsFromFlags(cmd)
			if err != nil {
				return err
			}
		}

		if _, err := session.store.Edit(item.ID, opts); err != nil {
			return err
		}
		updated, _ := session.store.Get(item.ID)
		highlight := idHighlighter(session.store.IDIndex().PrefixLengths(), ui.HighlightID)
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", highlight(updated.ID), updated.Text)
		return nil
	})
}

func editOptionsFromFlags(cmd *cobra.Command) (todo.EditOptions, error) {
	var opts todo.EditOptions
	if cmd.Flags().Changed("text") {
		opts.Text = todo.Set(editText)
	}
	if cmd.Flags().Changed("description") {
		description, err := resolveDescriptionFromStdin(editDescription, cmd.InOrStdin())
		if err != nil {
			return todo.EditOptions{}, err
		}
		if strings.TrimSpace(description) == "" {
			opts.Description = todo.Clear[string]()
		} else {
			opts.Description = todo.Set(description)
		}
	}
	if cmd.Flags().Changed("priority") {
		opts.Priority = todo.Set(editPriority.priority)
	}
	if cmd.Flags().Changed("due") {
		opts.DueDate = todo.Set(editDue.date)
	}
	if editClearDue {
		opts.DueDate = todo.Clear[time.Time]()
	}
	return opts, nil
}

func runList(cmd *cobra.Command, args []string) error {
	return withTodoSession(cmd, func(session *todoSession) error {
		if err := session.store.SetFilter(listFilter.filter); err != nil {
			return err
		}
		session.store.SetSearchQuery(listSearch)
		view := session.store.View()

		if listJSON {
			return encodeJSON(cmd.OutOrStdout(), view)
		}
		printTodoTable(cmd.OutOrStdout(), view, session.store.IDIndex().PrefixLengths(), time.Now())
		return nil
	})
}

func runShow(cmd *cobra.Command, args []string) error {
	return withTodoSession(cmd, func(session *todoSession) error {
		items, err := resolveTodos(session.store, args)
		if err != nil {
			return err
		}

		if showJSON {
			return encodeJSON(cmd.OutOrStdout(), items)
		}

		highlight := idHighlighter(session.store.IDIndex().PrefixLengths(), ui.HighlightID)
		now := time.Now()
		for i, item := range items {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			printTodoDetail(cmd.OutOrStdout(), item, highlight, now, session.config.Display.Width)
		}
		return nil
	})
}

func runToggle(cmd *cobra.Command, args []string) error {
	return withTodoSession(cmd, func(session *todoSession) error {
		items, err := resolveTodos(session.store, args)
		if err != nil {
			return err
		}

		highlight := idHighlighter(session.store.IDIndex().PrefixLengths(), ui.HighlightID)
		for _, item := range items {
			if !session.store.Toggle(item.ID) {
				return fmt.Errorf("%w: %s", todo.ErrTodoNotFound, item.ID)
			}
			verb := "Reopened"
			if updated, _ := session.store.Get(item.ID); updated.Completed {
				verb = "Completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", verb, highlight(item.ID), item.Text)
		}
		return nil
	})
}

func runDelete(cmd *cobra.Command, args []string) error {
	return withTodoSession(cmd, func(session *todoSession) error {
		items, err := resolveTodos(session.store, args)
		if err != nil {
			return err
		}

		highlight := idHighlighter(session.store.IDIndex().PrefixLengths(), ui.HighlightID)
		for _, item := range items {
			if !session.store.Delete(item.ID) {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s: %s\n", highlight(item.ID), item.Text)
		}
		return nil
	})
}

func runClearCompleted(cmd *cobra.Command, args []string) error {
	return withTodoSession(cmd, func(session *todoSession) error {
		removed := session.store.ClearCompleted()
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d completed todo(s)\n", removed)
		return nil
	})
}

func runReorder(cmd *cobra.Command, args []string) error {
	return withTodoSession(cmd, func(session *todoSession) error {
		if err := session.store.ReorderIDs(args); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reordered %d todo(s)\n", session.store.Len())
		return nil
	})
}

func runCounts(cmd *cobra.Command, args []string) error {
	return withTodoSession(cmd, func(session *todoSession) error {
		counts := session.store.Counts()
		if countsJSON {
			return encodeJSON(cmd.OutOrStdout(), counts)
		}
		fmt.Fprint(cmd.OutOrStdout(), formatCounts(counts))
		return nil
	})
}

func formatCounts(counts todo.Counts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Active:          %d\n", counts.Active)
	fmt.Fprintf(&b, "Completed:       %d\n", counts.Completed)
	fmt.Fprintf(&b, "Overdue:         %d\n", counts.Overdue)
	fmt.Fprintf(&b, "High priority:   %d\n", counts.HighPriority)
	fmt.Fprintf(&b, "Medium priority: %d\n", counts.MediumPriority)
	fmt.Fprintf(&b, "Low priority:    %d\n", counts.LowPriority)
	return b.String()
}

func runPurge(cmd *cobra.Command, args []string) error {
	if !purgeYes {
		return errors.New("purge deletes every todo in the scope; pass --yes to confirm")
	}
	return withTodoSession(cmd, func(session *todoSession) error {
		count := session.store.Len()
		session.store.Purge()
		fmt.Fprintf(cmd.OutOrStdout(), "Purged %d todo(s) from scope %s\n", count, session.config.Store.Scope)
		return nil
	})
}
