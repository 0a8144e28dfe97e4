package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// profileStore is the part of the store that can enumerate and wipe keys.
type profileStore interface {
	Keys() ([]string, error)
	Clear() error
}

var profileCmd = GroupCommand{
	Use:   "profile",
	Short: "Inspect or wipe the data stored for the active profile",
	Subcommands: []*cobra.Command{
		profileShowCmd,
		profileClearCmd,
	},
}.Build()

var profileShowCmd = LeafCommand{
	Use:   "show",
	Short: "List the keys stored for the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, settings, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runProfileShow(cmd, store, settings.Profile, settings.ProfileDir())
	},
}.Build()

var profileClearCmd = LeafCommand{
	Use:   "clear",
	Short: "Erase every value stored for the active profile",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, settings, err := openStore(cmd)
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")

		var confirm ConfirmFunc
		if yes {
			confirm = AlwaysYes()
		} else {
			confirm = NewPromptKit().Confirm
		}
		return runProfileClear(cmd, store, settings.Profile, confirm)
	},
}.Build()

func runProfileShow(cmd *cobra.Command, store profileStore, profile, dir string) error {
	keys, err := store.Keys()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Profile:"), Primary(profile))
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Data:"), Text(dir))
	if len(keys) == 0 {
		_, _ = fmt.Fprintln(w, Silent("nothing stored yet"))
		return nil
	}
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "  %s\n", Text(k))
	}
	return nil
}

func runProfileClear(cmd *cobra.Command, store profileStore, profile string, confirm ConfirmFunc) error {
	w := cmd.OutOrStdout()
	keys, err := store.Keys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		_, _ = fmt.Fprintln(w, Silent("nothing stored yet"))
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Erase %d stored values of profile %q?", len(keys), profile))
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, "cancelled")
		return nil
	}

	if err := store.Clear(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s %s %s\n", Text("profile"), Primary(profile), Error(fmt.Sprintf("cleared (%d values removed)", len(keys))))
	return nil
}
