package cli

import (
	"fmt"
	"time"

	"github.com/projetonickjumper-byte/fitapp/internal/auth"
	"github.com/spf13/cobra"
)

var credentialFlags = []StringFlag{
	{Name: "email", Usage: "account email (prompted if omitted)"},
	{Name: "password", Usage: "account password (prompted if omitted)"},
}

var loginCmd = LeafCommand{
	Use:      "login",
	Short:    "Sign in with the demo account",
	StrFlags: credentialFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		return runLogin(cmd, store, email, password, NewPromptKit(), time.Now)
	},
}.Build()

var registerCmd = LeafCommand{
	Use:   "register",
	Short: "Create an account on this profile",
	StrFlags: append([]StringFlag{
		{Name: "name", Usage: "display name (prompted if omitted)"},
	}, credentialFlags...),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		return runRegister(cmd, store, name, email, password, NewPromptKit(), time.Now)
	},
}.Build()

var logoutCmd = LeafCommand{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runLogout(cmd, store)
	},
}.Build()

var whoamiCmd = LeafCommand{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runWhoami(cmd, store)
	},
}.Build()

var adminCmd = GroupCommand{
	Use:   "admin",
	Short: "Admin panel session",
	Subcommands: []*cobra.Command{
		adminLoginCmd,
		adminLogoutCmd,
		adminWhoamiCmd,
	},
}.Build()

var adminLoginCmd = LeafCommand{
	Use:      "login",
	Short:    "Sign in to the admin panel",
	StrFlags: credentialFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		return runAdminLogin(cmd, store, email, password, NewPromptKit())
	},
}.Build()

var adminLogoutCmd = LeafCommand{
	Use:   "logout",
	Short: "Sign out of the admin panel",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		if err := auth.NewService(store, nil).AdminLogout(); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Text("signed out of admin"))
		return nil
	},
}.Build()

var adminWhoamiCmd = LeafCommand{
	Use:   "whoami",
	Short: "Show the admin session",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		return runAdminWhoami(cmd, store)
	},
}.Build()

// askMissing prompts for value when it was not given as a flag.
func askMissing(value string, prompt PromptFunc, title string) (string, error) {
	if value != "" {
		return value, nil
	}
	return prompt(title)
}

func runLogin(cmd *cobra.Command, store auth.Storage, email, password string, pk PromptKit, nowFn func() time.Time) error {
	email, err := askMissing(email, pk.Prompt, "Email")
	if err != nil {
		return err
	}
	password, err = askMissing(password, pk.Password, "Senha")
	if err != nil {
		return err
	}

	u, err := auth.NewService(store, nowFn).Login(email, password)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text("welcome back,"), Primary(u.Name))
	return nil
}

func runRegister(cmd *cobra.Command, store auth.Storage, name, email, password string, pk PromptKit, nowFn func() time.Time) error {
	name, err := askMissing(name, pk.Prompt, "Nome")
	if err != nil {
		return err
	}
	email, err = askMissing(email, pk.Prompt, "Email")
	if err != nil {
		return err
	}
	password, err = askMissing(password, pk.Password, "Senha")
	if err != nil {
		return err
	}

	u, err := auth.NewService(store, nowFn).Register(name, email, password)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", Text("account created for"), Primary(u.Name), Silent("<"+u.Email+">"))
	return nil
}

func runLogout(cmd *cobra.Command, store auth.Storage) error {
	if err := auth.NewService(store, nil).Logout(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Text("signed out"))
	return nil
}

func runWhoami(cmd *cobra.Command, store auth.Storage) error {
	w := cmd.OutOrStdout()
	u, ok, err := auth.NewService(store, nil).CurrentUser()
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, Silent("not signed in"))
		return nil
	}

	_, _ = fmt.Fprintf(w, "%s        %s\n", Silent("Name:"), Primary(u.Name))
	_, _ = fmt.Fprintf(w, "%s       %s\n", Silent("Email:"), Text(u.Email))
	_, _ = fmt.Fprintf(w, "%s       %s\n", Silent("Level:"), Text(fmt.Sprintf("%d (%d XP)", u.Level, u.XP)))
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Member since:"), Text(u.MemberSince.Format("2006-01-02")))
	return nil
}

func runAdminLogin(cmd *cobra.Command, store auth.Storage, email, password string, pk PromptKit) error {
	email, err := askMissing(email, pk.Prompt, "Email")
	if err != nil {
		return err
	}
	password, err = askMissing(password, pk.Password, "Senha")
	if err != nil {
		return err
	}

	a, err := auth.NewService(store, nil).AdminLogin(email, password)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Text("admin session started for"), Primary(a.Email))
	return nil
}

func runAdminWhoami(cmd *cobra.Command, store auth.Storage) error {
	w := cmd.OutOrStdout()
	a, ok, err := auth.NewService(store, nil).CurrentAdmin()
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, Silent("no admin session"))
		return nil
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Primary(a.Email), Silent("("+a.Role+")"))
	return nil
}
