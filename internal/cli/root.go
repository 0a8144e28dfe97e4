package cli

import (
	"os"

	"github.com/projetonickjumper-byte/fitapp/internal/config"
	"github.com/projetonickjumper-byte/fitapp/internal/storage"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "fitapp",
	Short:         "Track water intake, goals and workouts from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		noColor, _ := cmd.Flags().GetBool("no-color")
		colorEnabled = !noColor && isTerminal()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("profile", "", "profile name (default \"default\", env FITAPP_PROFILE)")
	rootCmd.PersistentFlags().String("home", "", "data directory (default ~/.fitapp, env FITAPP_HOME)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(waterCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and prints any error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = rootCmd.ErrOrStderr().Write([]byte(Error("error: "+err.Error()) + "\n"))
	}
	return err
}

// loadSettings resolves settings from the global flags, the environment and
// the config file.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config.Settings{}, err
	}
	workDir, _ := os.Getwd()

	profile, _ := cmd.Flags().GetString("profile")
	home, _ := cmd.Flags().GetString("home")
	noColor, _ := cmd.Flags().GetBool("no-color")

	s, err := config.Load(homeDir, workDir, config.Overrides{Home: home, Profile: profile, NoColor: noColor})
	if err != nil {
		return config.Settings{}, err
	}
	if s.NoColor {
		colorEnabled = false
	}
	return s, nil
}

// openStore returns the store of the active profile.
func openStore(cmd *cobra.Command) (*storage.Store, config.Settings, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, config.Settings{}, err
	}
	return storage.NewStore(s.ProfileDir()), s, nil
}

// Root returns the root command, used by the reference generator.
func Root() *cobra.Command {
	return rootCmd
}
