// Package commands implements the framefold CLI: breakpoint registry
// management and static CSS export around the shared session store.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/framefold/responsive"
	"github.com/framefold/responsive/storage"
)

var rootCmd = &cobra.Command{
	Use:   "framefold",
	Short: "Responsive breakpoint tools for the framefold editor",
	Long: "Framefold manages the responsive breakpoint registry shared with the canvas\n" +
		"editor and exports per-breakpoint overrides as CSS media queries.",
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .framefold.yaml)")
	rootCmd.PersistentFlags().String("storage-dir", "", "directory holding the session record")
	rootCmd.PersistentFlags().String("namespace", "", "storage namespace (default \"session\")")
	rootCmd.PersistentFlags().String("backend", "", "storage backend: file or sqlite (default \"file\")")

	_ = viper.BindPFlag("storage_dir", rootCmd.PersistentFlags().Lookup("storage-dir"))
	_ = viper.BindPFlag("namespace", rootCmd.PersistentFlags().Lookup("namespace"))
	_ = viper.BindPFlag("backend", rootCmd.PersistentFlags().Lookup("backend"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".framefold")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("FRAMEFOLD")
	viper.AutomaticEnv()

	viper.SetDefault("namespace", "session")
	viper.SetDefault("backend", "file")

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// openSession builds the configured store and loads the session through it.
// The returned closer is a no-op for the file backend.
func openSession() (*responsive.Session, func() error, error) {
	dir := viper.GetString("storage_dir")
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve storage dir: %w", err)
		}
		dir = filepath.Join(base, "framefold")
	}
	ns := viper.GetString("namespace")

	var (
		store  storage.Store
		closer = func() error { return nil }
	)
	switch backend := viper.GetString("backend"); backend {
	case "file":
		store = storage.NewFileStore(dir, ns)
	case "sqlite":
		db, err := storage.OpenSQLiteStore(filepath.Join(dir, "framefold.db"), ns)
		if err != nil {
			return nil, nil, err
		}
		store = db
		closer = db.Close
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q (want file or sqlite)", backend)
	}

	sess, err := responsive.NewSession(store)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return sess, closer, nil
}
