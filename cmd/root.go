package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "Eternal Quest goal tracker",
	Long: `Quest tracks simple, eternal and checklist goals, scores every recorded
event and levels you up along the way.

Run without a subcommand to start the interactive menu.`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .quest.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "save file (default quest.txt)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")

	_ = viper.BindPFlag("save_file", rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".quest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("QUEST")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
