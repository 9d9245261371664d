/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/valpere/kospell/internal/config"
)

var version = "0.1.0"

var (
	cfgFile  string
	envFile  string
	verbose  bool
	settings *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "kospell",
	Short: "Korean spell checker and Korean/English translator",
	Long: `A CLI application that corrects Korean spelling with the Naver speller
and translates between Korean and English with DeepL.

The translation direction is detected automatically: text containing Hangul
is translated to English, text with Latin letters to Korean.

Use "kospell session" for an interactive session.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./kospell.yaml or $HOME/.kospell.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func initConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}

	v, err := config.New()
	if err != nil {
		return err
	}
	if err := config.ReadFile(v, cfgFile); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	settings = cfg

	setupLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	return nil
}

func setupLogger(w io.Writer, level string) {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "kospell",
	})

	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)

	log.SetDefault(logger)
}
