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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valpere/kospell/internal/notice"
)

var (
	checkInput  string
	checkOutput string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Correct Korean spelling",
	Long: `Correct the spelling of a text file (or stdin) with the Naver speller.

Every non-blank line is checked on its own; blank lines and the line layout
are kept as they are. When the speller fails the original text is written
unchanged and the command exits with an error.

The Naver speller expects a passport key. Set speller.passport_key in the
config file or KOSPELL_SPELLER_PASSPORT_KEY in the environment; without it
requests are usually rejected with a ServiceError.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(checkInput, cmd.InOrStdin())
		if err != nil {
			return err
		}

		n := newNotifier()
		corrected, ok := newSpellerClient(n).Correct(cmd.Context(), text)

		if err := writeOutput(checkOutput, corrected, cmd.OutOrStdout()); err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("spell check did not complete")
		}

		notice.Done(n, "spell check complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "Input file to check (default stdin)")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Output file for the corrected text (default stdout)")
}
