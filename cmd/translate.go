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
	inputFile  string
	outputFile string
	spellFirst bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate between Korean and English",
	Long: `Translate a text file (or stdin) with DeepL.

Text containing any Hangul syllable is translated from Korean to English.
Otherwise text containing Latin letters is translated from English to Korean.
Anything else is rejected as an unsupported language.

  --check       Correct the spelling first and translate the corrected text`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile != "" && inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		text, err := readInput(inputFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		n := newNotifier()
		if spellFirst {
			if corrected, ok := newSpellerClient(n).Correct(cmd.Context(), text); ok {
				text = corrected
			}
		}

		translated, ok := newTranslatorClient(n).Translate(cmd.Context(), text)
		if !ok {
			return fmt.Errorf("translation did not complete")
		}

		if err := writeOutput(outputFile, translated, cmd.OutOrStdout()); err != nil {
			return err
		}
		notice.Done(n, "translation complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate (default stdin)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for the translation (default stdout)")
	translateCmd.Flags().BoolVar(&spellFirst, "check", false, "Correct spelling before translating")
}
