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
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show DeepL character usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newDeepLService()
		if err := svc.IsAvailable(cmd.Context()); err != nil {
			return fmt.Errorf("%w (set deepl.api_key or DEEPL_API_KEY)", err)
		}

		u, err := svc.Usage(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get usage: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Characters used:      %d\n", u.CharacterCount)
		fmt.Fprintf(out, "Character limit:      %d\n", u.CharacterLimit)
		fmt.Fprintf(out, "Characters remaining: %d\n", u.Remaining())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
