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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/unicode/norm"

	"github.com/valpere/kospell/internal/notice"
	"github.com/valpere/kospell/internal/speller"
	"github.com/valpere/kospell/internal/translator"
)

func newNotifier() notice.Notifier {
	return notice.NewLogNotifier(log.Default())
}

func newSpellerClient(n notice.Notifier) *speller.Client {
	if settings.Speller.PassportKey == "" {
		log.Warn("speller.passport_key is not set; the Naver speller usually rejects requests without it")
	}
	svc := speller.NewNaverService(settings.Speller.URL, settings.Speller.PassportKey, settings.HTTP.Timeout)
	return speller.NewClient(svc, n)
}

func newDeepLService() *translator.DeepLService {
	return translator.NewDeepLService(settings.DeepL)
}

func newTranslatorClient(n notice.Notifier) *translator.Client {
	return translator.NewClient(newDeepLService(), n)
}

// readInput reads a file, or stdin when path is empty or "-", and returns it
// NFC-normalized so decomposed Hangul jamo become syllables.
func readInput(path string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return norm.NFC.String(string(data)), nil
}

// writeOutput writes text to path, or to stdout when path is empty.
func writeOutput(path, text string, stdout io.Writer) error {
	if path == "" || path == "-" {
		if strings.HasSuffix(text, "\n") {
			_, err := fmt.Fprint(stdout, text)
			return err
		}
		_, err := fmt.Fprintln(stdout, text)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
