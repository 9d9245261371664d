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
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/valpere/kospell/internal/notice"
	"github.com/valpere/kospell/internal/session"
)

const sessionHelp = `Type or paste text; every line is added to the current input.
Commands:
  /check      correct the spelling of the current input
  /translate  translate the corrected text, or the input if nothing was corrected
  /show       print the current input and results
  /clear      clear the current input
  /reset      clear the input and forget all results
  /help       show this help
  /quit       leave the session
Start a line with // to enter text that begins with a slash.`

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive spell check and translation session",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec := notice.NewRecorder(newNotifier())
		sess := session.New(newSpellerClient(rec), newTranslatorClient(rec), rec)

		r := newREPL(sess, rec, cmd.InOrStdin(), cmd.OutOrStdout())
		return r.run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

type repl struct {
	sess    *session.Session
	notices *notice.Recorder
	in      *bufio.Scanner
	out     io.Writer
	input   []string
}

func newREPL(sess *session.Session, notices *notice.Recorder, in io.Reader, out io.Writer) *repl {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &repl{sess: sess, notices: notices, in: sc, out: out}
}

func (r *repl) run(ctx context.Context) error {
	fmt.Fprintln(r.out, sessionHelp)

	for {
		fmt.Fprint(r.out, "> ")
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}

		line := strings.TrimRight(r.in.Text(), "\r")
		if strings.HasPrefix(line, "//") {
			r.input = append(r.input, norm.NFC.String(line[1:]))
			continue
		}
		if !strings.HasPrefix(line, "/") {
			r.input = append(r.input, norm.NFC.String(line))
			continue
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "/check":
			r.notices.Reset()
			r.sess.CheckSpelling(ctx, r.text())
			r.render()
			r.renderNotice()
		case "/translate":
			r.notices.Reset()
			r.sess.Translate(ctx, r.text())
			r.render()
			r.renderNotice()
		case "/show":
			fmt.Fprintf(r.out, "Input:\n%s\n", r.text())
			r.render()
		case "/clear":
			r.input = nil
		case "/reset":
			r.input = nil
			r.sess.Reset()
		case "/help":
			fmt.Fprintln(r.out, sessionHelp)
		case "/quit", "/exit":
			return nil
		default:
			fmt.Fprintf(r.out, "unknown command %q, type /help\n", line)
		}
	}
}

func (r *repl) text() string {
	return strings.Join(r.input, "\n")
}

// renderNotice prints the last warning or error raised by the previous action.
func (r *repl) renderNotice() {
	n, ok := r.notices.Last()
	if !ok || n.Level == notice.Success {
		return
	}
	fmt.Fprintf(r.out, "[%s] %s\n", n.Level, n.Message)
}

func (r *repl) render() {
	if corrected, ok := r.sess.Corrected(); ok {
		fmt.Fprintf(r.out, "Corrected:\n%s\n", corrected)
	}
	if translated, ok := r.sess.Translated(); ok {
		fmt.Fprintf(r.out, "Translation:\n%s\n", translated)
	}
}
