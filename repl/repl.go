package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/lmorg/readline"

	"github.com/teacup-lang/teacup/object"
	"github.com/teacup-lang/teacup/tc"
	"github.com/teacup-lang/teacup/text"
)

// Start runs the read-eval-print loop over a service until the user says
// "quit" or closes the input. After an error, "why" asks for the long
// explanation; "peek <expr>" shows each pipeline stage's view of an
// expression instead of evaluating it.
func Start(sv *tc.Service, out io.Writer) {
	rline := readline.NewInstance()
	rline.SetPrompt(text.PROMPT)
	sv.SetEmit(func(obj object.Object) {
		fmt.Fprintln(out, obj.Inspect(object.ViewStdOut))
	})
	var lastError *object.Error
	for {
		line, err := rline.Readline()
		if err != nil {
			if err != io.EOF {
				fmt.Fprintln(out, text.ERROR+err.Error())
			}
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}
		if line == "why" {
			if lastError == nil {
				fmt.Fprintln(out, "There is no error to explain.")
			} else {
				fmt.Fprintln(out, object.ExplainErr(lastError))
			}
			continue
		}
		if rest, ok := strings.CutPrefix(line, "peek "); ok {
			sv.Dump("REPL input", rest)
			continue
		}
		result := sv.Evaluate("REPL input", line)
		if e, ok := result.(*object.Error); ok {
			lastError = e
		}
		if result == object.NULL {
			continue
		}
		fmt.Fprintln(out, result.Inspect(object.ViewTeacupLiteral))
	}
}
