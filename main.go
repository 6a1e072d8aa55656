package main

import (
	"fmt"
	"os"

	"github.com/teacup-lang/teacup/object"
	"github.com/teacup-lang/teacup/repl"
	"github.com/teacup-lang/teacup/tc"
	"github.com/teacup-lang/teacup/text"
)

// With a filename as argument the binary runs the script and prints its
// value; with none it starts the REPL.
func main() {
	sv := tc.NewService()
	if len(os.Args) > 1 {
		runFile(sv, os.Args[1])
		return
	}
	fmt.Print(text.Logo())
	repl.Start(sv, os.Stdout)
}

func runFile(sv *tc.Service, filepath string) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		fmt.Println(text.ERROR + err.Error())
		os.Exit(1)
	}
	sv.SetEmit(func(obj object.Object) {
		fmt.Println(obj.Inspect(object.ViewStdOut))
	})
	result := sv.Evaluate(filepath, string(dat))
	if result.Type() == object.ERROR_OBJ {
		fmt.Println(result.Inspect(object.ViewStdOut))
		os.Exit(1)
	}
	if result != object.NULL {
		fmt.Println(result.Inspect(object.ViewTeacupLiteral))
	}
}
