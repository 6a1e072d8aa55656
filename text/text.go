package text

import (
	"strconv"
	"strings"

	"github.com/teacup-lang/teacup/token"
)

const (
	VERSION = "0.1"
	BULLET  = " ▪ "
	PROMPT  = "⊂ "
)

func Emph(s string) string {
	return CYAN + "'" + s + "'" + RESET
}

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Yellow(s string) string {
	return YELLOW + s + RESET
}

func Cyan(s string) string {
	return CYAN + s + RESET
}

func Logo() string {
	var padding string
	if len(VERSION)%2 == 0 {
		padding = ","
	}
	titleText := " Teacup" + padding + " version " + VERSION + " "
	cup := Yellow("☕")
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	logoString := "\n" +
		leftMargin + "╔" + bar + cup + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + cup + bar + "╝\n\n"
	return logoString
}

// PosDescription says where in the source a token came from, by offset.
func PosDescription(tok token.Token) string {
	result := strconv.Itoa(tok.Start)
	if tok.Start != tok.End {
		result = result + "-" + strconv.Itoa(tok.End)
	}
	result = " at " + Yellow(result)
	prettySource := tok.Source
	if prettySource == "" {
		return result
	}
	if prettySource != "REPL input" {
		prettySource = Emph(prettySource)
	}
	return result + " of " + prettySource
}

var (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	BLUE   = "\033[34m"
	PURPLE = "\033[35m"
	CYAN   = "\033[36m"
	GRAY   = "\033[37m"
	WHITE  = "\033[97m"
	ERROR  = Red("error") + ": "
	OK     = Green("ok")
)
