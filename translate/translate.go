// Package translate formats the cell, shape and render error messages of
// optable for the host locale.
//
// Messages are en-US Sprintf formats. Opcodes are always printed as
// hexadecimal, and row, column and cycle numbers are small enough that no
// locale groups their digits.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("optable: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage replaces the host locale with an explicit language.
// Sentinel errors are formatted at package init, and keep the host locale.
func SetLanguage(tag language.Tag) {
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
