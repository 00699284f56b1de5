// Package l10n translates user-facing messages of the funixtools commands.
package l10n

import (
	"errors"
	"fmt"

	"github.com/snapcore/go-gettext"
)

// Domain is the gettext text domain of the message catalogs.
const Domain = "funixtools"

var locale gettext.Catalog

func init() {
	domain := gettext.TextDomain{Name: Domain}
	locale = domain.UserLocale()
}

// T localizes str and formats it with vars, if any.
func T(str string, vars ...any) string {
	translation := locale.Gettext(str)
	if len(vars) > 0 {
		translation = fmt.Sprintf(translation, vars...)
	}
	return translation
}

// Errorf returns an error with a localized message.
func Errorf(format string, vars ...any) error {
	return errors.New(T(format, vars...))
}
