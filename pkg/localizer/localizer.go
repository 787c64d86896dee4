package localizer

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/vmindtech/endor/locale"
)

func InitLocalizer(defaultLang language.Tag, languages []language.Tag) *i18n.Bundle {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, l := range languages {
		if _, err := bundle.LoadMessageFileFS(locale.FS, fmt.Sprintf("active.%s.toml", l.String())); err != nil {
			panic(err)
		}
	}

	return bundle
}
