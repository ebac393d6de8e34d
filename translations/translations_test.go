package translations

import (
	"testing"

	"github.com/murkland/desmume/desmume"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestPrinterUsesCatalog(t *testing.T) {
	assert.Equal(t, "Saved state to slot 3", message.NewPrinter(language.English).Sprintf("SAVED_SLOT", 3))
	assert.Equal(t, "スロット3にセーブしました", message.NewPrinter(language.Japanese).Sprintf("SAVED_SLOT", 3))
}

func TestMissingKeyNamesFallBackToEnglish(t *testing.T) {
	assert.Equal(t, "Select", message.NewPrinter(language.French).Sprintf("KEY_SELECT"))
	assert.Equal(t, "Links", message.NewPrinter(language.German).Sprintf("KEY_LEFT"))
}

func TestFirmwareLanguage(t *testing.T) {
	for _, tc := range []struct {
		tag  language.Tag
		want desmume.Language
	}{
		{language.Japanese, desmume.LanguageJapanese},
		{language.MustParse("en-GB"), desmume.LanguageEnglish},
		{language.MustParse("fr-CA"), desmume.LanguageFrench},
		{language.MustParse("es-419"), desmume.LanguageSpanish},
		{language.Korean, desmume.LanguageEnglish},
	} {
		t.Run(tc.tag.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, FirmwareLanguage(tc.tag, desmume.LanguageEnglish))
		})
	}
}
