package translations

import (
	"github.com/murkland/desmume/desmume"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type entry struct {
	key string
	msg string
}

var catalog = map[language.Tag][]entry{
	language.English: {
		{"SELECT_ROM", "Select a ROM to start:"},
		{"NO_ROMS", "No ROMs found in %s."},
		{"PAUSED", "Paused"},
		{"RESUMED", "Resumed"},
		{"RESET", "Reset"},
		{"MUTED", "Muted"},
		{"UNMUTED", "Unmuted"},
		{"SCREENSHOT_SAVED", "Screenshot saved to %s"},
		{"SAVED_SLOT", "Saved state to slot %d"},
		{"LOADED_SLOT", "Loaded slot %d (%s)"},
		{"EMPTY_SLOT", "Slot %d is empty"},
		{"KEY_A", "A"},
		{"KEY_B", "B"},
		{"KEY_SELECT", "Select"},
		{"KEY_START", "Start"},
		{"KEY_RIGHT", "Right"},
		{"KEY_LEFT", "Left"},
		{"KEY_UP", "Up"},
		{"KEY_DOWN", "Down"},
		{"KEY_R", "R"},
		{"KEY_L", "L"},
		{"KEY_X", "X"},
		{"KEY_Y", "Y"},
		{"KEY_DEBUG", "Debug"},
		{"KEY_BOOST", "Boost"},
		{"KEY_LID", "Lid"},
	},
	language.Japanese: {
		{"SELECT_ROM", "起動するROMを選択してください："},
		{"NO_ROMS", "%sにROMが見つかりません。"},
		{"PAUSED", "一時停止"},
		{"RESUMED", "再開"},
		{"RESET", "リセット"},
		{"MUTED", "ミュート"},
		{"UNMUTED", "ミュート解除"},
		{"SCREENSHOT_SAVED", "スクリーンショットを%sに保存しました"},
		{"SAVED_SLOT", "スロット%dにセーブしました"},
		{"LOADED_SLOT", "スロット%dをロードしました（%s）"},
		{"EMPTY_SLOT", "スロット%dは空です"},
		{"KEY_SELECT", "セレクト"},
		{"KEY_START", "スタート"},
		{"KEY_RIGHT", "右"},
		{"KEY_LEFT", "左"},
		{"KEY_UP", "上"},
		{"KEY_DOWN", "下"},
		{"KEY_DEBUG", "デバッグ"},
		{"KEY_BOOST", "ブースト"},
		{"KEY_LID", "フタ"},
	},
	language.French: {
		{"SELECT_ROM", "Choisissez une ROM à lancer :"},
		{"NO_ROMS", "Aucune ROM trouvée dans %s."},
		{"PAUSED", "En pause"},
		{"RESUMED", "Reprise"},
		{"RESET", "Réinitialisé"},
		{"MUTED", "Son coupé"},
		{"UNMUTED", "Son rétabli"},
		{"SCREENSHOT_SAVED", "Capture enregistrée dans %s"},
		{"SAVED_SLOT", "État sauvegardé dans l'emplacement %d"},
		{"LOADED_SLOT", "Emplacement %d chargé (%s)"},
		{"EMPTY_SLOT", "L'emplacement %d est vide"},
		{"KEY_RIGHT", "Droite"},
		{"KEY_LEFT", "Gauche"},
		{"KEY_UP", "Haut"},
		{"KEY_DOWN", "Bas"},
		{"KEY_LID", "Couvercle"},
	},
	language.German: {
		{"SELECT_ROM", "ROM zum Starten auswählen:"},
		{"NO_ROMS", "Keine ROMs in %s gefunden."},
		{"PAUSED", "Pausiert"},
		{"RESUMED", "Fortgesetzt"},
		{"RESET", "Zurückgesetzt"},
		{"MUTED", "Stumm"},
		{"UNMUTED", "Ton an"},
		{"SCREENSHOT_SAVED", "Bildschirmfoto unter %s gespeichert"},
		{"SAVED_SLOT", "Zustand in Platz %d gespeichert"},
		{"LOADED_SLOT", "Platz %d geladen (%s)"},
		{"EMPTY_SLOT", "Platz %d ist leer"},
		{"KEY_RIGHT", "Rechts"},
		{"KEY_LEFT", "Links"},
		{"KEY_UP", "Oben"},
		{"KEY_DOWN", "Unten"},
		{"KEY_LID", "Deckel"},
	},
}

func init() {
	for tag, entries := range catalog {
		for _, e := range entries {
			if err := message.SetString(tag, e.key, e.msg); err != nil {
				panic(err)
			}
		}
	}

	// Key names left out of a translation fall back to English.
	for tag := range catalog {
		if tag == language.English {
			continue
		}
		for _, e := range catalog[language.English] {
			if !has(tag, e.key) {
				if err := message.SetString(tag, e.key, e.msg); err != nil {
					panic(err)
				}
			}
		}
	}
}

func has(tag language.Tag, key string) bool {
	for _, e := range catalog[tag] {
		if e.key == key {
			return true
		}
	}
	return false
}

var firmwareLanguages = map[language.Base]desmume.Language{}

func init() {
	for tag, lang := range map[language.Tag]desmume.Language{
		language.Japanese: desmume.LanguageJapanese,
		language.English:  desmume.LanguageEnglish,
		language.French:   desmume.LanguageFrench,
		language.German:   desmume.LanguageGerman,
		language.Italian:  desmume.LanguageItalian,
		language.Spanish:  desmume.LanguageSpanish,
	} {
		base, _ := tag.Base()
		firmwareLanguages[base] = lang
	}
}

// FirmwareLanguage picks the DS firmware language closest to tag, or
// fallback if the DS has none.
func FirmwareLanguage(tag language.Tag, fallback desmume.Language) desmume.Language {
	base, _ := tag.Base()
	if lang, ok := firmwareLanguages[base]; ok {
		return lang
	}
	return fallback
}
