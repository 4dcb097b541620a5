package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

// EnvLang overrides the detected language when set.
const EnvLang = "COUNTDOWN_LANG"

var lang = "en"

var translations = map[string]map[string]string{
	"Countdown Timer": {
		"pt": "Contagem Regressiva",
		"es": "Cuenta Regresiva",
		"ru": "Обратный отсчёт",
	},
	"Enter duration in seconds": {
		"pt": "Duração em segundos",
		"es": "Duración en segundos",
		"ru": "Длительность в секундах",
	},
	"Set": {
		"pt": "Definir",
		"es": "Fijar",
		"ru": "Задать",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Resume": {
		"pt": "Continuar",
		"es": "Reanudar",
		"ru": "Продолжить",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
}

// Setup picks the UI language. The environment variable wins, then the
// configured value, then the system locale.
func Setup(configured string) {
	if forcedLang := strings.TrimSpace(os.Getenv(EnvLang)); forcedLang != "" {
		log.Printf("%s is set to: '%s'", EnvLang, forcedLang)
		lang = normalize(forcedLang)
		return
	}

	if configured = strings.TrimSpace(configured); configured != "" {
		log.Printf("Language configured as: '%s'", configured)
		lang = normalize(configured)
		return
	}

	log.Printf("%s is not set, detecting from system locale.", EnvLang)
	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}

	if len(userLocales) > 0 {
		log.Printf("Detected user locale: %s", userLocales[0])
		lang = normalize(userLocales[0])
	} else {
		log.Println("No user locale detected, defaulting to english")
		lang = "en"
	}
	log.Printf("Language set to: %s", lang)
}

func normalize(tag string) string {
	tag = strings.ToLower(tag)
	switch {
	case strings.HasPrefix(tag, "pt"):
		return "pt"
	case strings.HasPrefix(tag, "es"):
		return "es"
	case strings.HasPrefix(tag, "ru"):
		return "ru"
	}
	return "en"
}

func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}
