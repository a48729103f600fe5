package i18n

// The locale registry is closed: ParseLocale only accepts the base languages
// and region variants listed here. Base languages cover the two-letter
// ISO 639-1 set; region variants exist only for the languages that ship more
// than one written or regional form.

var baseLanguages = map[string]struct{}{
	"aa": {}, "ab": {}, "ae": {}, "af": {}, "ak": {}, "am": {}, "an": {},
	"ar": {}, "as": {}, "av": {}, "ay": {}, "az": {}, "ba": {}, "be": {},
	"bg": {}, "bh": {}, "bi": {}, "bm": {}, "bn": {}, "bo": {}, "br": {},
	"bs": {}, "ca": {}, "ce": {}, "ch": {}, "co": {}, "cr": {}, "cs": {},
	"cu": {}, "cv": {}, "cy": {}, "da": {}, "de": {}, "dv": {}, "dz": {},
	"ee": {}, "el": {}, "en": {}, "eo": {}, "es": {}, "et": {}, "eu": {},
	"fa": {}, "ff": {}, "fi": {}, "fj": {}, "fo": {}, "fr": {}, "fy": {},
	"ga": {}, "gd": {}, "gl": {}, "gn": {}, "gu": {}, "gv": {}, "ha": {},
	"he": {}, "hi": {}, "ho": {}, "hr": {}, "ht": {}, "hu": {}, "hy": {},
	"hz": {}, "ia": {}, "id": {}, "ie": {}, "ig": {}, "ii": {}, "ik": {},
	"io": {}, "is": {}, "it": {}, "iu": {}, "ja": {}, "jv": {}, "ka": {},
	"kg": {}, "ki": {}, "kj": {}, "kk": {}, "kl": {}, "km": {}, "kn": {},
	"ko": {}, "kr": {}, "ks": {}, "ku": {}, "kv": {}, "kw": {}, "ky": {},
	"la": {}, "lb": {}, "lg": {}, "li": {}, "ln": {}, "lo": {}, "lt": {},
	"lu": {}, "lv": {}, "mg": {}, "mh": {}, "mi": {}, "mk": {}, "ml": {},
	"mn": {}, "mr": {}, "ms": {}, "mt": {}, "my": {}, "na": {}, "nd": {},
	"ne": {}, "ng": {}, "nl": {}, "nn": {}, "no": {}, "nr": {}, "nv": {},
	"ny": {}, "oc": {}, "oj": {}, "om": {}, "or": {}, "os": {}, "pa": {},
	"pi": {}, "pl": {}, "ps": {}, "pt": {}, "qu": {}, "rm": {}, "rn": {},
	"ro": {}, "ru": {}, "rw": {}, "sa": {}, "sc": {}, "sd": {}, "se": {},
	"sg": {}, "si": {}, "sk": {}, "sl": {}, "sm": {}, "sn": {}, "so": {},
	"sq": {}, "sr": {}, "ss": {}, "st": {}, "su": {}, "sv": {}, "sw": {},
	"ta": {}, "te": {}, "tg": {}, "th": {}, "ti": {}, "tk": {}, "tl": {},
	"tn": {}, "to": {}, "tr": {}, "ts": {}, "tt": {}, "tw": {}, "ty": {},
	"ug": {}, "uk": {}, "ur": {}, "uz": {}, "ve": {}, "vi": {}, "wa": {},
	"wo": {}, "xh": {}, "yi": {}, "yo": {}, "za": {}, "zh": {}, "zu": {},
}

var localeRegions = map[string][]string{
	"ar": {"AE", "BH", "DZ", "EG", "IQ", "JO", "KW", "LB", "LY", "MA", "OM", "QA", "SA", "SY", "TN", "YE"},
	"de": {"AT", "CH", "LI", "LU"},
	"en": {"AU", "BZ", "CA", "GB", "IE", "JM", "NZ", "TT", "US", "ZA"},
	"es": {"AR", "BO", "CL", "CO", "CR", "DO", "EC", "GT", "HN", "MX", "NI", "PA", "PE", "PR", "PY", "SV", "UY", "VE"},
	"fr": {"BE", "CA", "CH", "FR", "LU"},
	"it": {"CH"},
	"nl": {"BE"},
	"pt": {"BR"},
	"ro": {"MD"},
	"ru": {"MD"},
	"sv": {"FI"},
	"zh": {"CN", "HK", "SG", "TW"},
}

func lookupLocale(lang, region string) (Locale, bool) {
	if _, ok := baseLanguages[lang]; !ok {
		return Locale{}, false
	}
	if region == "" {
		return Locale{lang: lang}, true
	}
	for _, candidate := range localeRegions[lang] {
		if candidate == region {
			return Locale{lang: lang, region: region}, true
		}
	}
	return Locale{}, false
}
