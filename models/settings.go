package models

// Settings is an aggregate snapshot of all user preferences. Each field is
// read and written independently through the preference store; there is no
// cross-key transactionality.
type Settings struct {
	NotificationEnabled bool
	AutoSyncEnabled     bool
	ThemeMode           ThemeMode
	ColorTheme          ColorTheme
	LanguageCode        LanguageCode
	AIPersonality       AIPersonality
	FontFamily          FontFamily
	TextAlign           TextAlign
	OnboardedLoginTypes []string
}

// ThemeMode selects the UI color scheme.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// ThemeModeFromString decodes a stored value; unknown values resolve to
// ThemeSystem.
func ThemeModeFromString(value string) ThemeMode {
	switch ThemeMode(value) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return ThemeMode(value)
	}
	return ThemeSystem
}

// LanguageCode is one of the nine supported UI locales.
type LanguageCode string

const (
	LangKorean     LanguageCode = "ko"
	LangEnglish    LanguageCode = "en"
	LangJapanese   LanguageCode = "ja"
	LangChinese    LanguageCode = "zh"
	LangSpanish    LanguageCode = "es"
	LangItalian    LanguageCode = "it"
	LangFrench     LanguageCode = "fr"
	LangVietnamese LanguageCode = "vi"
	LangThai       LanguageCode = "th"
)

// AllLanguageCodes lists the supported locales in display order.
func AllLanguageCodes() []LanguageCode {
	return []LanguageCode{
		LangKorean, LangEnglish, LangJapanese, LangChinese, LangSpanish,
		LangItalian, LangFrench, LangVietnamese, LangThai,
	}
}

// LanguageCodeFromString decodes a stored value; unknown values resolve to
// LangKorean.
func LanguageCodeFromString(value string) LanguageCode {
	for _, code := range AllLanguageCodes() {
		if code == LanguageCode(value) {
			return code
		}
	}
	return LangKorean
}

// AIPersonality selects the tone of AI-generated responses.
type AIPersonality string

const (
	PersonalityRational      AIPersonality = "rational"
	PersonalityBalanced      AIPersonality = "balanced"
	PersonalityCompassionate AIPersonality = "compassionate"
)

// AIPersonalityFromString decodes a stored value; unknown values resolve to
// PersonalityBalanced.
func AIPersonalityFromString(value string) AIPersonality {
	switch AIPersonality(value) {
	case PersonalityRational, PersonalityBalanced, PersonalityCompassionate:
		return AIPersonality(value)
	}
	return PersonalityBalanced
}

// ColorTheme is the accent color of the UI.
type ColorTheme string

const (
	ColorRed        ColorTheme = "red"
	ColorPink       ColorTheme = "pink"
	ColorPurple     ColorTheme = "purple"
	ColorDeepPurple ColorTheme = "deepPurple"
	ColorIndigo     ColorTheme = "indigo"
	ColorBlue       ColorTheme = "blue"
	ColorLightBlue  ColorTheme = "lightBlue"
	ColorCyan       ColorTheme = "cyan"
	ColorTeal       ColorTheme = "teal"
	ColorGreen      ColorTheme = "green"
	ColorLightGreen ColorTheme = "lightGreen"
	ColorLime       ColorTheme = "lime"
	ColorYellow     ColorTheme = "yellow"
	ColorAmber      ColorTheme = "amber"
	ColorOrange     ColorTheme = "orange"
	ColorDeepOrange ColorTheme = "deepOrange"
	ColorBrown      ColorTheme = "brown"
	ColorGrey       ColorTheme = "grey"
	ColorBlueGrey   ColorTheme = "blueGrey"
)

// AllColorThemes lists the available accent colors.
func AllColorThemes() []ColorTheme {
	return []ColorTheme{
		ColorRed, ColorPink, ColorPurple, ColorDeepPurple, ColorIndigo,
		ColorBlue, ColorLightBlue, ColorCyan, ColorTeal, ColorGreen,
		ColorLightGreen, ColorLime, ColorYellow, ColorAmber, ColorOrange,
		ColorDeepOrange, ColorBrown, ColorGrey, ColorBlueGrey,
	}
}

// ColorThemeFromString decodes a stored value; unknown values resolve to
// ColorBlue.
func ColorThemeFromString(value string) ColorTheme {
	for _, c := range AllColorThemes() {
		if c == ColorTheme(value) {
			return c
		}
	}
	return ColorBlue
}

// FontFamily selects the journal text font.
type FontFamily string

const (
	FontPretendard     FontFamily = "pretendard"
	FontLeeSeoyun      FontFamily = "leeSeoyun"
	FontOrbitOfTheMoon FontFamily = "orbitOfTheMoon"
	FontRestart        FontFamily = "restart"
	FontOvercome       FontFamily = "overcome"
	FontSystem         FontFamily = "system"
)

// AllFontFamilies lists the available fonts.
func AllFontFamilies() []FontFamily {
	return []FontFamily{
		FontPretendard, FontLeeSeoyun, FontOrbitOfTheMoon,
		FontRestart, FontOvercome, FontSystem,
	}
}

// FontFamilyFromString decodes a stored value; unknown values resolve to
// FontPretendard.
func FontFamilyFromString(value string) FontFamily {
	for _, f := range AllFontFamilies() {
		if f == FontFamily(value) {
			return f
		}
	}
	return FontPretendard
}

// TextAlign is the journal text alignment.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// Next cycles left -> center -> right -> left.
func (a TextAlign) Next() TextAlign {
	switch a {
	case AlignLeft:
		return AlignCenter
	case AlignCenter:
		return AlignRight
	default:
		return AlignLeft
	}
}

// TextAlignFromString decodes a stored value; unknown values resolve to
// AlignLeft.
func TextAlignFromString(value string) TextAlign {
	switch TextAlign(value) {
	case AlignLeft, AlignCenter, AlignRight:
		return TextAlign(value)
	}
	return AlignLeft
}

// LoginType identifies an authentication method a user has onboarded with.
type LoginType string

const (
	LoginGoogle    LoginType = "google"
	LoginKakao     LoginType = "kakao"
	LoginAnonymous LoginType = "anonymous"
)

// LoginTypeFromString decodes a stored value; unknown values resolve to
// LoginAnonymous.
func LoginTypeFromString(value string) LoginType {
	switch LoginType(value) {
	case LoginGoogle, LoginKakao, LoginAnonymous:
		return LoginType(value)
	}
	return LoginAnonymous
}
