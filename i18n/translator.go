// Package i18n holds the message catalogue for validation issues.
package i18n

import "strings"

// Message IDs understood by the built-in catalogue.
const (
	MsgUnknownKey             = "unknown_key"
	MsgRequiredKey            = "required_key"
	MsgUUIDNotDefined         = "uuid_not_defined"
	MsgInvalidIdentifier      = "invalid_identifier"
	MsgArtefactNameMissing    = "artefact_name_missing"
	MsgFormatURLMissing       = "format_url_missing"
	MsgFormatSizeInvalid      = "format_size_invalid"
	MsgProductNameMissing     = "product_name_missing"
	MsgVersionMissing         = "version_missing"
	MsgVersionInvalid         = "version_invalid"
	MsgFormatTagMissing       = "tco_format_missing"
	MsgFormatTagMismatch      = "tco_format_mismatch"
	MsgSpecVersionMissing     = "spec_version_missing"
	MsgSpecVersionUnsupported = "spec_version_unsupported"
	MsgFormatsWithoutArtefact = "formats_without_artefact"
	MsgNotAMapping            = "not_a_mapping"
	MsgTooDeep                = "too_deep"
	MsgParseError             = "parse_error"
)

// Translator retrieves localized messages for message IDs.
// data provides optional values substituted for {name} placeholders (for
// example, "key" or "entity").
type Translator interface {
	Message(id string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var catalogue = map[string]map[string]string{
	"en": {
		MsgUnknownKey:             "not a known key: {key}",
		MsgRequiredKey:            "{entity}: key {key} missing",
		MsgUUIDNotDefined:         "{entity}: uuid not defined",
		MsgInvalidIdentifier:      "{entity}: malformed uuid {value}",
		MsgArtefactNameMissing:    "artefact name is missing",
		MsgFormatURLMissing:       "format lacks URL",
		MsgFormatSizeInvalid:      "format size is not an integer",
		MsgProductNameMissing:     "collection has no product name",
		MsgVersionMissing:         "collection has no version",
		MsgVersionInvalid:         "collection version is not an integer",
		MsgFormatTagMissing:       "no tcoFormat",
		MsgFormatTagMismatch:      "tcoFormat: not a TEA collection",
		MsgSpecVersionMissing:     "no specVersion",
		MsgSpecVersionUnsupported: "specVersion {got} not supported",
		MsgFormatsWithoutArtefact: "formats list outside of an artefact",
		MsgNotAMapping:            "{entity} is not a mapping",
		MsgTooDeep:                "nesting deeper than {max} levels",
		MsgParseError:             "failed parsing document: {cause}",
	},
	"ja": {
		MsgUnknownKey:             "未知のキーです: {key}",
		MsgRequiredKey:            "{entity}: 必須キー {key} がありません",
		MsgUUIDNotDefined:         "{entity}: uuid が定義されていません",
		MsgInvalidIdentifier:      "{entity}: uuid の形式が不正です {value}",
		MsgArtefactNameMissing:    "アーティファクト名がありません",
		MsgFormatURLMissing:       "フォーマットに URL がありません",
		MsgFormatSizeInvalid:      "フォーマットの size が整数ではありません",
		MsgProductNameMissing:     "コレクションに製品名がありません",
		MsgVersionMissing:         "コレクションに version がありません",
		MsgVersionInvalid:         "コレクションの version が整数ではありません",
		MsgFormatTagMissing:       "tcoFormat がありません",
		MsgFormatTagMismatch:      "tcoFormat: TEA コレクションではありません",
		MsgSpecVersionMissing:     "specVersion がありません",
		MsgSpecVersionUnsupported: "specVersion {got} はサポートされていません",
		MsgFormatsWithoutArtefact: "アーティファクト外に formats があります",
		MsgNotAMapping:            "{entity} がマッピングではありません",
		MsgTooDeep:                "ネストが {max} 階層を超えています",
		MsgParseError:             "解析エラー: {cause}",
	},
}

func (t dictTranslator) Message(id string, data map[string]string) string {
	msg, ok := catalogue[t.lang][id]
	if !ok {
		if msg, ok = catalogue["en"][id]; !ok {
			return id
		}
	}
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given ID using the current Translator.
func T(id string, data map[string]string) string { return currentTranslator.Message(id, data) }
