package protodecl

import "sort"

// KeywordClass groups the reserved words of the language.
type KeywordClass uint8

const (
	// KeywordStructural covers declarations: enum, packet, protocol,
	// message and field.
	KeywordStructural KeywordClass = iota + 1
	// KeywordScalar covers fixed-width booleans, integers and floats.
	KeywordScalar
	// KeywordEncoding covers strings, byte arrays and layout helpers.
	KeywordEncoding
)

func (c KeywordClass) String() string {
	switch c {
	case KeywordStructural:
		return "structural"
	case KeywordScalar:
		return "scalar"
	case KeywordEncoding:
		return "encoding"
	default:
		return "unknown"
	}
}

var keywords = map[string]KeywordClass{
	"enum":     KeywordStructural,
	"packet":   KeywordStructural,
	"protocol": KeywordStructural,
	"message":  KeywordStructural,
	"field":    KeywordStructural,

	"bool": KeywordScalar,
	"u8":   KeywordScalar,
	"u16":  KeywordScalar,
	"u32":  KeywordScalar,
	"u64":  KeywordScalar,
	"u128": KeywordScalar,
	"i8":   KeywordScalar,
	"i16":  KeywordScalar,
	"i32":  KeywordScalar,
	"i64":  KeywordScalar,
	"i128": KeywordScalar,
	"f32":  KeywordScalar,
	"f64":  KeywordScalar,

	"CString":    KeywordEncoding,
	"String":     KeywordEncoding,
	"Cbytes":     KeywordEncoding,
	"Bytes":      KeywordEncoding,
	"Bytes8le":   KeywordEncoding,
	"Bytes16le":  KeywordEncoding,
	"Bytes32le":  KeywordEncoding,
	"Bytes64le":  KeywordEncoding,
	"Bytes8be":   KeywordEncoding,
	"Bytes16be":  KeywordEncoding,
	"Bytes32be":  KeywordEncoding,
	"Bytes64be":  KeywordEncoding,
	"String8le":  KeywordEncoding,
	"String16le": KeywordEncoding,
	"String32le": KeywordEncoding,
	"String64le": KeywordEncoding,
	"String8be":  KeywordEncoding,
	"String16be": KeywordEncoding,
	"String32be": KeywordEncoding,
	"String64be": KeywordEncoding,
	"Array":      KeywordEncoding,
	"Padding":    KeywordEncoding,
	"Bits":       KeywordEncoding,
}

// LookupKeyword reports whether text is reserved and which class it
// belongs to. Matching is case-sensitive.
func LookupKeyword(text string) (KeywordClass, bool) {
	class, ok := keywords[text]
	return class, ok
}

// Keywords returns every reserved word in sorted order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for word := range keywords {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}
