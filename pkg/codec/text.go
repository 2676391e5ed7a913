package codec

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// DefaultEncoding 默认编码
const DefaultEncoding = "UTF-8"

// commonEncodings 常用编码，排在列表最前面
var commonEncodings = []string{
	"UTF-8", "GBK", "GB2312", "GB18030", "ASCII", "Latin-1", "UTF-16", "UTF-16BE", "UTF-16LE",
}

var encodingTable = map[string]encoding.Encoding{
	"UTF-8":    unicode.UTF8,
	"GBK":      simplifiedchinese.GBK,
	"GB2312":   simplifiedchinese.GBK, // GBK is a strict superset
	"GB18030":  simplifiedchinese.GB18030,
	"ASCII":    asciiEncoding{},
	"Latin-1":  charmap.ISO8859_1,
	"UTF-16":   unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	"UTF-16BE": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"UTF-16LE": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),

	"UTF-32":       utf32.UTF32(utf32.BigEndian, utf32.UseBOM),
	"UTF-32BE":     utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"UTF-32LE":     utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	"Big5":         traditionalchinese.Big5,
	"HZ-GB-2312":   simplifiedchinese.HZGB2312,
	"Shift_JIS":    japanese.ShiftJIS,
	"EUC-JP":       japanese.EUCJP,
	"ISO-2022-JP":  japanese.ISO2022JP,
	"EUC-KR":       korean.EUCKR,
	"KOI8-R":       charmap.KOI8R,
	"KOI8-U":       charmap.KOI8U,
	"IBM866":       charmap.CodePage866,
	"Macintosh":    charmap.Macintosh,
	"Windows-874":  charmap.Windows874,
	"Windows-1250": charmap.Windows1250,
	"Windows-1251": charmap.Windows1251,
	"Windows-1252": charmap.Windows1252,
	"Windows-1253": charmap.Windows1253,
	"Windows-1254": charmap.Windows1254,
	"Windows-1255": charmap.Windows1255,
	"Windows-1256": charmap.Windows1256,
	"Windows-1257": charmap.Windows1257,
	"Windows-1258": charmap.Windows1258,
	"ISO-8859-2":   charmap.ISO8859_2,
	"ISO-8859-3":   charmap.ISO8859_3,
	"ISO-8859-4":   charmap.ISO8859_4,
	"ISO-8859-5":   charmap.ISO8859_5,
	"ISO-8859-6":   charmap.ISO8859_6,
	"ISO-8859-7":   charmap.ISO8859_7,
	"ISO-8859-8":   charmap.ISO8859_8,
	"ISO-8859-9":   charmap.ISO8859_9,
	"ISO-8859-10":  charmap.ISO8859_10,
	"ISO-8859-13":  charmap.ISO8859_13,
	"ISO-8859-14":  charmap.ISO8859_14,
	"ISO-8859-15":  charmap.ISO8859_15,
	"ISO-8859-16":  charmap.ISO8859_16,
}

// byLowerName 不区分大小写的查找表
var byLowerName = func() map[string]encoding.Encoding {
	m := make(map[string]encoding.Encoding, len(encodingTable)+4)
	for name, enc := range encodingTable {
		m[strings.ToLower(name)] = enc
	}
	m["utf8"] = unicode.UTF8
	m["us-ascii"] = asciiEncoding{}
	m["latin1"] = charmap.ISO8859_1
	m["iso-8859-1"] = charmap.ISO8859_1
	return m
}()

// Encodings 返回界面中可选的编码列表：常用编码在前，其余按名称排序
func Encodings() []string {
	rest := make([]string, 0, len(encodingTable))
	for name := range encodingTable {
		if !isCommon(name) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	names := make([]string, 0, len(encodingTable))
	names = append(names, commonEncodings...)
	return append(names, rest...)
}

func isCommon(name string) bool {
	for _, c := range commonEncodings {
		if c == name {
			return true
		}
	}
	return false
}

// Lookup resolves an encoding name. Unknown names resolve to UTF-8 and ok is false.
func Lookup(name string) (enc encoding.Encoding, ok bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if enc, found := byLowerName[key]; found {
		return enc, true
	}
	if key != "" {
		if enc, err := ianaindex.IANA.Encoding(key); err == nil && enc != nil {
			return enc, true
		}
	}
	return unicode.UTF8, false
}

// Encode 按指定编码将文本转换为字节
func Encode(text, name string) []byte {
	enc, _ := Lookup(name)
	out, _, err := transform.Bytes(encoding.ReplaceUnsupported(enc.NewEncoder()), []byte(text))
	if err != nil {
		return []byte(text)
	}
	return out
}

// Decode 按指定编码将字节转换为文本
func Decode(data []byte, name string) string {
	enc, _ := Lookup(name)
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return string(data)
	}
	return string(out)
}

// asciiEncoding is 7-bit US-ASCII. Bytes above 0x7F decode to U+FFFD and
// non-ASCII runes encode to '?'.
type asciiEncoding struct{}

func (asciiEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: asciiDecoder{}}
}

func (asciiEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: asciiEncoder{}}
}

type asciiDecoder struct{ transform.NopResetter }

func (asciiDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
		} else {
			if nDst+utf8.RuneLen(utf8.RuneError) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], utf8.RuneError)
		}
		nSrc++
	}
	return nDst, nSrc, nil
}

type asciiEncoder struct{ transform.NopResetter }

func (asciiEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		size := 1
		if c >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			_, size = utf8.DecodeRune(src[nSrc:])
			c = '?'
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}
