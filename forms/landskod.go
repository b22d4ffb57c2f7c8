package forms

import (
	"github.com/reoring/kontrolluppgift/codec"
	"github.com/reoring/kontrolluppgift/dsl"
)

// Landskod is a two letter country code as accepted by Skatteverket. The set
// follows ISO 3166-1 alpha-2 with the additions AN (Netherlands Antilles) and
// XK (Kosovo).
type Landskod string

var landskoder = []Landskod{
	"AD", "AE", "AF", "AG", "AI", "AL", "AN", "AM", "AO", "AQ", "AR", "AS",
	"AT", "AU", "AW", "AX", "AZ", "BA", "BB", "BD", "BE", "BF", "BG", "BH",
	"BI", "BJ", "BL", "BM", "BN", "BO", "BQ", "BR", "BS", "BT", "BV", "BW",
	"BY", "BZ", "CA", "CC", "CD", "CF", "CG", "CH", "CI", "CK", "CL", "CM",
	"CN", "CO", "CR", "CU", "CV", "CW", "CX", "CY", "CZ", "DE", "DJ", "DK",
	"DM", "DO", "DZ", "EC", "EE", "EG", "EH", "ER", "ES", "ET", "FI", "FJ",
	"FK", "FM", "FO", "FR", "GA", "GB", "GD", "GE", "GF", "GG", "GH", "GI",
	"GL", "GM", "GN", "GP", "GQ", "GR", "GS", "GT", "GU", "GW", "GY", "HK",
	"HM", "HN", "HR", "HT", "HU", "ID", "IE", "IL", "IM", "IN", "IO", "IQ",
	"IR", "IS", "IT", "JE", "JM", "JO", "JP", "KE", "KG", "KH", "KI", "KM",
	"KN", "KP", "KR", "KW", "KY", "KZ", "LA", "LB", "LC", "LI", "LK", "LR",
	"LS", "LT", "LU", "LV", "LY", "MA", "MC", "MD", "ME", "MF", "MG", "MH",
	"MK", "ML", "MM", "MN", "MO", "MP", "MQ", "MR", "MS", "MT", "MU", "MV",
	"MW", "MX", "MY", "MZ", "NA", "NC", "NE", "NF", "NG", "NI", "NL", "NO",
	"NP", "NR", "NU", "NZ", "OM", "PA", "PE", "PF", "PG", "PH", "PK", "PL",
	"PM", "PN", "PR", "PS", "PT", "PW", "PY", "QA", "RE", "RO", "RS", "RU",
	"RW", "SA", "SB", "SC", "SD", "SE", "SG", "SH", "SI", "SJ", "SK", "SL",
	"SM", "SN", "SO", "SR", "SS", "ST", "SV", "SX", "SY", "SZ", "TC", "TD",
	"TF", "TG", "TH", "TJ", "TK", "TL", "TM", "TN", "TO", "TR", "TT", "TV",
	"TW", "TZ", "UA", "UG", "UM", "US", "UY", "UZ", "VA", "VC", "VE", "VG",
	"VI", "VN", "VU", "WF", "WS", "XK", "YE", "YT", "ZA", "ZM", "ZW",
}

var landskodCodec = codec.Enum("Landskod", landskoder...)

// LandskodCodec returns the closed set codec for Landskod.
func LandskodCodec() *codec.EnumCodec[Landskod] { return landskodCodec }

// Valid reports whether l is a known country code.
func (l Landskod) Valid() bool { return landskodCodec.Contains(l) }

// NarfartFjarrfart distinguishes near (N) and far (F) trade for seafarers.
type NarfartFjarrfart string

const (
	Narfart   NarfartFjarrfart = "N"
	Fjarrfart NarfartFjarrfart = "F"
)

var narfartCodec = codec.Enum("NarfartFjarrfart", Narfart, Fjarrfart)

func landskod() dsl.ScalarAdapter { return dsl.Enum(landskodCodec) }

func narfartFjarrfart() dsl.ScalarAdapter { return dsl.Enum(narfartCodec) }
