package forms

import (
	"github.com/reoring/kontrolluppgift/codec"
	"github.com/reoring/kontrolluppgift/dsl"
)

// sjodagar bounds the number of days at sea to a calendar year.
var sjodagar = codec.MustRestrict("AntalDagarSjoinkomst", codec.Int(),
	codec.Restriction{MinInclusive: "0", MaxInclusive: "366"})

var InkomsttagareKU16 = dsl.Record("InkomsttagareKU16").
	Field("LandskodTIN", landskod()).Code("076").
	Field("Inkomsttagare", dsl.IdentityNumber()).Code("215").
	Field("Fornamn", dsl.String()).Code("216").
	Field("Efternamn", dsl.String()).Code("217").
	Field("Gatuadress", dsl.String()).Code("218").
	Field("Postnummer", dsl.String()).Code("219").
	Field("Postort", dsl.String()).Code("220").
	Field("LandskodPostort", landskod()).Code("221").
	Field("Fodelsetid", dsl.String()).Code("222").
	Field("AnnatIDNr", dsl.String()).Code("224").
	Field("OrgNamn", dsl.String()).Code("226").
	Field("Gatuadress2", dsl.String()).Code("228").
	Field("FriAdress", dsl.String()).Code("230").
	Field("TIN", dsl.String()).Code("252").
	MustBuild()

var UppgiftslamnareKU16 = provider("UppgiftslamnareKU16")

// KU16 reports seafarers' income (sjoinkomst).
var KU16 = dsl.Record("KU16").
	Field("KontantBruttolonMm", dsl.Int()).Code("011").
	Field("FormanUtomBilDrivmedel", dsl.Int()).Code("012").
	Field("AndraKostnadsers", dsl.Int()).Code("020").
	Field("UnderlagRutarbete", dsl.Int()).Code("021").
	Field("UnderlagRotarbete", dsl.Int()).Code("022").
	Field("Fartygssignal", dsl.String()).Code("026").
	Field("AntalDagarSjoinkomst", dsl.Restricted(sjodagar)).Code("027").
	Field("NarfartFjarrfart", narfartFjarrfart()).Code("028").
	Field("ErsEjSocAvg", dsl.Int()).Code("031").
	Field("Traktamente", dsl.Bool()).Code("051").
	Field("Arbetsstallenummer", dsl.String()).Code("060").
	Field("Delagare", dsl.Bool()).Code("061").
	Field("SocialAvgiftsAvtal", dsl.Bool()).Code("093").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("FartygetsNamn", dsl.String()).Code("223").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Nested("InkomsttagareKU16", InkomsttagareKU16).Required().
	Nested("UppgiftslamnareKU16", UppgiftslamnareKU16).Required().
	MustBuild()
