package forms

import (
	"github.com/reoring/kontrolluppgift/codec"
	"github.com/reoring/kontrolluppgift/dsl"
)

// KU14Kategori is the social security category of a posted worker.
type KU14Kategori string

// KU14UtsandUnderTid is the length of a posting abroad.
type KU14UtsandUnderTid string

var (
	ku14Kategori    = codec.Enum[KU14Kategori]("KU14Kategori", "A", "B", "C", "D", "E", "F")
	ku14UtsandUnder = codec.Enum[KU14UtsandUnderTid]("KU14UtsandUnderTid", "A", "B", "C")
)

var InkomsttagareKU14 = dsl.Record("InkomsttagareKU14").
	Field("LandskodTIN", landskod()).Code("076").
	Field("LandskodMedborgare", landskod()).Code("081").
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

var UppgiftslamnareKU14 = provider("UppgiftslamnareKU14")

// KU14 reports income to persons with limited tax liability who are not
// taxed under SINK, including workers posted to or from Sweden.
var KU14 = dsl.Record("KU14").
	Field("KontantBruttolonMm", dsl.Int()).Code("011").
	Field("FormanUtomBilDrivmedel", dsl.Int()).Code("012").
	Field("BilformanUtomDrivmedel", dsl.Int()).Code("013").
	Field("DrivmedelVidBilforman", dsl.Int()).Code("018").
	Field("AndraKostnadsers", dsl.Int()).Code("020").
	Field("UnderlagRutarbete", dsl.Int()).Code("021").
	Field("UnderlagRotarbete", dsl.Int()).Code("022").
	Field("ErsMEgenavgifter", dsl.Int()).Code("025").
	Field("Tjanstepension", dsl.Int()).Code("030").
	Field("ErsEjSocAvg", dsl.Int()).Code("031").
	Field("Forskarskattenamnden", dsl.Int()).Code("035").
	Field("BostadSmahus", dsl.Bool()).Code("041").
	Field("BostadEjSmahus", dsl.Bool()).Code("043").
	Field("FormanHarJusterats", dsl.Bool()).Code("048").
	Field("FormanSomPension", dsl.Bool()).Code("049").
	Field("Bilersattning", dsl.Bool()).Code("050").
	Field("Traktamente", dsl.Bool()).Code("051").
	Field("PersonaloptionForvarvAndel", dsl.Bool()).Code("059").
	Field("Arbetsstallenummer", dsl.String()).Code("060").
	Field("Delagare", dsl.Bool()).Code("061").
	Field("LandskodArbetsland", dsl.String()).Code("090").
	Field("UtsandUnderTid", dsl.Enum(ku14UtsandUnder)).Code("091").
	Field("Kategori", dsl.Enum(ku14Kategori)).Code("092").
	Field("SocialAvgiftsAvtal", dsl.Bool()).Code("093").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Nested("InkomsttagareKU14", InkomsttagareKU14).Required().
	Nested("UppgiftslamnareKU14", UppgiftslamnareKU14).Required().
	MustBuild()
