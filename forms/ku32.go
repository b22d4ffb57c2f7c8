package forms

import "github.com/reoring/kontrolluppgift/dsl"

var InkomsttagareKU32 = dsl.Record("InkomsttagareKU32").
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

var UppgiftslamnareKU32 = provider("UppgiftslamnareKU32")

// KU32 reports disposals of financial instruments other than shares.
var KU32 = dsl.Record("KU32").
	Field("Delagare", dsl.Bool()).Code("061").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("Depanummer", dsl.Int()).Code("523").
	Field("AndelAvDepan", dsl.Float()).Code("524").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Field("VPNamn", dsl.String()).Code("571").
	Field("ISIN", dsl.String()).Code("572").
	Field("AvyttradTillISK", dsl.Bool()).Code("573").
	Field("AntalAvyttrade", dsl.Int()).Code("576").
	Field("OkandVarde", dsl.Bool()).Code("599").
	Field("ErhallenErsattning", dsl.Int()).Code("810").
	Nested("InkomsttagareKU32", InkomsttagareKU32).Required().
	Nested("UppgiftslamnareKU32", UppgiftslamnareKU32).Required().
	MustBuild()
