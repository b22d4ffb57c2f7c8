package forms

import "github.com/reoring/kontrolluppgift/dsl"

var InkomsttagareKU21 = dsl.Record("InkomsttagareKU21").
	Field("LandskodTIN", dsl.String()).Code("076").
	Field("Fodelseort", dsl.String()).Code("077").
	Field("LandskodFodelseort", dsl.String()).Code("078").
	Field("Inkomsttagare", dsl.String()).Code("215").
	Field("Fornamn", dsl.String()).Code("216").
	Field("Efternamn", dsl.String()).Code("217").
	Field("Gatuadress", dsl.String()).Code("218").
	Field("Postnummer", dsl.String()).Code("219").
	Field("Postort", dsl.String()).Code("220").
	Field("LandskodPostort", dsl.String()).Code("221").
	Field("Fodelsetid", dsl.String()).Code("222").
	Field("AnnatIDNr", dsl.String()).Code("224").
	Field("OrgNamn", dsl.String()).Code("226").
	Field("Gatuadress2", dsl.String()).Code("228").
	Field("FriAdress", dsl.String()).Code("230").
	Field("TIN", dsl.String()).Code("252").
	MustBuild()

var UppgiftslamnareKU21 = provider("UppgiftslamnareKU21")

// KU21 reports interest on claims (fordringsratter) and related payments.
// AndelAvDepan and ErhallenRantekompensation are fractions.
var KU21 = dsl.Record("KU21").
	Field("AvdragenSkatt", dsl.Int()).Code("001").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("AnnanInkomst", dsl.Int()).Code("504").
	Field("RantaFordringsratter", dsl.Int()).Code("520").
	Field("UtbetaltIVissaFall", dsl.Int()).Code("522").
	Field("Depanummer", dsl.Int()).Code("523").
	Field("AndelAvDepan", dsl.Float()).Code("524").
	Field("ErhallenRantekompensation", dsl.Float()).Code("525").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Field("VPNamn", dsl.String()).Code("571").
	Field("ISIN", dsl.String()).Code("572").
	Field("AvyttradTillISK", dsl.Bool()).Code("573").
	Field("OkandVarde", dsl.Bool()).Code("599").
	Nested("InkomsttagareKU21", InkomsttagareKU21).Required().
	Nested("UppgiftslamnareKU21", UppgiftslamnareKU21).Required().
	MustBuild()
