package forms

import "github.com/reoring/kontrolluppgift/dsl"

var InkomsttagareKU20 = dsl.Record("InkomsttagareKU20").
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

var UppgiftslamnareKU20 = provider("UppgiftslamnareKU20")

// KU20 reports interest income (ranteinkomst).
var KU20 = dsl.Record("KU20").
	Field("AvdragenSkatt", dsl.Int()).Code("001").
	Field("Delagare", dsl.Bool()).Code("061").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("Ranteinkomst", dsl.Int()).Code("500").
	Field("Forfogarkonto", dsl.Bool()).Code("502").
	Field("RanteinkomstEjKonto", dsl.Int()).Code("503").
	Field("AnnanInkomst", dsl.Int()).Code("504").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Nested("InkomsttagareKU20", InkomsttagareKU20).Required().
	Nested("UppgiftslamnareKU20", UppgiftslamnareKU20).Required().
	MustBuild()
