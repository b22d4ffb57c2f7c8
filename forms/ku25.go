package forms

import "github.com/reoring/kontrolluppgift/dsl"

var InkomsttagareKU25 = dsl.Record("InkomsttagareKU25").
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
	MustBuild()

var UppgiftslamnareKU25 = provider("UppgiftslamnareKU25")

// KU25 reports deductible interest paid (avdragsgill ranta).
var KU25 = dsl.Record("KU25").
	Field("Delagare", dsl.Bool()).Code("061").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("AvdragsgillRanta", dsl.Int()).Code("540").
	Field("TotaltInbetaldRanta", dsl.Int()).Code("541").
	Field("BetaldRantekompensation", dsl.Int()).Code("543").
	Field("GemensamtLan", dsl.Bool()).Code("544").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Nested("InkomsttagareKU25", InkomsttagareKU25).Required().
	Nested("UppgiftslamnareKU25", UppgiftslamnareKU25).Required().
	MustBuild()
