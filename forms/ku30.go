package forms

import "github.com/reoring/kontrolluppgift/dsl"

var InkomsttagareKU30 = dsl.Record("InkomsttagareKU30").
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
	MustBuild()

var UppgiftslamnareKU30 = provider("UppgiftslamnareKU30")

// KU30 reports the standard income (schablonintakt) of an investment
// savings account.
var KU30 = dsl.Record("KU30").
	Field("AvdragenUtlandskSkatt", dsl.Int()).Code("002").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Field("Schablonintakt", dsl.Int()).Code("815").
	Field("Kontonummer", dsl.String()).Code("817").
	Nested("InkomsttagareKU30", InkomsttagareKU30).Required().
	Nested("UppgiftslamnareKU30", UppgiftslamnareKU30).Required().
	MustBuild()
