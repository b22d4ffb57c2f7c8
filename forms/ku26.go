package forms

import "github.com/reoring/kontrolluppgift/dsl"

var InkomsttagareKU26 = dsl.Record("InkomsttagareKU26").
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

var UppgiftslamnareKU26 = provider("UppgiftslamnareKU26")

// KU26 reports site leasehold fees (tomtrattsavgald).
var KU26 = dsl.Record("KU26").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("BetaldTomtrattsavgald", dsl.Int()).Code("560").
	Field("Fastighetsbeteckning", dsl.String()).Code("561").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Nested("InkomsttagareKU26", InkomsttagareKU26).Required().
	Nested("UppgiftslamnareKU26", UppgiftslamnareKU26).Required().
	MustBuild()
