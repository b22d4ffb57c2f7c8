package forms

import "github.com/reoring/kontrolluppgift/dsl"

// InkomsttagareKU13 identifies the recipient of a KU13. Country fields are
// checked against Landskod and the identity number against the personnummer,
// samordningsnummer and organisationsnummer patterns.
var InkomsttagareKU13 = dsl.Record("InkomsttagareKU13").
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

var UppgiftslamnareKU13 = provider("UppgiftslamnareKU13")

// KU13 reports income to persons with limited tax liability (SINK).
var KU13 = dsl.Record("KU13").
	Field("KontantBruttolonMm", dsl.Int()).Code("011").
	Field("FormanUtomBilDrivmedel", dsl.Int()).Code("012").
	Field("BilformanUtomDrivmedel", dsl.Int()).Code("013").
	Field("DrivmedelVidBilforman", dsl.Int()).Code("018").
	Field("Tjanstepension", dsl.Int()).Code("030").
	Field("ErsEjSocAvg", dsl.Int()).Code("031").
	Field("ErsFormanBostadMmSINK", dsl.Int()).Code("036").
	Field("BostadSmahus", dsl.Bool()).Code("041").
	Field("BostadEjSmahus", dsl.Bool()).Code("043").
	Field("FormanHarJusterats", dsl.Bool()).Code("048").
	Field("PersonaloptionForvarvAndel", dsl.Bool()).Code("059").
	Field("Arbetsstallenummer", dsl.String()).Code("060").
	Field("Delagare", dsl.Bool()).Code("061").
	Field("SocialAvgiftsAvtal", dsl.Bool()).Code("093").
	Field("Inkomstar", dsl.String()).Code("203").Required().
	Field("Borttag", dsl.Bool()).Code("205").
	Field("Specifikationsnummer", dsl.Int()).Code("570").Required().
	Nested("InkomsttagareKU13", InkomsttagareKU13).Required().
	Nested("UppgiftslamnareKU13", UppgiftslamnareKU13).Required().
	MustBuild()
