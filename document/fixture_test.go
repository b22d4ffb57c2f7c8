package document_test

// ku10Doc is a complete file in the canonical form produced by the default
// driver with two space indentation.
const ku10Doc = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<i:Skatteverket xmlns:i="http://xmls.skatteverket.se/se/skatteverket/ai/instans/infoForBeskattning/8.0" xmlns="http://xmls.skatteverket.se/se/skatteverket/ai/komponent/infoForBeskattning/8.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" omrade="Kontrolluppgifter" xsi:schemaLocation="http://xmls.skatteverket.se/se/skatteverket/ai/instans/infoForBeskattning/8.0 http://xmls.skatteverket.se/se/skatteverket/ai/kontrolluppgift/instans/Kontrolluppgifter_8.0.xsd">
  <Avsandare>
    <Programnamn>Programmakarna AB</Programnamn>
    <Organisationsnummer>191111111111</Organisationsnummer>
    <TekniskKontaktperson>
      <Namn>Valle Vadman</Namn>
      <Telefon>23-2-4-244454</Telefon>
      <Epostadress>valle.vadman@programmakarna.se</Epostadress>
      <Utdelningsadress1>Artillerigatan 11</Utdelningsadress1>
      <Postnummer>62145</Postnummer>
      <Postort>Visby</Postort>
    </TekniskKontaktperson>
    <Skapad>2021-01-07T10:18:23</Skapad>
  </Avsandare>
  <Blankettgemensamt>
    <Uppgiftslamnare>
      <UppgiftslamnarePersOrgnr>165599990602</UppgiftslamnarePersOrgnr>
      <Kontaktperson>
        <Namn>Ville Vessla</Namn>
        <Telefon>555-244454</Telefon>
        <Epostadress>ville.vessla@foretaget.se</Epostadress>
        <Sakomrade>Kontrolluppgifter</Sakomrade>
      </Kontaktperson>
    </Uppgiftslamnare>
  </Blankettgemensamt>
  <Blankett nummer="0">
    <Arendeinformation>
      <Arendeagare>165599990602</Arendeagare>
      <Period>2022</Period>
    </Arendeinformation>
    <Blankettinnehall>
      <KU10>
        <KontantBruttolonMm faltkod="011">1</KontantBruttolonMm>
        <DrivmedelVidBilforman faltkod="018">4</DrivmedelVidBilforman>
        <BostadSmahus faltkod="041">1</BostadSmahus>
        <Arbetsstallenummer faltkod="060">12</Arbetsstallenummer>
        <Inkomstar faltkod="203">2022</Inkomstar>
        <Borttag faltkod="205">0</Borttag>
        <Specifikationsnummer faltkod="570">5</Specifikationsnummer>
        <InkomsttagareKU10>
          <Inkomsttagare faltkod="215">191612299279</Inkomsttagare>
          <Fornamn faltkod="216">Test</Fornamn>
          <Efternamn faltkod="217">Testsson</Efternamn>
        </InkomsttagareKU10>
        <UppgiftslamnareKU10>
          <UppgiftslamnarId faltkod="201">165599990602</UppgiftslamnarId>
          <NamnUppgiftslamnare faltkod="202">Foretag 1</NamnUppgiftslamnare>
        </UppgiftslamnareKU10>
      </KU10>
    </Blankettinnehall>
  </Blankett>
</i:Skatteverket>`
