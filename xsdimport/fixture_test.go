package xsdimport_test

// componentXSD mirrors the layout of the published component schema: shared
// simple types, one top-level element per coded field and one complex type
// per record.
const componentXSD = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
    xmlns:gm="http://xmls.skatteverket.se/se/skatteverket/da/komponent/schema/1.1"
    targetNamespace="http://xmls.skatteverket.se/se/skatteverket/da/komponent/schema/1.1"
    elementFormDefault="qualified">
  <xs:simpleType name="Belopp">
    <xs:restriction base="xs:int">
      <xs:minInclusive value="-999999999"/>
      <xs:maxInclusive value="999999999"/>
    </xs:restriction>
  </xs:simpleType>
  <xs:simpleType name="BeloppPositiv">
    <xs:restriction base="gm:Belopp">
      <xs:minInclusive value="0"/>
    </xs:restriction>
  </xs:simpleType>
  <xs:simpleType name="Inkomstar">
    <xs:restriction base="xs:gYear">
      <xs:pattern value="[0-9]{4}"/>
    </xs:restriction>
  </xs:simpleType>
  <xs:simpleType name="IDNummer">
    <xs:restriction base="xs:string">
      <xs:pattern value="(19|20)[0-9]{10}"/>
      <xs:pattern value="16[0-9]{10}"/>
    </xs:restriction>
  </xs:simpleType>
  <xs:simpleType name="Text70">
    <xs:restriction base="xs:string">
      <xs:minLength value="1"/>
      <xs:maxLength value="70"/>
    </xs:restriction>
  </xs:simpleType>
  <xs:simpleType name="Period">
    <xs:restriction base="xs:string">
      <xs:enumeration value="1-3">
        <xs:annotation>
          <xs:documentation>Januari till mars</xs:documentation>
        </xs:annotation>
      </xs:enumeration>
      <xs:enumeration value="4-6"/>
    </xs:restriction>
  </xs:simpleType>
  <xs:simpleType name="Lista">
    <xs:list itemType="xs:string"/>
  </xs:simpleType>

  <xs:element name="AvdragenSkatt">
    <xs:complexType><xs:simpleContent><xs:extension base="gm:Belopp">
      <xs:attribute name="faltkod" type="xs:string" fixed="001"/>
    </xs:extension></xs:simpleContent></xs:complexType>
  </xs:element>
  <xs:element name="KontantBruttolonMm">
    <xs:complexType><xs:simpleContent><xs:extension base="gm:BeloppPositiv">
      <xs:attribute name="faltkod" type="xs:string" fixed="011"/>
    </xs:extension></xs:simpleContent></xs:complexType>
  </xs:element>
  <xs:element name="Period">
    <xs:complexType><xs:simpleContent><xs:extension base="gm:Period">
      <xs:attribute name="faltkod" type="xs:string" fixed="021"/>
    </xs:extension></xs:simpleContent></xs:complexType>
  </xs:element>
  <xs:element name="Inkomstar">
    <xs:complexType><xs:simpleContent><xs:extension base="gm:Inkomstar">
      <xs:attribute name="faltkod" type="xs:string" fixed="203"/>
    </xs:extension></xs:simpleContent></xs:complexType>
  </xs:element>
  <xs:element name="Specifikationsnummer">
    <xs:complexType><xs:simpleContent><xs:extension base="xs:long">
      <xs:attribute name="faltkod" type="xs:string" fixed="570"/>
    </xs:extension></xs:simpleContent></xs:complexType>
  </xs:element>
  <xs:element name="Inkomsttagare">
    <xs:complexType><xs:simpleContent><xs:extension base="gm:IDNummer">
      <xs:attribute name="faltkod" type="xs:string" fixed="215"/>
    </xs:extension></xs:simpleContent></xs:complexType>
  </xs:element>
  <xs:element name="Fornamn">
    <xs:complexType><xs:simpleContent><xs:extension base="gm:Text70">
      <xs:attribute name="faltkod" type="xs:string" fixed="216"/>
    </xs:extension></xs:simpleContent></xs:complexType>
  </xs:element>
  <xs:element name="UppgiftslamnarId">
    <xs:complexType><xs:simpleContent><xs:extension base="gm:IDNummer">
      <xs:attribute name="faltkod" type="xs:string" fixed="201"/>
    </xs:extension></xs:simpleContent></xs:complexType>
  </xs:element>

  <xs:complexType name="InkomsttagareKU10Type">
    <xs:all>
      <xs:element ref="gm:Inkomsttagare"/>
      <xs:element ref="gm:Fornamn" minOccurs="0"/>
    </xs:all>
  </xs:complexType>
  <xs:complexType name="UppgiftslamnareKU10Type">
    <xs:all>
      <xs:element ref="gm:UppgiftslamnarId"/>
    </xs:all>
  </xs:complexType>
  <xs:complexType name="KU10Type">
    <xs:all>
      <xs:element ref="gm:AvdragenSkatt" minOccurs="0"/>
      <xs:element ref="gm:KontantBruttolonMm" minOccurs="0"/>
      <xs:element ref="gm:Period" minOccurs="0"/>
      <xs:element ref="gm:Inkomstar"/>
      <xs:element ref="gm:Specifikationsnummer"/>
      <xs:element name="InkomsttagareKU10" type="gm:InkomsttagareKU10Type"/>
      <xs:element name="UppgiftslamnareKU10" type="gm:UppgiftslamnareKU10Type"/>
    </xs:all>
  </xs:complexType>
  <xs:element name="KU10" type="gm:KU10Type"/>
</xs:schema>
`

const ku10Record = `<KU10>
  <Inkomstar faltkod="203">2022</Inkomstar>
  <KontantBruttolonMm faltkod="011">35000</KontantBruttolonMm>
  <Period faltkod="021">1-3</Period>
  <Specifikationsnummer faltkod="570">5</Specifikationsnummer>
  <InkomsttagareKU10>
    <Inkomsttagare faltkod="215">191212121212</Inkomsttagare>
  </InkomsttagareKU10>
  <UppgiftslamnareKU10>
    <UppgiftslamnarId faltkod="201">165560269986</UppgiftslamnarId>
  </UppgiftslamnareKU10>
</KU10>`
