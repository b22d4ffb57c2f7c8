// Package kontrolluppgift provides the shared vocabulary of a schema-driven
// codec for Skatteverket "Kontrolluppgift" documents (the forms are listed in
// package forms):
//
// - A stable error model via Issues (element path, code, message)
// - A streaming token SPI (Source/Sink) with pluggable XML drivers
// - Decode/encode options and the leaf value Codec contract
//
// Design policy:
// - Keep only public vocabulary in the root package; put detailed implementations under internal/.
// - Place the record model and engine under dsl/, value codecs under codec/,
//   the document envelope under document/, concrete form tables under forms/,
//   XSD ingestion under xsdimport/ and the CLI under cmd/kontrolluppgift.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := document.Decode(ctx, data)
//	out, err := document.Encode(ctx, doc)
//
//	cat, diag, err := xsdimport.Import(xsd, xsdimport.Options{})
package kontrolluppgift
