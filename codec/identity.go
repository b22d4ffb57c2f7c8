package codec

import (
	ku "github.com/reoring/kontrolluppgift"
)

// String returns the identity codec for free text leaves. Character data is
// kept exactly as read, including surrounding whitespace.
func String() ku.Codec[string] { return identityCodec{} }

type identityCodec struct{}

func (identityCodec) Name() string                       { return "string" }
func (identityCodec) Decode(text string) (string, error) { return text, nil }
func (identityCodec) Encode(v string) (string, error)    { return v, nil }
