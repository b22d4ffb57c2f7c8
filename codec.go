package kontrolluppgift

// Codec converts between the character data of a leaf element and its Go
// value. Decode failures are reported as Issues without a location; the
// record engine attaches the element path and name.
type Codec[T any] interface {
	// Name is the value type name used in messages ("KryssTyp", "number").
	Name() string
	Decode(text string) (T, error)
	Encode(v T) (string, error)
}
