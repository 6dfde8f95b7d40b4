package tipping

// Marshaller is anything that can be represented in binary.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshaller, as Unmarshal almost always requires a
// pointer, and functions that only need to marshal bytes can use the
// Marshaller interface to access non-pointers as well.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Msg is the payload of an instruction call.
type Msg interface {
	Persistent

	// Validate returns an error if the message content is invalid. The
	// check is stateless, fields are tested against the host contract
	// only.
	Validate() error

	// Path returns the name under which this message is known. It is
	// used in logs and diagnostics.
	Path() string
}
