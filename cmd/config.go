package cmd

// Config carries the process configuration resolved from the environment.
type Config struct {
	HTTPPort string

	// Container code numbering
	CompanyPrefix  string
	ExtensionDigit byte
	SerialStart    uint64

	// Packing policy
	MaxUnitsPerCarton  int
	MaxWeightPerCarton float64
	SegregateBySKU     bool

	// Interchange parties
	SenderID   string
	ReceiverID string

	// OrderFile, when set, switches the process into one-shot mode: load the
	// order, print the ship notice and labels, exit.
	OrderFile string
}
