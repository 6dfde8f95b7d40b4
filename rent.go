package tipping

// accountStorageOverhead is the constant byte count the host adds to the
// payload size when pricing account storage.
const accountStorageOverhead = 128

// Rent prices account storage. Accounts funded with at least the minimum
// balance for their data size are exempt from collection and are never
// reclaimed by the host.
type Rent struct {
	// PerByteYear is the charge per stored byte and year.
	PerByteYear uint64
	// ExemptionYears is how many years worth of rent an account must
	// deposit to be exempt from collection.
	ExemptionYears uint64
}

// DefaultRent is the pricing applied by the host runtime.
var DefaultRent = Rent{
	PerByteYear:    3480,
	ExemptionYears: 2,
}

// MinimumBalance returns the smallest balance that makes an account with
// given data size exempt from rent collection.
func (r Rent) MinimumBalance(dataSize uint64) uint64 {
	return (accountStorageOverhead + dataSize) * r.PerByteYear * r.ExemptionYears
}
