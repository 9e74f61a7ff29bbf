package categorical

// MappingThreshold mirrors numeric.MappingThreshold (spec §6.3): below this
// ratio of mapping length to backing size, Map always materializes even
// when preferView is set.
const MappingThreshold = 0.1

// Per-format survivor-density ceilings for Sparse.Map (spec §4.4): above the
// ceiling, Map materializes Dense; at or below it, Map stays Sparse.
const (
	MaxDensityUint8  = 0.2
	MaxDensityUint16 = 0.33
	MaxDensityInt32  = 0.5
)

// maxDensityFor returns the sparse density ceiling for format, or false for
// U2/U4 which never support sparse storage at all.
func maxDensityFor(format IndexFormat) (float64, bool) {
	switch format {
	case U8:
		return MaxDensityUint8, true
	case U16:
		return MaxDensityUint16, true
	case I32:
		return MaxDensityInt32, true
	default:
		return 0, false
	}
}
