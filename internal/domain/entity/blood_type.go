package entity

// BloodType identifies one of the four canonical blood groups. The numeric
// value doubles as the index into a product's restriction-flag array.
type BloodType int

const (
	BloodType0 BloodType = iota // 0(I)
	BloodTypeA                  // A(II)
	BloodTypeB                  // B(III)
	BloodTypeAB                 // AB(IV)
)

// bloodTypeCodes lists the canonical codes in positional order.
var bloodTypeCodes = [4]string{"0(I)", "A(II)", "B(III)", "AB(IV)"}

// ParseBloodType resolves a canonical code ("0(I)", "A(II)", "B(III)",
// "AB(IV)") to its BloodType by positional lookup.
func ParseBloodType(code string) (BloodType, bool) {
	for i, candidate := range bloodTypeCodes {
		if candidate == code {
			return BloodType(i), true
		}
	}

	return 0, false
}

// Valid reports whether b is one of the four canonical blood types.
func (b BloodType) Valid() bool {
	return b >= BloodType0 && b <= BloodTypeAB
}

// Index returns the position of b in a product's restriction-flag array.
func (b BloodType) Index() int {
	return int(b)
}

// String returns the canonical code for b.
func (b BloodType) String() string {
	if !b.Valid() {
		return "unknown"
	}

	return bloodTypeCodes[b]
}
