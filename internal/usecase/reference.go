package usecase

import "github.com/jaevor/go-nanoid"

// ReferencePrefix tags every posting-fee charge issued by this service.
const ReferencePrefix = "TCA-YU-"

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// NewReference generates a transaction reference of the form
// PREFIX + 12 random alphanumeric characters. Collisions are negligible but
// the store still enforces uniqueness; callers retry once on a clash.
func NewReference() (string, error) {
	gen, err := nanoid.CustomASCII(referenceAlphabet, 12)
	if err != nil {
		return "", err
	}
	return ReferencePrefix + gen(), nil
}
