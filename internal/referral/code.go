// Package referral issues the short codes handed to users at signup.
package referral

import "math/rand/v2"

const (
	codePrefix   = "NUTM"
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeSuffix   = 4
)

// NewCode returns a fresh referral code: the fixed prefix, a hyphen and four
// random uppercase-alphanumeric characters. ~1.68M combinations; codes are
// not checked for collisions against existing users.
func NewCode() string {
	b := make([]byte, codeSuffix)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return codePrefix + "-" + string(b)
}
