// Package passphrase generates memorable candidate passwords.
//
// A passphrase is built from six tokens: one adjective, one noun, a two-digit
// number, a three-digit number and two symbols. The tokens are shuffled
// uniformly and joined without a separator, for example "42Tiger#Brave731!".
//
// The random source is injectable so tests can assert exact output:
//
//	gen := passphrase.NewGenerator(passphrase.WithSource(rand.New(rand.NewPCG(1, 2))))
//	password := gen.Generate()
//
// Without WithSource the generator draws from crypto/rand.
package passphrase
