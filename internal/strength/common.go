package strength

import "strings"

// commonPasswords is the built-in list of well-known weak passwords.
var commonPasswords = []string{
	"123456", "123456789", "12345", "12345678", "1234",
	"111111", "123123", "1234567", "qwerty", "abc123",
	"password", "password1", "admin", "letmein", "welcome",
	"monkey", "login", "princess", "qwerty123", "football",
	"iloveyou", "sunshine", "starwars", "dragon", "passw0rd",
	"master", "hello", "freedom", "whatever", "trustno1",
	"shadow", "killer", "superman", "batman", "zaq1zaq1",
	"123qwe", "1q2w3e4r", "qazwsx", "password123", "admin123",
}

// CommonPasswords returns a copy of the built-in common password list.
func CommonPasswords() []string {
	out := make([]string, len(commonPasswords))
	copy(out, commonPasswords)
	return out
}

// commonSet is an immutable, lowercased lookup set.
type commonSet map[string]struct{}

// newCommonSet builds a set from the built-in list plus extra entries.
// Extra entries are trimmed and lowercased; blank ones are ignored.
func newCommonSet(extra []string) commonSet {
	set := make(commonSet, len(commonPasswords)+len(extra))
	for _, p := range commonPasswords {
		set[p] = struct{}{}
	}
	for _, p := range extra {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		set[p] = struct{}{}
	}
	return set
}

// contains reports whether the lowercased password is in the set.
func (s commonSet) contains(password string) bool {
	_, ok := s[strings.ToLower(password)]
	return ok
}

// defaultCommon backs IsCommon.
var defaultCommon = newCommonSet(nil)

// IsCommon reports whether password is on the built-in list, ignoring case.
func IsCommon(password string) bool {
	return defaultCommon.contains(password)
}
