package domain

// Key is the normalized (name, TLD) pair derived from a raw domain string.
// Name is lowercase with no leading or trailing dots; TLD is the longest
// matching entry in the known multi-level TLD set, or the last label when no
// multi-level entry matches (e.g. "shop.co.uk" -> {Name: "shop", TLD: "co.uk"}).
type Key struct {
	// Name is everything before the matched TLD, dots included for nested
	// subdomains ("mail.google" for "mail.google.com").
	Name string `json:"name"`
	// TLD is the matched top-level domain, possibly multi-level.
	TLD string `json:"tld"`
}

// String reassembles the full domain from its parts.
func (k Key) String() string {
	if k.Name == "" || k.TLD == "" {
		return k.Name + k.TLD
	}

	return k.Name + "." + k.TLD
}
