package model

// AccessLevel is the visibility region a member was declared in.
type AccessLevel int

// Private is the zero value, matching the scanner's start state for every body.
const (
	Private AccessLevel = iota
	Protected
	Public
)

func (a AccessLevel) String() string {
	switch a {
	case Public:
		return "public"
	case Protected:
		return "protected"
	default:
		return "private"
	}
}

// ParseAccessKeyword maps public, protected or private to its level.
func ParseAccessKeyword(word string) (AccessLevel, bool) {
	switch word {
	case "public":
		return Public, true
	case "protected":
		return Protected, true
	case "private":
		return Private, true
	}
	return Private, false
}
