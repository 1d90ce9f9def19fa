// Package lexicon holds the fixed word lists used by query normalization and
// facet filtering. All data is immutable after package initialization so the
// functions consuming it stay referentially transparent.
package lexicon

import "strings"

// genericEntities are entity spans too generic to discriminate between
// documents; the facet filter drops them.
var genericEntities = toSet([]string{
	"man", "woman", "lady", "ghost", "dads", "people", "person",
})

// denylist contains substrings that disqualify an attribute or description.
var denylist = []string{"crazy shit", "shit"}

// attributeCanon maps a substring of an attribute to its canonical tag.
var attributeCanon = []struct {
	Substr string
	Canon  string
}{
	{Substr: "r rated", Canon: "R-rated"},
}

// highValueAttributes get the stronger boost in the weighted composite query.
var highValueAttributes = toSet([]string{
	"cannes", "awards", "art house flick", "horror",
})

// IsGenericEntity reports whether the entity span is in the generic-noun set.
func IsGenericEntity(entity string) bool {
	_, ok := genericEntities[strings.ToLower(entity)]
	return ok
}

// IsDenylisted reports whether the value contains any denylisted substring.
// Matching is plain substring containment, not tokenized.
func IsDenylisted(value string) bool {
	lower := strings.ToLower(value)
	for _, d := range denylist {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

// CanonicalAttribute returns the canonical tag for an attribute already
// lowercased by the caller, or the attribute unchanged when no rule applies.
func CanonicalAttribute(attr string) string {
	for _, rule := range attributeCanon {
		if strings.Contains(attr, rule.Substr) {
			return rule.Canon
		}
	}
	return attr
}

// IsHighValueAttribute reports whether the attribute belongs to the fixed
// high-value set that earns the stronger composite-query boost.
func IsHighValueAttribute(attr string) bool {
	_, ok := highValueAttributes[strings.ToLower(attr)]
	return ok
}
