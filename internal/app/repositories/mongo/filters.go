package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// anchoredCI builds a whole-string case-insensitive match: anchored at
// both ends so "CS" never matches "CS-Advanced". The value is quoted to
// keep regex metacharacters literal.
func anchoredCI(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}

// prefixCI builds a case-insensitive starts-with match, used for the
// grade prefix lookup ("A" covers A, A-, A+).
func prefixCI(prefix string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix), Options: "i"}
}

// containsCI builds an unanchored case-insensitive substring match, used
// only by the catalog search endpoints.
func containsCI(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}
