// Package dietary normalizes dietary tags and corrects claims that an item's
// description contradicts.
//
// The validation pass is a list of rules. A rule names a tag and the
// ingredients that disprove it; when the lower-cased description mentions
// any of them the tag is removed and, optionally, replaced:
//
//	v := dietary.NewValidator()
//	tags := v.Validate("Feta and olive salad with cheese", []string{"Vegan"})
//	// tags: ["Vegetarian"]
//
// Rules run independently and in order. DefaultRules covers Vegan, Gluten-Free
// and Nut-Free claims.
package dietary
