// Package orthography joins a base word and a suffix: a word-list hit on
// the simple concatenation wins first, then Plover's English orthography
// rule table, and finally simple concatenation.
package orthography

import "regexp"

// rule pairs a base-word regex and a suffix regex: when both match, the
// replace template produces the joined word.
type rule struct {
	base   *regexp.Regexp
	suffix *regexp.Regexp
	// replace builds the joined word from the base and suffix submatch
	// slices (index 0 is the whole match, 1.. the capture groups).
	replace func(baseMatch, suffixMatch []string) string
}

func ci(pattern string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + pattern)
}

// rules is the ordered orthography rule table, ported from Plover's
// english_stenotype.py rule set. The first matching pair wins.
var rules = []rule{
	{ // artistic + ly = artistically
		base: ci(`^(.*[aeiou]c)$`), suffix: ci(`^ly$`),
		replace: func(b, s []string) string { return b[1] + "ally" },
	},
	{ // statute + ry = statutory
		base: ci(`^(.*t)e$`), suffix: ci(`^ry$`),
		replace: func(b, s []string) string { return b[1] + "ory" },
	},
	{ // frequent + cy = frequency
		base: ci(`^(.*[naeiou])te?$`), suffix: ci(`^cy$`),
		replace: func(b, s []string) string { return b[1] + "cy" },
	},
	{ // establish + s = establishes
		base: ci(`^(.*(?:s|sh|x|z|zh))$`), suffix: ci(`^s$`),
		replace: func(b, s []string) string { return b[1] + "es" },
	},
	{ // speech + s = speeches
		base: ci(`^(.*(?:oa|ea|i|ee|oo|au|ou|l|n|[gin]ar|t)ch)$`), suffix: ci(`^s$`),
		replace: func(b, s []string) string { return b[1] + "es" },
	},
	{ // cherry + s = cherries
		base: ci(`^(.+[bcdfghjklmnpqrstvwxz])y$`), suffix: ci(`^s$`),
		replace: func(b, s []string) string { return b[1] + "ies" },
	},
	{ // die + ing = dying
		base: ci(`^(.+)ie$`), suffix: ci(`^ing$`),
		replace: func(b, s []string) string { return b[1] + "ying" },
	},
	{ // metallurgy + ist = metallurgist
		base: ci(`^(.+[cdfghlmnpr])y$`), suffix: ci(`^ist$`),
		replace: func(b, s []string) string { return b[1] + "ist" },
	},
	{ // beauty + ful = beautiful
		base: ci(`^(.+[bcdfghjklmnpqrstvwxz])y$`), suffix: ci(`^([a-hj-xz].*)$`),
		replace: func(b, s []string) string { return b[1] + "i" + s[1] },
	},
	{ // write + en = written
		base: ci(`^(.+)te$`), suffix: ci(`^en$`),
		replace: func(b, s []string) string { return b[1] + "tten" },
	},
	{ // free + ed = freed
		base: ci(`^(.+e)e$`), suffix: ci(`^(e.+)$`),
		replace: func(b, s []string) string { return b[1] + s[1] },
	},
	{ // narrate + ing = narrating
		base: ci(`^(.+[bcdfghjklmnpqrstuvwxz])e$`), suffix: ci(`^([aeiouy].*)$`),
		replace: func(b, s []string) string { return b[1] + s[1] },
	},
	{ // defer + ed = deferred
		base: ci(`^(.*(?:[bcdfghjklmnprstvwxyz]|qu)[aeiou])([bcdfgklmnprtvz])$`), suffix: ci(`^([aeiouy].*)$`),
		replace: func(b, s []string) string { return b[1] + b[2] + b[2] + s[1] },
	},
}

// Join combines base and suffix. The naive concatenation is returned
// as-is when the word list contains it; otherwise the first matching rule
// of the orthography rule table applies, and failing that the naive
// concatenation is returned.
func Join(base, suffix string) string {
	simple := base + suffix
	if wordList[simple] {
		return simple
	}

	for _, r := range rules {
		baseMatch := r.base.FindStringSubmatch(base)
		suffixMatch := r.suffix.FindStringSubmatch(suffix)
		if baseMatch != nil && suffixMatch != nil {
			return r.replace(baseMatch, suffixMatch)
		}
	}

	return simple
}

// JoinAll merges a base word with a sequence of attached suffixes,
// applying Join left to right.
func JoinAll(words []string) string {
	if len(words) == 0 {
		return ""
	}
	acc := words[0]
	for _, w := range words[1:] {
		acc = Join(acc, w)
	}
	return acc
}
