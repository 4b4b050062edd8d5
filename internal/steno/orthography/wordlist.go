package orthography

// wordList is a representative, process-wide read-only set of common
// English words used to short-circuit the orthography rule table when a
// naive join already spells a real word (this matters most for the
// consonant-doubling rule, which over-applies for words like "monitored"
// and "shivering"). It is not a claim of dictionary completeness.
var wordList = buildWordList()

func buildWordList() map[string]bool {
	words := []string{
		"monitored", "monitoring", "shivering", "shivered", "gathering",
		"gathered", "wondering", "wondered", "bothering", "bothered",
		"covering", "covered", "delivering", "delivered", "entering",
		"entered", "honoring", "honored", "favoring", "favored",
		"happening", "offering", "offered", "suffering", "suffered",
		"hello", "world", "request", "mountain", "printing", "deer", "food",
		"running", "jumping", "talking", "walking", "reading", "writing",
		"beginning", "stopping", "hoping", "hopping", "planning",
		"occurring", "preferring", "referring", "transferring",
		"happy", "funny", "lucky", "story", "baby", "city", "party",
		"carry", "marry", "study", "cherry", "berry", "library",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
