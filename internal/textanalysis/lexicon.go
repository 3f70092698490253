package textanalysis

// stopwords is the NLTK English stopword list.
var stopwords = toSet(
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he", "him",
	"his", "himself", "she", "she's", "her", "hers", "herself", "it", "it's", "its",
	"itself", "they", "them", "their", "theirs", "themselves", "what", "which", "who",
	"whom", "this", "that", "that'll", "these", "those", "am", "is", "are", "was", "were",
	"be", "been", "being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while", "of",
	"at", "by", "for", "with", "about", "against", "between", "into", "through", "during",
	"before", "after", "above", "below", "to", "from", "up", "down", "in", "out", "on",
	"off", "over", "under", "again", "further", "then", "once", "here", "there", "when",
	"where", "why", "how", "all", "any", "both", "each", "few", "more", "most", "other",
	"some", "such", "no", "nor", "not", "only", "own", "same", "so", "than", "too", "very",
	"s", "t", "can", "will", "just", "don", "don't", "should", "should've", "now", "d",
	"ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't",
	"didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven",
	"haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn", "mustn't", "needn",
	"needn't", "shan", "shan't", "shouldn", "shouldn't", "wasn", "wasn't", "weren",
	"weren't", "won", "won't", "wouldn", "wouldn't",
)

// lexicon maps opinion words to a polarity in [-1, 1].
var lexicon = map[string]float64{
	"amazing":       0.6,
	"awesome":       1.0,
	"beautiful":     0.85,
	"best":          1.0,
	"better":        0.5,
	"cheap":         0.4,
	"clean":         0.37,
	"comfortable":   0.4,
	"cool":          0.35,
	"delightful":    1.0,
	"easy":          0.43,
	"effective":     0.6,
	"excellent":     1.0,
	"fantastic":     0.4,
	"fast":          0.2,
	"fine":          0.42,
	"fun":           0.3,
	"good":          0.7,
	"great":         0.8,
	"happy":         0.8,
	"helpful":       0.5,
	"love":          0.5,
	"lovely":        0.5,
	"nice":          0.6,
	"perfect":       1.0,
	"pleasant":      0.73,
	"reliable":      0.5,
	"recommended":   0.5,
	"useful":        0.3,
	"wonderful":     1.0,
	"worth":         0.3,
	"angry":         -0.5,
	"annoying":      -0.8,
	"awful":         -1.0,
	"bad":           -0.7,
	"boring":        -1.0,
	"broken":        -0.4,
	"difficult":     -0.5,
	"disappointing": -0.6,
	"dirty":         -0.6,
	"expensive":     -0.5,
	"fake":          -0.5,
	"hate":          -0.8,
	"horrible":      -1.0,
	"poor":          -0.4,
	"sad":           -0.5,
	"slow":          -0.3,
	"terrible":      -1.0,
	"ugly":          -0.7,
	"useless":       -0.5,
	"worse":         -0.4,
	"worst":         -1.0,
	"wrong":         -0.5,
}

// intensifiers scale the polarity of the word that follows them.
var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"incredibly": 1.5,
	"so":         1.2,
	"too":        1.2,
	"quite":      1.1,
	"pretty":     1.1,
	"slightly":   0.5,
	"somewhat":   0.7,
}

var negations = toSet("not", "n't", "no", "never", "hardly", "without")

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
