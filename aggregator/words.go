package aggregator

import (
	"regexp"
	"strings"
	"unicode"

	a "github.com/patricioibar/olist-dashboard/aggregator/aggfunctions"
	"github.com/patricioibar/olist-dashboard/filter"
	"github.com/patricioibar/olist-dashboard/joiner"
	"golang.org/x/text/cases"
)

const DefaultMaxWords = 200

// a word starts with a letter, digit or underscore and is at least two
// characters long
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_']+`)

// ReviewWords counts the words of the review titles in scope, ignoring case
// and stopwords, and keeps the maxWords most frequent.
func ReviewWords(scope *filter.Scope, maxWords int) Series {
	folder := cases.Fold()
	grouped := NewGroupedData(a.AggConfig{Col: "review_comment_title", Func: a.Count})

	for _, review := range joiner.ScopeReviews(scope) {
		if review.Title == "" {
			continue
		}
		for _, word := range Tokenize(folder.String(review.Title)) {
			grouped.Add(word, word)
		}
	}
	return seriesFromEntries(grouped.Top(0, maxWords, true))
}

// Tokenize splits already folded text into words, dropping stopwords,
// numbers and possessive suffixes.
func Tokenize(text string) []string {
	words := make([]string, 0)
	for _, word := range wordPattern.FindAllString(text, -1) {
		word = strings.TrimSuffix(word, "'s")
		word = strings.Trim(word, "'")
		if len([]rune(word)) < 2 || isNumber(word) {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		words = append(words, word)
	}
	return words
}

func isNumber(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
