package handler

import "strings"

// wordsPerMinute is the assumed reading speed.
const wordsPerMinute = 200

// readingTime estimates how many minutes a body takes to read: the word
// count divided by 200, rounded up. Words are counted by splitting on single
// spaces, so an empty body still counts as one word and estimates 1 minute.
// The estimate is computed once at blog creation and never recomputed.
func readingTime(body string) int {
	words := len(strings.Split(body, " "))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
