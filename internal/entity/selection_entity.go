package entity

import (
	"sort"
	"strconv"
	"unicode"
)

// Tags are the three fixed facets attached to every visual option.
type Tags struct {
	Style       []string `json:"style"`
	Personality []string `json:"personality"`
	Emotional   []string `json:"emotional"`
}

type Selection struct {
	OptionId string `json:"optionId"`
	Tags     Tags   `json:"tags"`
}

// SelectionSet maps questionId to the latest Selection for that question.
type SelectionSet map[string]Selection

// QuestionIds returns the keys in natural order ("Q2" before "Q10").
func (s SelectionSet) QuestionIds() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := ids[i], ids[j]
		if naturalLess(a, b) {
			return true
		}
		// "Q1" and "Q01" are naturally equal; fall back to byte order.
		return !naturalLess(b, a) && a < b
	})
	return ids
}

func naturalLess(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		if unicode.IsDigit(ra[i]) && unicode.IsDigit(rb[j]) {
			si := i
			for i < len(ra) && unicode.IsDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && unicode.IsDigit(rb[j]) {
				j++
			}
			na, errA := strconv.Atoi(string(ra[si:i]))
			nb, errB := strconv.Atoi(string(rb[sj:j]))
			if errA == nil && errB == nil && na != nb {
				return na < nb
			}
			if errA != nil || errB != nil {
				if sa, sb := string(ra[si:i]), string(rb[sj:j]); sa != sb {
					return sa < sb
				}
			}
			continue
		}
		if ra[i] != rb[j] {
			return ra[i] < rb[j]
		}
		i++
		j++
	}
	return len(ra)-i < len(rb)-j
}
