package ranking

import (
	"math/rand"
	"sort"
	"time"

	"campus_feed/internal/domain"
)

// Cadence yields the gap between utility injections in the feed tail.
// Production wiring draws 3 or 4 at random per gap; tests supply a
// deterministic sequence.
type Cadence func() int

// RandomCadence returns a Cadence drawing 3 or 4 from r.
func RandomCadence(r *rand.Rand) Cadence {
	return func() int {
		if r.Intn(2) == 0 {
			return 3
		}
		return 4
	}
}

// Ranker orders feed candidates. Hot mode applies the first-screen
// template and utility injection; latest and top are plain sorts.
type Ranker struct {
	firstScreenSize int
	cadence         Cadence
}

func NewRanker(firstScreenSize int, cadence Cadence) *Ranker {
	if firstScreenSize <= 0 {
		firstScreenSize = 7
	}
	return &Ranker{firstScreenSize: firstScreenSize, cadence: cadence}
}

// Rank returns a total ordering of items: every input item appears exactly
// once in the output. An empty input yields an empty ordering.
func (r *Ranker) Rank(items []domain.FeedItem, mode domain.SortMode, now time.Time) []domain.FeedItem {
	out := make([]domain.FeedItem, len(items))
	copy(out, items)

	switch mode {
	case domain.SortLatest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
		return out
	case domain.SortTop:
		sort.SliceStable(out, func(i, j int) bool {
			return topScore(out[i]) > topScore(out[j])
		})
		return out
	default:
		return r.rankHot(out, now)
	}
}

func topScore(item domain.FeedItem) int {
	return item.LikesCount + 2*item.CommentsCount
}

type scoredItem struct {
	item  domain.FeedItem
	score float64
}

func (r *Ranker) rankHot(items []domain.FeedItem, now time.Time) []domain.FeedItem {
	scored := make([]scoredItem, len(items))
	for i, item := range items {
		scored[i] = scoredItem{item: item, score: RankingScore(item, now)}
	}

	ordered := firstScreenOrder(scored)

	cut := r.firstScreenSize
	if cut > len(ordered) {
		cut = len(ordered)
	}
	firstScreen := ordered[:cut]
	tail := r.injectUtilities(ordered[cut:])

	out := make([]domain.FeedItem, 0, len(items))
	for _, s := range firstScreen {
		out = append(out, s.item)
	}
	for _, s := range tail {
		out = append(out, s.item)
	}
	return out
}

// firstScreenOrder builds the fixed template: campus update first, then
// the top meme/poll anchor, then the top article/note, then everything
// else by score. Ties keep the first item encountered.
func firstScreenOrder(scored []scoredItem) []scoredItem {
	remaining := make([]scoredItem, len(scored))
	copy(remaining, scored)
	ordered := make([]scoredItem, 0, len(scored))

	take := func(idx int) {
		ordered = append(ordered, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	for i, s := range remaining {
		if s.item.Type == domain.TypeCampusUpdate {
			take(i)
			break
		}
	}

	if idx := bestOf(remaining, isAnchor); idx >= 0 {
		take(idx)
	}
	if idx := bestOf(remaining, isUtility); idx >= 0 {
		take(idx)
	}

	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].score > remaining[j].score
	})
	return append(ordered, remaining...)
}

func isAnchor(t domain.ContentType) bool {
	return t == domain.TypeMeme || t == domain.TypePoll
}

func isUtility(t domain.ContentType) bool {
	return t == domain.TypeArticle || t == domain.TypeNote
}

// bestOf returns the index of the highest-scoring item matching the type
// predicate, or -1. Strict comparison keeps the earliest on ties.
func bestOf(scored []scoredItem, match func(domain.ContentType) bool) int {
	best := -1
	for i, s := range scored {
		if !match(s.item.Type) {
			continue
		}
		if best == -1 || s.score > scored[best].score {
			best = i
		}
	}
	return best
}

// injectUtilities interleaves article/note items into the score-ordered
// tail, one after every cadence() non-utility items. Leftover utilities
// go at the end.
func (r *Ranker) injectUtilities(tail []scoredItem) []scoredItem {
	var utilities, rest []scoredItem
	for _, s := range tail {
		if isUtility(s.item.Type) {
			utilities = append(utilities, s)
		} else {
			rest = append(rest, s)
		}
	}

	result := make([]scoredItem, 0, len(tail))
	utilityIdx := 0
	sinceLast := 0
	gap := r.nextGap()

	for _, s := range rest {
		result = append(result, s)
		sinceLast++

		if sinceLast >= gap && utilityIdx < len(utilities) {
			result = append(result, utilities[utilityIdx])
			utilityIdx++
			sinceLast = 0
			gap = r.nextGap()
		}
	}

	return append(result, utilities[utilityIdx:]...)
}

func (r *Ranker) nextGap() int {
	if r.cadence == nil {
		return 3
	}
	return r.cadence()
}
