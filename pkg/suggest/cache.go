package suggest

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

const defaultMaxHotWords = 20000

// HotCache keeps the highest-frequency words in a separate patricia trie so
// short, common prefixes can be topped up without another full subtree walk
// over the main trie. Entries are evicted least-recently-used.
type HotCache struct {
	hotTrie     *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	minFreq     int
	maxWords    int
	mu          sync.RWMutex
}

// NewHotCache creates a cache bounded to maxWords entries.
func NewHotCache(maxWords int) *HotCache {
	if maxWords < 1 {
		maxWords = defaultMaxHotWords
	}
	return &HotCache{
		hotTrie:    patricia.NewTrie(),
		accessTime: make(map[string]int64, maxWords),
		maxWords:   maxWords,
		minFreq:    1,
	}
}

// Offer proposes a word for the cache. Words below the cache's frequency
// floor are ignored; when full, the least recently used entry is evicted.
func (hc *HotCache) Offer(word string, freq int) {
	if freq < hc.minFreq {
		return
	}
	hc.mu.Lock()
	defer hc.mu.Unlock()

	if len(hc.accessTime) >= hc.maxWords {
		if _, known := hc.accessTime[word]; !known {
			hc.evictLRU()
		}
	}
	hc.hotTrie.Set(patricia.Prefix(word), freq)
	hc.accessTime[word] = hc.nextAccessTime()
}

// Search returns cached words sharing lowerPrefix with frequency at or above
// minThreshold, marking each hit as recently used.
func (hc *HotCache) Search(lowerPrefix string, minThreshold int) []Suggestion {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	var results []Suggestion
	err := hc.hotTrie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		freq, ok := item.(int)
		if !ok {
			log.Errorf("unexpected hot cache item type %T for word %s", item, word)
			return nil
		}
		if freq < minThreshold {
			return nil
		}
		hc.accessTime[word] = hc.nextAccessTime()
		results = append(results, Suggestion{Word: word, Frequency: freq})
		return nil
	})
	if err != nil {
		log.Errorf("hot cache subtree visit: %v", err)
	}
	return results
}

// Stats reports cache occupancy and hit counters.
func (hc *HotCache) Stats() map[string]int {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	return map[string]int{
		"hotCacheWords": len(hc.accessTime),
		"maxHotWords":   hc.maxWords,
		"hotCacheHits":  int(hc.accessCount),
	}
}

func (hc *HotCache) nextAccessTime() int64 {
	hc.accessCount++
	return hc.accessCount
}

func (hc *HotCache) evictLRU() {
	var oldestWord string
	var oldestTime int64 = 1<<63 - 1

	for word, at := range hc.accessTime {
		if at < oldestTime {
			oldestTime = at
			oldestWord = word
		}
	}
	if oldestWord != "" {
		hc.hotTrie.Delete(patricia.Prefix(oldestWord))
		delete(hc.accessTime, oldestWord)
		log.Debugf("evicted %q from hot cache", oldestWord)
	}
}
