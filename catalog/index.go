package catalog

import "github.com/google/btree"

// btreeDegree is the fan-out of the rule index.
const btreeDegree = 16

// ruleItem orders rules by (source name, target name, source key, target key).
type ruleItem struct {
	src, tgt       string
	srcKey, tgtKey string
	rule           *Rule
}

// Less implements btree.Item.
func (a ruleItem) Less(than btree.Item) bool {
	b := than.(ruleItem)
	if a.src != b.src {
		return a.src < b.src
	}
	if a.tgt != b.tgt {
		return a.tgt < b.tgt
	}
	if a.srcKey != b.srcKey {
		return a.srcKey < b.srcKey
	}

	return a.tgtKey < b.tgtKey
}

func itemFor(r *Rule) ruleItem {
	return ruleItem{
		src:    r.SourceName,
		tgt:    r.TargetName,
		srcKey: r.SourceVariant.Key(),
		tgtKey: r.TargetVariant.Key(),
		rule:   r,
	}
}

// pairRange visits every rule on (src, tgt) in key order.
func pairRange(t *btree.BTree, src, tgt string, visit func(*Rule)) {
	t.AscendGreaterOrEqual(ruleItem{src: src, tgt: tgt}, func(i btree.Item) bool {
		it := i.(ruleItem)
		if it.src != src || it.tgt != tgt {
			return false
		}
		visit(it.rule)

		return true
	})
}
