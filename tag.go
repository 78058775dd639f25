package main

import (
	"bytes"
	"cmp"
	"slices"
)

type tag string

func (t tag) String() string { return string(t) }

type tagWithPosts struct {
	Tag   tag
	Posts posts
}

func (t tagWithPosts) EarliestDateFormatted() string {
	return formatDateShort(t.Posts.earliestDate())
}

func (t tagWithPosts) LatestDateFormatted() string {
	return formatDateShort(t.Posts.latestDate())
}

// Posts grouped by tag. Create using groupByTag, which sorts by number of
// posts per tag, then by newest post.
type postsByTag []tagWithPosts

func (pt *postsByTag) addPost(t tag, p *post) {
	for i, existing := range *pt {
		if existing.Tag == t {
			existing.Posts = append(existing.Posts, p)
			(*pt)[i] = existing
			return
		}
	}

	newTagWithPosts := tagWithPosts{t, make(posts, 1, 10)}
	newTagWithPosts.Posts[0] = p
	*pt = append(*pt, newTagWithPosts)
}

func (pt postsByTag) get(t tag) posts {
	for _, existing := range pt {
		if existing.Tag == t {
			return existing.Posts
		}
	}
	return nil
}

func (pt postsByTag) String() string {
	b := new(bytes.Buffer)
	for _, t := range pt {
		b.WriteString(t.Tag.String())
		b.WriteString(": ")
		for i, p := range t.Posts {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Title)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Return the most frequent n tags.
func (pt postsByTag) frequentTags(n, minPosts int) []tag {
	frequent := make([]tag, 0, n)
	for i, t := range pt {
		if i == n || len(t.Posts) < minPosts {
			break
		}
		frequent = append(frequent, t.Tag)
	}

	return frequent
}

// tagCount is one row of the grouped count snapshot the tag page generator
// consumes.
type tagCount struct {
	Name       string
	TotalCount int
}

type tagCounts []tagCount

// counts reduces the grouping to the per-tag totals, keeping the order.
func (pt postsByTag) counts() tagCounts {
	counts := make(tagCounts, 0, len(pt))
	for _, t := range pt {
		counts = append(counts, tagCount{Name: t.Tag.String(), TotalCount: len(t.Posts)})
	}
	return counts
}

func groupByTag(ps posts) postsByTag {
	byTag := make(postsByTag, 0, 20)

	for _, p := range ps {
		for _, t := range p.Tags {
			byTag.addPost(t, p)
		}
	}

	// Order tags by the number of posts in them, then by newest post.
	slices.SortFunc(byTag, func(a, b tagWithPosts) int {
		// More posts = comes first (descending order)
		if c := cmp.Compare(len(b.Posts), len(a.Posts)); c != 0 {
			return c
		}
		// If equal post count, newer comes first
		return b.Posts.latestDate().Compare(a.Posts.latestDate())
	})

	return byTag
}
