package main

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func mkPost(title string, date time.Time, tags ...string) *post {
	p := &post{Title: title, ID: title, Date: date}
	for _, t := range tags {
		p.Tags = append(p.Tags, tag(t))
	}
	return p
}

func day(n int) time.Time {
	return time.Date(2024, time.January, n, 0, 0, 0, 0, time.UTC)
}

func TestGroupByTagOrdering(t *testing.T) {
	ps := posts{
		mkPost("a", day(1), "go", "testing"),
		mkPost("b", day(2), "go"),
		mkPost("c", day(3), "go", "unix"),
	}

	byTag := groupByTag(ps)

	if len(byTag) != 3 {
		t.Fatalf("expected 3 tags, got %d", len(byTag))
	}
	if byTag[0].Tag != "go" {
		t.Fatalf("expected go first (most posts), got %v", byTag[0].Tag)
	}
	// unix (newest post Jan 3) before testing (newest post Jan 1)
	if byTag[1].Tag != "unix" || byTag[2].Tag != "testing" {
		t.Fatalf("expected tie broken by newest post, got %v then %v", byTag[1].Tag, byTag[2].Tag)
	}
}

func TestCounts(t *testing.T) {
	ps := posts{
		mkPost("a", day(1), "go"),
		mkPost("b", day(2), "go"),
		mkPost("c", day(3), "unix"),
	}

	got := groupByTag(ps).counts()
	want := tagCounts{
		{Name: "go", TotalCount: 2},
		{Name: "unix", TotalCount: 1},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	ps := posts{
		mkPost("a", day(1), "go"),
		mkPost("b", day(2), "unix"),
	}

	byTag := groupByTag(ps)
	if got := byTag.get("go"); len(got) != 1 || got[0].Title != "a" {
		t.Fatalf("unexpected posts for go: %v", got)
	}
	if got := byTag.get("nope"); got != nil {
		t.Fatalf("expected nil for unknown tag, got %v", got)
	}
}

func TestFrequentTags(t *testing.T) {
	ps := posts{
		mkPost("a", day(1), "go"),
		mkPost("b", day(2), "go"),
		mkPost("c", day(3), "go"),
		mkPost("d", day(4), "unix"),
		mkPost("e", day(5), "unix"),
		mkPost("f", day(6), "misc"),
	}

	byTag := groupByTag(ps)

	got := byTag.frequentTags(5, 2)
	if len(got) != 2 || got[0] != "go" || got[1] != "unix" {
		t.Fatalf("expected [go unix], got %v", got)
	}

	if got := byTag.frequentTags(1, 1); len(got) != 1 || got[0] != "go" {
		t.Fatalf("expected [go] with n=1, got %v", got)
	}
}

func TestPruneOlderThan(t *testing.T) {
	ps := posts{
		mkPost("old", day(1)),
		mkPost("new", day(20)),
	}

	kept := ps.pruneOlderThan(day(10))
	if len(kept) != 1 || kept[0].Title != "new" {
		t.Fatalf("expected only the newer post, got %v", kept)
	}
}
