package main

import (
	"bytes"
	"fmt"
	"time"
)

type post struct {
	Title, ID, Blurb string
	Date             time.Time
	Path             string
	Body             []byte
	Tags             []tag
	Draft            bool
	Static           bool
}

// Called from templates
func (p *post) FormatDate() string {
	return formatDate(p.Date)
}

// Called from templates
func (p *post) FormatDateShort() string {
	return formatDateShort(p.Date)
}

func (p *post) String() string {
	b := new(bytes.Buffer)
	b.WriteString("title: ")
	b.WriteString(p.Title)
	b.WriteString("\ndate: ")
	b.WriteString(p.Date.String())
	b.WriteString("\nblurb: ")
	b.WriteString(p.Blurb)
	b.WriteString("\ntags: ")
	fmt.Fprintln(b, p.Tags)

	body := p.Body
	if len(body) > 200 {
		body = append(body[:200], '.', '.', '.')
	}
	b.WriteString("\nbody: ")
	b.Write(body)

	return b.String()
}

type posts []*post

func (ps posts) earliestDate() time.Time {
	t := time.Now()
	for _, p := range ps {
		if p.Date.Before(t) {
			t = p.Date
		}
	}
	return t
}

func (ps posts) latestDate() time.Time {
	var t time.Time
	for _, p := range ps {
		if p.Date.After(t) {
			t = p.Date
		}
	}
	return t
}

func (ps posts) pruneOlderThan(from time.Time) posts {
	kept := make(posts, 0, len(ps))
	for _, p := range ps {
		if !p.Date.Before(from) {
			kept = append(kept, p)
		}
	}
	return kept
}
