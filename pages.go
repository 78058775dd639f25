package main

import (
	"fmt"
	"path"
)

// pageContext carries everything a tag listing template needs to render one
// page of results: which slice of the tag's posts to show, and where the
// neighboring pages live.
type pageContext struct {
	Tag          string
	CurrentPage  int
	PostsLimit   int
	PostsOffset  int
	PrevPagePath string
	NextPagePath string
	HasPrevPage  bool
	HasNextPage  bool
}

// pageRequest asks the site builder to materialize one page at Path using
// the named template component. Requests are never mutated after creation.
type pageRequest struct {
	Path      string
	Component string
	Context   pageContext
}

// pageRegistrar consumes page requests. The site implements it by rendering;
// tests implement it by recording.
type pageRegistrar interface {
	createPage(req pageRequest) error
}

const tagListComponent = "taglist.html"

// tagPages computes the paginated listing pages for every tag. A tag with T
// posts and page size perPage gets ceil(T/perPage) pages: page 0 at the
// tag's bare slug under baseDir, page n at slug/page/n. A tag with no posts
// gets no pages.
func tagPages(tags tagCounts, perPage int, baseDir string, slugs slugger) ([]pageRequest, error) {
	if perPage <= 0 {
		return nil, fmt.Errorf("posts per page must be positive, got %d", perPage)
	}

	requests := make([]pageRequest, 0, len(tags))
	for _, t := range tags {
		s, err := slugs.Normalize(t.Name)
		if err != nil {
			return nil, fmt.Errorf("slug for tag %q: %w", t.Name, err)
		}
		base := path.Join("/", baseDir, s)

		numPages := (t.TotalCount + perPage - 1) / perPage
		for i := 0; i < numPages; i++ {
			pagePath := base
			if i > 0 {
				pagePath = fmt.Sprintf("%s/page/%d", base, i)
			}

			// Pages 0 and 1 both point prev at the bare slug; page 0's is
			// unused since HasPrevPage is false there. Same for the next
			// path past the last page.
			prevPath := base
			if i > 1 {
				prevPath = fmt.Sprintf("%s/page/%d", base, i-1)
			}

			requests = append(requests, pageRequest{
				Path:      pagePath,
				Component: tagListComponent,
				Context: pageContext{
					Tag:          t.Name,
					CurrentPage:  i,
					PostsLimit:   perPage,
					PostsOffset:  i * perPage,
					PrevPagePath: prevPath,
					NextPagePath: fmt.Sprintf("%s/page/%d", base, i+1),
					HasPrevPage:  i != 0,
					HasNextPage:  i != numPages-1,
				},
			})
		}
	}

	return requests, nil
}

func registerTagPages(requests []pageRequest, r pageRegistrar) error {
	for _, req := range requests {
		if err := r.createPage(req); err != nil {
			return fmt.Errorf("page %v: %w", req.Path, err)
		}
	}
	return nil
}
