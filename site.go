package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/otiai10/copy"
)

type Site struct {
	posts       posts
	byTag       postsByTag
	conf        *SiteConf
	slugs       slugger
	engine      templateEngine
	globalTP    templateParam
	renderCache map[string]string
}

func ReadSite(conf *SiteConf, drafts bool) (*Site, error) {
	files, err := findPostFiles(conf.WritingDir, conf.WritingFileExtension)
	if err != nil {
		return nil, err
	}

	thisSite := Site{
		posts:       make(posts, 0, 100),
		conf:        conf,
		slugs:       defaultSlugger(),
		renderCache: make(map[string]string),
	}

	for _, f := range files {
		p, err := readPostFromFile(f, conf.WritingFileDateStampFormat)
		if err != nil {
			return nil, err
		}
		if drafts || !p.Draft {
			thisSite.posts = append(thisSite.posts, p)
		}
	}

	// Order posts by date, newest first.
	slices.SortFunc(thisSite.posts, func(a, b *post) int { return b.Date.Compare(a.Date) })

	thisSite.byTag = groupByTag(thisSite.posts)

	return &thisSite, nil
}

func (s *Site) RenderHtml() error {
	s.engine = newTemplateEngine(newMarkdownRenderer(), s.conf.TemplateDir)

	if err := os.MkdirAll(s.conf.OutDir, os.FileMode(0775)); err != nil {
		return err
	}

	// Create a global template parameter holder. We'll re-use it for all
	// pages, overwriting the title.
	maxAgeForFrequentTagsInMonths := s.conf.MaxAgeForFrequentTagsInMonths
	if maxAgeForFrequentTagsInMonths == 0 {
		maxAgeForFrequentTagsInMonths = 24
	}

	minPostDate := time.Now().AddDate(0, -maxAgeForFrequentTagsInMonths, 0)
	postsRecentEnoughForFrequentTags := s.posts.pruneOlderThan(minPostDate)
	s.globalTP = templateParam{
		FrequentTags: groupByTag(postsRecentEnoughForFrequentTags).frequentTags(
			s.conf.NumFrequentTags,
			s.conf.MinPostsForFrequentTags),
	}

	// Render the posts.
	for _, p := range s.posts {
		outHtmlName := filepath.Join(s.conf.OutDir, p.ID+".html")
		var b bytes.Buffer
		s.globalTP.PageTitle = p.Title
		s.globalTP.FeedId = "index"
		s.globalTP.FileId = p.ID
		renderedBody, err := s.engine.renderPost(s.globalTP, p, &b)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outHtmlName, b.Bytes(), os.FileMode(0664)); err != nil {
			return err
		}

		s.renderCache[p.ID] = renderedBody
	}

	// Render the paginated tag pages. The generator computes one request
	// per (tag, page) pair from the grouped counts; createPage is the
	// registrar that materializes them.
	requests, err := tagPages(s.byTag.counts(), s.conf.PostsPerPage, s.conf.TagsOutDir, s.slugs)
	if err != nil {
		return err
	}
	if err := registerTagPages(requests, s); err != nil {
		return err
	}

	// Render the topics/tags overview page.
	var b bytes.Buffer
	s.globalTP.PageTitle = "Topics"
	s.globalTP.FeedId = "index"
	s.globalTP.FileId = "topics"
	if err := s.engine.renderTopics(s.globalTP, s.byTag, &b); err != nil {
		return err
	}
	outHtmlName := filepath.Join(s.conf.OutDir, s.globalTP.FileId+".html")
	if err := os.WriteFile(outHtmlName, b.Bytes(), os.FileMode(0664)); err != nil {
		return err
	}

	// Render index.html with the last MaxPostsOnIndex posts.
	postsForIndex := s.posts
	haveMorePosts := s.conf.MaxPostsOnIndex > 0 && len(s.posts) > s.conf.MaxPostsOnIndex
	if haveMorePosts {
		postsForIndex = postsForIndex[:s.conf.MaxPostsOnIndex]
	}
	s.globalTP.PageTitle = s.conf.SiteTitle
	s.globalTP.FeedId = "index"
	s.globalTP.FileId = "index"
	outHtmlName = filepath.Join(s.conf.OutDir, s.globalTP.FileId+".html")
	return s.renderPostsListToFile(postsForIndex, outHtmlName, s.globalTP, haveMorePosts, "", nil, "list.html")
}

// createPage implements pageRegistrar. One request becomes one listing page
// at <OutDir>/<Path>/index.html, showing the request's offset/limit window
// of the tag's posts.
func (s *Site) createPage(req pageRequest) error {
	tagPosts := s.byTag.get(tag(req.Context.Tag))

	start := req.Context.PostsOffset
	if start > len(tagPosts) {
		start = len(tagPosts)
	}
	end := start + req.Context.PostsLimit
	if end > len(tagPosts) {
		end = len(tagPosts)
	}

	outDir := filepath.Join(s.conf.OutDir, filepath.FromSlash(strings.TrimPrefix(req.Path, "/")))
	if err := os.MkdirAll(outDir, os.FileMode(0775)); err != nil {
		return err
	}

	tagSlug, err := s.slugs.Normalize(req.Context.Tag)
	if err != nil {
		return err
	}

	tp := s.globalTP
	tp.PageTitle = req.Context.Tag
	if req.Context.CurrentPage > 0 {
		tp.PageTitle = fmt.Sprintf("%s, page %d", req.Context.Tag, req.Context.CurrentPage+1)
	}
	tp.FeedId = tagSlug
	tp.FileId = tagSlug

	outHtmlName := filepath.Join(outDir, "index.html")
	return s.renderPostsListToFile(tagPosts[start:end], outHtmlName, tp, false, req.Context.Tag, &req.Context, req.Component)
}

func (s *Site) renderPostsListToFile(ps []*post, path string, tp templateParam, showTopicsLink bool, pageHeading string, pagination *pageContext, templateName string) error {
	outFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer outFile.Close()

	return s.engine.renderPostList(tp, ps, showTopicsLink, pageHeading, pagination, templateName, outFile)
}

func (s *Site) RenderAll() error {
	if err := s.RenderHtml(); err != nil {
		return err
	}
	return s.RenderAtom()
}

func (s *Site) CopyStaticFiles() error {
	srcDir := s.conf.StaticFilesDir
	dirName := filepath.Base(srcDir)
	dest := filepath.Join(s.conf.OutDir, dirName)
	log.Println("Recursively copying ", srcDir, " to ", dest)
	return copy.Copy(srcDir, dest)
}
