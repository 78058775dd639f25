package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	atom "github.com/thomas11/atomgenerator"
)

func (s *Site) RenderAtom() error {
	filePath := filepath.Join(s.conf.OutDir, "index.xml")
	err := s.renderAndSaveFeed(s.conf.SiteTitle, "", filePath, s.posts)
	if err != nil {
		return err
	}

	return s.renderAndSaveTagFeeds()
}

func (s *Site) renderFeed(title, relUrl string, ps posts) ([]byte, error) {
	feedUrl := s.conf.BaseUrl
	if len(relUrl) > 0 {
		if relUrl[0] == '/' {
			relUrl = relUrl[1:]
		}
		feedUrl += relUrl
	}

	feed := atom.Feed{
		Title:   title,
		Link:    feedUrl,
		PubDate: time.Now(),
	}
	feed.AddAuthor(atom.Author{
		Name: s.conf.Author,
		Uri:  s.conf.AuthorUri,
	})

	for _, p := range ps {
		if p.Static {
			continue
		}
		feed.AddEntry(s.entryForPost(p))
	}

	errs := feed.Validate()
	if len(errs) > 0 {
		log.Println("Atom feed is not valid!")
		for _, e := range errs {
			log.Println(e.Error())
		}
		return nil, errs[0]
	}

	return feed.GenXml()
}

func (s *Site) entryForPost(p *post) *atom.Entry {
	e := &atom.Entry{
		Title:       p.Title,
		Description: p.Blurb,
		Link:        s.conf.BaseUrl + p.ID + ".html",
		PubDate:     p.Date,
	}

	for _, t := range p.Tags {
		e.AddCategory(atom.Category{Term: string(t)})
	}

	if renderedBody, ok := s.renderCache[p.ID]; ok {
		e.Content = renderedBody
	}

	return e
}

func (s *Site) renderAndSaveFeed(title, relUrl, filePath string, ps posts) error {
	atomXml, err := s.renderFeed(title, relUrl, ps)
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, atomXml, os.FileMode(0664))
}

// One feed per tag, next to the tag's first listing page.
func (s *Site) renderAndSaveTagFeeds() error {
	for _, tagPosts := range s.byTag {
		tagSlug, err := s.slugs.Normalize(tagPosts.Tag.String())
		if err != nil {
			return err
		}

		title := s.conf.SiteTitle + ` Tag "` + tagPosts.Tag.String() + `."`
		urlPath := s.conf.TagsOutDir + "/" + tagSlug + "/"
		filePath := filepath.Join(s.conf.OutDir, s.conf.TagsOutDir, tagSlug+".xml")

		if err := os.MkdirAll(filepath.Dir(filePath), os.FileMode(0775)); err != nil {
			return err
		}
		if err := s.renderAndSaveFeed(title, urlPath, filePath, tagPosts.Posts); err != nil {
			return err
		}
	}
	return nil
}
