package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

func findPostFiles(dir, fileExtension string) ([]string, error) {
	files := make([]string, 0, 100)

	myWalkFunc := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Printf("Error at %v: %v\n", path, err)
			return nil
		}

		if !info.IsDir() && strings.HasSuffix(path, fileExtension) {
			files = append(files, path)
		}
		return nil
	}

	err := filepath.Walk(dir, myWalkFunc)
	return files, err
}

// postHeader is the YAML frontmatter block at the top of a writing file.
type postHeader struct {
	Title  string    `yaml:"title"`
	Blurb  string    `yaml:"blurb"`
	Tags   []string  `yaml:"tags"`
	Date   time.Time `yaml:"date"`
	Draft  bool      `yaml:"draft"`
	Static bool      `yaml:"static"`
}

func extractDateFromFilename(filename string, dateStampFormat string) (*time.Time, error) {
	if len(filename) < len(dateStampFormat)+1 {
		return nil, fmt.Errorf("skipping %v, name too short", filename)
	}

	dateStr := filename[:len(dateStampFormat)]
	date, err := time.Parse(dateStampFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date stamp in %v", filename)
	}
	return &date, nil
}

func readPostFromFile(path, dateStampFormat string) (*post, error) {
	fileBaseName := filepath.Base(path)
	fileBaseName = fileBaseName[:len(fileBaseName)-len(filepath.Ext(fileBaseName))]

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var header postHeader
	body, err := frontmatter.Parse(f, &header)
	if err != nil {
		return nil, fmt.Errorf("frontmatter in %v: %w", path, err)
	}
	if header.Title == "" {
		return nil, fmt.Errorf("post %v has no title", path)
	}

	p := &post{
		Title:  header.Title,
		ID:     fileBaseName,
		Blurb:  header.Blurb,
		Path:   path,
		Body:   body,
		Tags:   make([]tag, 0, len(header.Tags)),
		Draft:  header.Draft,
		Static: header.Static,
	}

	for _, t := range header.Tags {
		if t = strings.TrimSpace(t); len(t) > 0 {
			p.Tags = append(p.Tags, tag(t))
		}
	}

	// Undated posts take their date from the filename stamp, except static
	// pages, which have no date at all.
	p.Date = header.Date
	if p.Date.IsZero() && !p.Static {
		date, err := extractDateFromFilename(fileBaseName, dateStampFormat)
		if err != nil {
			return nil, err
		}
		p.Date = *date
	}

	return p, nil
}
