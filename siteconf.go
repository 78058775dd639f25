package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

type SiteConf struct {
	Author, AuthorUri string
	BaseUrl           string
	SiteTitle         string

	TemplateDir string

	WritingDir                 string
	WritingFileExtension       string
	WritingFileDateStampFormat string
	StaticFilesDir             string

	OutDir     string
	TagsOutDir string

	PostsPerPage                  int
	MaxPostsOnIndex               int
	NumFrequentTags               int
	MinPostsForFrequentTags       int
	MaxAgeForFrequentTagsInMonths int
}

func readConf(fileName string) *SiteConf {
	rawConf, err := os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}

	conf := SiteConf{}

	if err = json.Unmarshal(rawConf, &conf); err != nil {
		log.Fatal(err)
	}

	// Populate with defaults
	if len(conf.StaticFilesDir) == 0 {
		conf.StaticFilesDir = filepath.Join(conf.WritingDir, "static")
	}
	if len(conf.TemplateDir) == 0 {
		conf.TemplateDir = "tmpl"
	}
	if len(conf.TagsOutDir) == 0 {
		conf.TagsOutDir = "tag"
	}
	if conf.PostsPerPage == 0 {
		conf.PostsPerPage = 10
	}
	if conf.PostsPerPage < 0 {
		log.Fatalf("PostsPerPage must be positive, got %d", conf.PostsPerPage)
	}

	// Normalize relative paths because the executable can be called from anywhere
	baseDir := filepath.Dir(fileName)
	conf.TemplateDir = normalizePath(conf.TemplateDir, baseDir)
	conf.WritingDir = normalizePath(conf.WritingDir, baseDir)
	conf.StaticFilesDir = normalizePath(conf.StaticFilesDir, baseDir)
	conf.OutDir = normalizePath(conf.OutDir, baseDir)

	conf.TemplateDir, err = filepath.Abs(conf.TemplateDir)
	if err != nil {
		log.Fatal(err)
	}

	return &conf
}

func normalizePath(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		absPath := filepath.Join(baseDir, path)
		log.Println("Normalizing ", path, " to ", absPath)
		return absPath
	}
	return path
}
