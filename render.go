package main

import (
	"bufio"
	"bytes"
	"html/template"
	"io"
	"log"
	"time"
)

func formatDate(d time.Time) string {
	return d.Format("January 2, 2006")
}

func formatDateShort(d time.Time) string {
	return d.Format("Jan 2, 2006")
}

type templateParam struct {
	PageTitle    string
	FrequentTags []tag
	// A short id such as a tag name or "About"
	FileId string
	FeedId string
}

func (t templateParam) IdIs(id string) bool {
	return t.FileId == id
}

type postTemplateParam struct {
	templateParam
	*post
	RenderedBody template.HTML
}

type postListTemplateParam struct {
	templateParam
	PageHeading    string
	Posts          []*post
	ShowTopicsLink bool
	// Pagination is nil for unpaginated lists such as the index page.
	Pagination *pageContext
}

type topicsTemplateParam struct {
	templateParam
	PostsByTag postsByTag
}

func (t topicsTemplateParam) Eq(a, b int) bool {
	return a == b
}

type renderer interface {
	render(in []byte) string
}

type templateEngine struct {
	toHtml        renderer
	templateDir   string
	templateCache map[string]*template.Template
}

func newTemplateEngine(r renderer, dir string) templateEngine {
	return templateEngine{
		toHtml:        r,
		templateDir:   dir,
		templateCache: make(map[string]*template.Template),
	}
}

func (te *templateEngine) renderPost(tp templateParam, p *post, w io.Writer) (string, error) {
	body := highlightCode(p.Body)

	renderedBody := template.HTML(te.toHtml.render(body))
	param := postTemplateParam{
		templateParam: tp,
		post:          p,
		RenderedBody:  renderedBody,
	}

	t := te.getTemplate("post.html")
	return string(renderedBody), t.Execute(w, param)
}

func (te *templateEngine) renderPostList(tp templateParam, posts []*post, showTopicsLink bool, pageHeading string, pagination *pageContext, templateName string, w io.Writer) error {
	param := postListTemplateParam{
		templateParam:  tp,
		PageHeading:    pageHeading,
		Posts:          posts,
		ShowTopicsLink: showTopicsLink,
		Pagination:     pagination,
	}
	t := te.getTemplate(templateName)
	return t.Execute(w, param)
}

func (te *templateEngine) renderTopics(tp templateParam, topics postsByTag, w io.Writer) error {
	param := topicsTemplateParam{
		templateParam: tp,
		PostsByTag:    topics,
	}
	t := te.getTemplate("topics.html")
	return t.Execute(w, param)
}

func (te *templateEngine) getTemplate(filename string) *template.Template {
	t, ok := te.templateCache[filename]
	if !ok {
		t = template.Must(template.ParseFiles(te.templateDir+"/global.html", te.templateDir+"/"+filename))
		te.templateCache[filename] = t
	}
	return t
}

// For now, just strip the highlighting directives.
func highlightCode(text []byte) []byte {
	newText := bytes.NewBuffer(make([]byte, 0, len(text)))
	r := bufio.NewReader(bytes.NewReader(text))

	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 && !bytes.HasPrefix(bytes.TrimSpace(line), []byte("!highlight")) {
			if _, werr := newText.Write(line); werr != nil {
				log.Fatal(werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	return newText.Bytes()
}
