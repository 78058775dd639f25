package main

import (
	"github.com/russross/blackfriday/v2"
)

func newMarkdownRenderer() renderer {
	flags := blackfriday.UseXHTML |
		blackfriday.Smartypants |
		blackfriday.SmartypantsFractions |
		blackfriday.SmartypantsLatexDashes

	extensions := blackfriday.NoIntraEmphasis |
		blackfriday.Tables |
		blackfriday.FencedCode |
		blackfriday.Autolink |
		blackfriday.Strikethrough

	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{Flags: flags})
	return &blackfridayHtmlRenderer{r, extensions}
}

type blackfridayHtmlRenderer struct {
	r          blackfriday.Renderer
	extensions blackfriday.Extensions
}

func (b *blackfridayHtmlRenderer) render(in []byte) string {
	out := blackfriday.Run(in,
		blackfriday.WithRenderer(b.r),
		blackfriday.WithExtensions(b.extensions))
	return string(out)
}
