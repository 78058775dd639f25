// Inkwell is a static generator for a personal writings site: markdown
// files with YAML frontmatter in, an HTML tree out, with tag pages
// paginated by a configurable page size and Atom feeds per tag.
//
// To get started, write a site config (see example/inkwell.json) and
// provide your own templates.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/radovskyb/watcher"
)

var siteConfPath = flag.String("siteConfPath", "inkwell.json", "Path to the site configuration file")
var serve = flag.Bool("serve", false, "Start a localhost:9999 server for the site")
var watch = flag.Bool("watch", false, "Keep running and re-render the site on changes to the input directory.")
var drafts = flag.Bool("drafts", false, "Include posts with the 'draft' frontmatter flag.")

func main() {
	flag.Parse()

	conf := readConf(*siteConfPath)

	renderSite(conf, *drafts)

	if *watch && *serve {
		// Run watcher in background while serving
		go rerenderOnChange(conf, *drafts)
	}

	if *serve {
		serveSite(conf.OutDir)
	} else if *watch {
		// Watch mode without serve: block on the watcher
		rerenderOnChange(conf, *drafts)
	}
}

func renderSite(conf *SiteConf, drafts bool) {
	site, err := ReadSite(conf, drafts)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Writing site to " + conf.OutDir)
	if err = site.RenderAll(); err != nil {
		log.Fatal(err)
	}
	if err = site.CopyStaticFiles(); err != nil {
		log.Fatal(err)
	}
}

func serveSite(dir string) {
	port := ":9999"

	http.Handle("/", http.FileServer(http.Dir(dir)))
	log.Printf("Serving %v on %v.", dir, port)
	log.Fatal(http.ListenAndServe(port, nil))
}

func rerenderOnChange(conf *SiteConf, drafts bool) {
	log.Println("Watching " + conf.WritingDir + " for changes...")

	w := watcher.New()
	w.SetMaxEvents(1)

	go func() {
		for {
			select {
			case <-w.Event:
				renderSite(conf, drafts)
			case err := <-w.Error:
				log.Println(err)
			case <-w.Closed:
				return
			}
		}
	}()

	if err := w.AddRecursive(conf.WritingDir); err != nil {
		log.Fatalln(err)
	}

	if err := w.Start(time.Millisecond * 200); err != nil {
		log.Fatalln(err)
	}
}
