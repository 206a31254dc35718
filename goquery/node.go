// Package goquery implements drugstock.Node and drugstock.Extractor on top
// of github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/drugstock/drugstock"
	"golang.org/x/net/html"
)

// Ensure node implements drugstock.Node at compile time.
var _ drugstock.Node = node{}

// matchers caches compiled selectors. The extractor reuses the same small
// set of selectors on every page.
var matchers sync.Map // map[string]goquery.Matcher

// compile returns the cascadia matcher for selector. Invalid selectors
// match nothing, as with goquery's string-based lookups.
func compile(selector string) goquery.Matcher {
	if m, ok := matchers.Load(selector); ok {
		return m.(goquery.Matcher)
	}

	var m goquery.Matcher = noMatch{}
	if sel, err := cascadia.Compile(selector); err == nil {
		m = sel
	}
	matchers.Store(selector, m)
	return m
}

type noMatch struct{}

func (noMatch) Match(*html.Node) bool { return false }
func (noMatch) MatchAll(*html.Node) []*html.Node { return nil }
func (noMatch) Filter([]*html.Node) []*html.Node { return nil }

// Parse parses an HTML document and returns its root node.
func Parse(htmlText string) (drugstock.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}
	return node{sel: doc.Selection}, nil
}

type node struct {
	sel *goquery.Selection
}

func (n node) Find(selector string) (drugstock.Node, bool) {
	found := n.sel.FindMatcher(compile(selector)).First()
	if found.Length() == 0 {
		return nil, false
	}
	return node{sel: found}, true
}

func (n node) FindAll(selector string) []drugstock.Node {
	return wrap(n.sel.FindMatcher(compile(selector)))
}

func (n node) Children(selector string) []drugstock.Node {
	return wrap(n.sel.ChildrenMatcher(compile(selector)))
}

func (n node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n node) HasClass(class string) bool {
	return n.sel.HasClass(class)
}

func (n node) Text() string {
	return n.sel.Text()
}

func (n node) Without(selector string) drugstock.Node {
	clone := n.sel.Clone()
	clone.FindMatcher(compile(selector)).Remove()
	return node{sel: clone}
}

func wrap(sel *goquery.Selection) []drugstock.Node {
	nodes := make([]drugstock.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, node{sel: s})
	})
	return nodes
}
