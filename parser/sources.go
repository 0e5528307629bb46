package parser

import "strings"

const (
	googlePlayNameXPath   = `//*[@id="body-content"]/div[1]/div[1]/div/div[1]/div[2]/div[1]/div/text()`
	googlePlayAuthorXPath = `//*[@id="body-content"]/div[1]/div[1]/div/div[1]/div[2]/div[2]/a/span/text()`

	iTunesNameXPath   = `//*[@id="title"]/div[1]/h1/text()`
	iTunesAuthorXPath = `//*[@id="title"]/div[1]/h2/text()`

	windowsPhoneNameXPath   = `//*[@id="application"]/h1/text()`
	windowsPhoneAuthorXPath = `//*[@id="publisher"]/a/text()`
)

// GooglePlay extracts Google Play store pages
type GooglePlay struct {
	page *Page
}

func (g GooglePlay) Name() (string, error) {
	return firstOf("google play name",
		func() (string, bool) { return g.page.XPathText(googlePlayNameXPath) },
		func() (string, bool) { return g.page.CSSText("h1[itemprop='name']") },
		func() (string, bool) { return g.page.MetaContent("og:title") },
	)
}

func (g GooglePlay) Author() (string, error) {
	return firstOf("google play author",
		func() (string, bool) { return g.page.XPathText(googlePlayAuthorXPath) },
		func() (string, bool) { return g.page.CSSText("a[itemprop='author'] span, [itemprop='author'] [itemprop='name']") },
	)
}

// AppleITunes extracts iTunes App Store pages
type AppleITunes struct {
	page *Page
}

func (a AppleITunes) Name() (string, error) {
	return firstOf("itunes name",
		func() (string, bool) { return a.page.XPathText(iTunesNameXPath) },
		func() (string, bool) { return a.page.MetaContent("og:title") },
	)
}

// Author strips the "By " prefix iTunes puts in front of developer names
func (a AppleITunes) Author() (string, error) {
	author, err := firstOf("itunes author",
		func() (string, bool) { return a.page.XPathText(iTunesAuthorXPath) },
	)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(author, "By ", ""), nil
}

// WindowsPhone extracts Windows Phone store pages
type WindowsPhone struct {
	page *Page
}

func (w WindowsPhone) Name() (string, error) {
	return firstOf("windows phone name",
		func() (string, bool) { return w.page.XPathText(windowsPhoneNameXPath) },
		func() (string, bool) { return w.page.MetaContent("og:title") },
	)
}

func (w WindowsPhone) Author() (string, error) {
	return firstOf("windows phone author",
		func() (string, bool) { return w.page.XPathText(windowsPhoneAuthorXPath) },
	)
}
