package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/mread"
	"github.com/fwojciec/mread/fs"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	if err := mread.ValidateURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "Warning: %s\n", mread.ErrorMessage(err))
		if !c.Yes && !confirm(deps) {
			return fmt.Errorf("aborted")
		}
	}

	fmt.Fprintf(deps.Stdout, "Fetching article from %s...\n", c.URL)
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mread.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Parsing article content...")
	article, err := deps.Parser.Parse(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mread.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Rendering article...")
	content, err := deps.Renderer.Render(article)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error rendering: %v\n", err)
		return err
	}

	fmt.Fprintln(deps.Stdout, "Saving article...")
	path, err := deps.Store.Save(deps.Ctx, fs.Filename(article.Title, c.URL, deps.Ext), content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error saving article: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Article saved to: %s\n", path)

	if deps.Opener != nil {
		fmt.Fprintln(deps.Stdout, "Opening article in browser...")
		if err := deps.Opener.Open(path); err != nil {
			fmt.Fprintf(deps.Stderr, "Warning: could not open browser: %v\n", err)
			fmt.Fprintf(deps.Stdout, "Please open manually: %s\n", path)
		}
	}

	fmt.Fprintln(deps.Stdout, "Done!")
	return nil
}

// confirm asks whether to continue with a non-Medium URL. Only "y" or "yes"
// counts as consent.
func confirm(deps *Dependencies) bool {
	fmt.Fprint(deps.Stdout, "Continue anyway? (y/N): ")
	if deps.Stdin == nil {
		return false
	}
	line, err := bufio.NewReader(deps.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
