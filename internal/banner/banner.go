// Package banner prints the launcher's startup and shutdown text.
package banner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fatih/color"

	"github.com/f4ah6o/meowmi-server/internal/profile"
)

const ruleWidth = 40

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	urlColor     = color.New(color.FgGreen)
	hintColor    = color.New(color.Faint)
)

// Startup writes the greeting for p. pageTitle is the <title> of the served
// index page and may be empty.
func Startup(w io.Writer, p profile.Profile, url, pageTitle string) error {
	var b strings.Builder
	switch p.Banner {
	case profile.BannerFramed:
		framed(&b, p, url, pageTitle)
	default:
		fmt.Fprintf(&b, "Starting server at %s\n", urlColor.Sprint(url))
		fmt.Fprintln(&b, hintColor.Sprint("Press Ctrl+C to stop the server"))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func framed(b *strings.Builder, p profile.Profile, url, pageTitle string) {
	rule := strings.Repeat("=", ruleWidth)

	heading := p.Title
	if p.Icon != "" {
		heading = p.Icon + " " + heading
	}
	fmt.Fprintf(b, "\n%s\n", headingColor.Sprint(heading))
	if pageTitle != "" {
		fmt.Fprintf(b, "Serving: %s\n", pageTitle)
	}
	fmt.Fprintln(b, rule)
	fmt.Fprintf(b, "Server running at: %s\n", urlColor.Sprint(url))
	fmt.Fprintln(b, "\nOpen your browser and go to:")
	fmt.Fprintf(b, "  → %s\n", urlColor.Sprint(url))
	fmt.Fprintln(b, "\n"+hintColor.Sprint("Press Ctrl+C to stop the server"))
	fmt.Fprintln(b, rule+"\n")
}

// Shutdown writes p's stop message.
func Shutdown(w io.Writer, p profile.Profile) error {
	_, err := fmt.Fprintln(w, p.StopMessage)
	return err
}

// PageTitle returns the trimmed <title> of root/index.html, or "" when the
// file is missing or has no title.
func PageTitle(root string) string {
	f, err := os.Open(filepath.Join(root, "index.html"))
	if err != nil {
		return ""
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Find("head title").First().Text()), " ")
}
