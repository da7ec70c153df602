package mdpress

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rewriteRelativePaths converts relative image and link paths in an HTML
// body fragment to absolute file:// URLs resolved against sourceDir, so
// the renderer can load local assets. If sourceDir is empty, the fragment
// is returned unchanged.
//
// Only img[src] and a[href] are rewritten. URLs, anchors, and absolute
// paths are left alone, as are paths that would escape sourceDir.
func rewriteRelativePaths(fragment, sourceDir string) (string, error) {
	if sourceDir == "" {
		return fragment, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	bodyContext := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), bodyContext)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		rewriteNode(n, absSourceDir)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteNode walks the fragment tree and rewrites relative paths in place.
func rewriteNode(n *html.Node, sourceDir string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", sourceDir)
		case atom.A:
			rewriteAttr(n, "href", sourceDir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, sourceDir)
	}
}

// rewriteAttr rewrites a single attribute if it holds a relative path.
func rewriteAttr(n *html.Node, name, sourceDir string) {
	for i, attr := range n.Attr {
		if attr.Key != name || !isRelativePath(attr.Val) {
			continue
		}

		absPath := filepath.Join(sourceDir, attr.Val)

		// Leave paths that escape the source directory untouched.
		if !isPathUnderDir(absPath, sourceDir) {
			continue
		}

		n.Attr[i].Val = fileURL(absPath)
	}
}

// isRelativePath reports whether the value should be rewritten.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}

	// URLs and protocol-relative references stay as-is.
	if strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://") ||
		strings.HasPrefix(path, "file://") ||
		strings.HasPrefix(path, "data:") ||
		strings.HasPrefix(path, "mailto:") ||
		strings.HasPrefix(path, "//") {
		return false
	}

	// In-document anchors stay as-is.
	if strings.HasPrefix(path, "#") {
		return false
	}

	return !filepath.IsAbs(path)
}

// isPathUnderDir checks that absPath stays under dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// fileURL converts an absolute path to a file:// URL.
// filepath.ToSlash handles Windows backslashes.
func fileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
