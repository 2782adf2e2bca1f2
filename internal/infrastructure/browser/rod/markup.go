package rod

import (
	"bytes"
	"fmt"
	"strconv"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const overlayID = "eyedropper-overlay"

func element(tag atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("render markup: %w", err)
	}
	return buf.String(), nil
}

// overlayMarkup is the session overlay: a full-viewport layer holding the
// size x size magnifier preview.
func overlayMarkup(size int) (string, error) {
	root := element(atom.Div, attr("id", overlayID), attr("class", "eyedropper-overlay"))
	root.AppendChild(element(atom.Img,
		attr("class", "eyedropper-magnifier"),
		attr("width", strconv.Itoa(size)),
		attr("height", strconv.Itoa(size)),
		attr("alt", ""),
	))
	return renderNode(root)
}

func toastMarkup(t output.Toast) (string, error) {
	class := "eyedropper-toast"
	if t.IsError {
		class += " eyedropper-toast-error"
	}
	root := element(atom.Div, attr("class", class), attr("role", "status"))

	if t.Swatch != "" {
		if c, err := entity.ParseHex(t.Swatch); err == nil {
			root.AppendChild(element(atom.Span,
				attr("class", "eyedropper-swatch"),
				attr("style", "background:"+c.ToHex()),
			))
		}
	}

	text := element(atom.Span, attr("class", "eyedropper-toast-text"))
	text.AppendChild(&html.Node{Type: html.TextNode, Data: t.Text})
	root.AppendChild(text)

	return renderNode(root)
}
