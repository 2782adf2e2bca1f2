package rod

// Test pages for browser tests.
const (
	// SolidHTML fills the viewport with #336699.
	SolidHTML = `<!DOCTYPE html>
<html>
<head><style>html, body { margin: 0; height: 100%; background: #336699; }</style></head>
<body></body>
</html>`

	// SplitHTML paints the left half #FF0000 and the right half #0000FF.
	SplitHTML = `<!DOCTYPE html>
<html>
<head><style>
	html, body { margin: 0; height: 100%; }
	#left { position: fixed; left: 0; top: 0; width: 50%; height: 100%; background: #FF0000; }
	#right { position: fixed; right: 0; top: 0; width: 50%; height: 100%; background: #0000FF; }
</style></head>
<body><div id="left"></div><div id="right"></div></body>
</html>`
)
