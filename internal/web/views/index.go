// Package views renders the editor's HTML shell. The page embeds the floor
// snapshot as JSON and a small client that draws the grid on a canvas and
// follows patch envelopes over the websocket stream.
package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/buildmode/floorgrid/internal/protocol"
)

// IndexPage renders the editor page for one floor snapshot.
func IndexPage(snapshot protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Floor Grid Editor - floor %d</title>
<style>
body { font-family: monospace; background: #1b1b1f; color: #d8d8d8; margin: 1rem; }
#board { border: 1px solid #555; }
#tools button.active { background: #3a6; }
</style>
</head>
<body>
<h1>Floor %d (%dx%d)</h1>
<div id="tools">
<button data-tool="PlaceWall">wall</button>
<button data-tool="RemoveWall">erase wall</button>
<button data-tool="PlaceObject">object</button>
<button data-tool="RemoveObject">erase object</button>
</div>
<canvas id="board" width="%d" height="%d"></canvas>
<pre id="status"></pre>
`,
			snapshot.FloorIndex, snapshot.FloorIndex, snapshot.MapWidth, snapshot.MapHeight,
			snapshot.MapWidth*24, snapshot.MapHeight*24); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<script id="snapshot" type="application/json">`); err != nil {
			return err
		}
		encoder := json.NewEncoder(w)
		if err := encoder.Encode(snapshot); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</script>
<script src="/static/editor.js"></script>
</body>
</html>
`); err != nil {
			return err
		}
		return nil
	})
}
