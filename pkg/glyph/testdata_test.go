package glyph

import (
	"os"
	"path/filepath"
	"testing"
)

const wordSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 -1000 900 1200">
  <path d="M 100 0 L 800 0 L 800 700 Z" transform="scale(1,-1)" />
</svg>`

const syllableSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="-15 -15 130 230">
  <g id="ma" transform="translate(10,20)">
    <path d="M 0 0 L 100 0 L 100 200 Z" />
  </g>
</svg>`

const cartoucheSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" viewBox="0 0 300 100">
  <g inkscape:label="left"><path d="M 0 0 H 20 V 100 H 0 Z" /></g>
  <g inkscape:label="center" transform="translate(20,0)"><path d="M 0 0 H 100 M 0 100 H 100" /></g>
  <g id="right"><path d="M 120 0 h 30 v 100 h -30 z" /></g>
</svg>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
