package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocivil/internal/engine"
	"github.com/alexiusacademia/gocivil/internal/sni"
)

func designBeam(t *testing.T) *engine.Result {
	t.Helper()
	res, err := engine.Design(engine.Request{
		Name:     "B1",
		Material: engine.MaterialSpec{ConcreteGrade: "K-250", SteelGrade: "BjTS-420"},
		Geometry: engine.Geometry{Span: 5, FloorCount: 1},
		Support:  sni.SimplySupported,
		Loads:    engine.LoadInputs{DeadLoad: 10, LiveLoad: 5},
		Seismic:  sni.SeismicModerate,
	})
	require.NoError(t, err)
	return res
}

func designColumn(t *testing.T) *engine.Result {
	t.Helper()
	res, err := engine.Design(engine.Request{
		Material: engine.MaterialSpec{ConcreteGrade: "K-300", SteelGrade: "BjTS-420"},
		Geometry: engine.Geometry{Span: 5, FloorCount: 2},
		Element:  sni.Column,
	})
	require.NoError(t, err)
	return res
}

func TestBuild_Beam(t *testing.T) {
	doc := Build(designBeam(t))
	assert.Equal(t, "B1", doc.Title)
	require.Len(t, doc.Sections, 5)
	assert.Equal(t, "Section", doc.Sections[1].Title)
	assert.Equal(t, "200 x 350 mm", doc.Sections[1].Rows[0].Value)
}

func TestBuild_Column(t *testing.T) {
	doc := Build(designColumn(t))
	assert.Equal(t, "Column Design", doc.Title)
	require.Len(t, doc.Sections, 2)
	assert.Empty(t, doc.Notes)
}

func TestMarkdown(t *testing.T) {
	md := Build(designBeam(t)).Markdown()
	assert.True(t, strings.HasPrefix(md, "# B1\n"))
	assert.Contains(t, md, "## Flexure")
	assert.Contains(t, md, "| b x h | 200 x 350 mm |")
}

func TestMarkdown_Notes(t *testing.T) {
	doc := Document{Title: "T", Notes: []string{"check shear"}}
	assert.Contains(t, doc.Markdown(), "## Notes\n\n- check shear\n")
}

func TestHTML(t *testing.T) {
	page, err := Build(designBeam(t)).HTML()
	require.NoError(t, err)
	assert.Contains(t, page, "<title>B1</title>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<h2>Shear</h2>")
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	doc := Build(designBeam(t))
	doc.Notes = append(doc.Notes, "ρ limited to ρmax; φMn ≥ Mu")
	require.NoError(t, doc.PDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Build(designColumn(t)).Write(&buf, "docx"))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	doc := Build(designColumn(t))
	for _, name := range []string{"c1.md", "c1.html", "out/c1.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, doc.WriteFile(path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
	assert.Error(t, doc.WriteFile(filepath.Join(dir, "c1.txt")))
}
