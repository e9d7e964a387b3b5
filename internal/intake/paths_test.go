package intake

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalPDF is enough of a PDF header for content sniffing.
const minimalPDF = "%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n"

var pngHeader = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestFromPath_SniffsContent(t *testing.T) {
	dir := t.TempDir()
	pdfPath := writeFile(t, dir, "lecture.pdf", []byte(minimalPDF))
	txtPath := writeFile(t, dir, "notes.txt", []byte("Eigenvalues and eigenvectors\n"))
	pngPath := writeFile(t, dir, "diagram.pdf", pngHeader)

	c, err := FromPath(pdfPath)
	require.NoError(t, err)
	assert.Equal(t, "lecture.pdf", c.Name)
	assert.Equal(t, domain.CategoryPDF, domain.ClassifyMediaType(c.MediaType))
	assert.Equal(t, int64(len(minimalPDF)), c.SizeBytes)

	c, err = FromPath(txtPath)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryText, domain.ClassifyMediaType(c.MediaType))

	c, err = FromPath(pngPath)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryUnknown, domain.ClassifyMediaType(c.MediaType),
		"a PNG renamed to .pdf is still a PNG")
}

func TestFromPath_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := FromPath(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)

	_, err = FromPath(dir)
	assert.Error(t, err)
}

func TestFromPaths_ExpandsDirectoriesInNaturalOrder(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "week")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "chapter10.txt", []byte("ten"))
	writeFile(t, sub, "chapter2.txt", []byte("two"))
	writeFile(t, sub, "chapter1.txt", []byte("one"))
	require.NoError(t, os.Mkdir(filepath.Join(sub, "nested"), 0o755))
	single := writeFile(t, dir, "intro.pdf", []byte(minimalPDF))

	cands, err := FromPaths([]string{single, sub})
	require.NoError(t, err)

	var names []string
	for _, c := range cands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"intro.pdf", "chapter1.txt", "chapter2.txt", "chapter10.txt"}, names)
}

func TestParseDropped(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"single path", "/tmp/notes.pdf", []string{"/tmp/notes.pdf"}},
		{"escaped spaces", `/tmp/my\ notes.pdf /tmp/b.txt`, []string{"/tmp/my notes.pdf", "/tmp/b.txt"}},
		{"single quoted", `'/tmp/my notes.pdf' '/tmp/b.txt'`, []string{"/tmp/my notes.pdf", "/tmp/b.txt"}},
		{"double quoted", `"/tmp/a b.pdf"`, []string{"/tmp/a b.pdf"}},
		{"file uri", "file:///tmp/Lecture%201.pdf", []string{"/tmp/Lecture 1.pdf"}},
		{"newline separated", "/a.pdf\n/b.pdf\n", []string{"/a.pdf", "/b.pdf"}},
		{"blank", "   ", nil},
		{"windows quoted and bare", `"C:\Users\me\notes.pdf" C:\tmp\a.pdf`, []string{`C:\Users\me\notes.pdf`, `C:\tmp\a.pdf`}},
		{"windows path with spaces", `"D:\Study Notes\week 1.docx"`, []string{`D:\Study Notes\week 1.docx`}},
		{"unc path", `\\server\share\syllabus.pdf`, []string{`\\server\share\syllabus.pdf`}},
		{"unbalanced quote", `'/tmp/a.pdf /tmp/b.pdf`, []string{"'/tmp/a.pdf", "/tmp/b.pdf"}},
		{"ampersand", `/tmp/q&a.pdf`, []string{"/tmp/q&a.pdf"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDropped(tc.in)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
