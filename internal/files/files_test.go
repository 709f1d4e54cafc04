package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"transcript.pdf", "transcript.pdf"},
		{"../../etc/passwd", "passwd"},
		{"my essay draft.docx", "my_essay_draft.docx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFileName(tt.in))
	}
}

func TestSaveAndDelete(t *testing.T) {
	st := New(t.TempDir())

	rel, size, err := st.Save("student-1", "transcript", "grades.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), size)
	assert.True(t, strings.HasPrefix(rel, "student-1"+string(filepath.Separator)))

	_, err = os.Stat(filepath.Join(st.Dir, rel))
	require.NoError(t, err)

	require.NoError(t, st.Delete(rel))
	_, err = os.Stat(filepath.Join(st.Dir, rel))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveRejectsForbiddenExtension(t *testing.T) {
	st := New(t.TempDir())
	for _, name := range []string{"virus.exe", "script.SH", "payload.js"} {
		_, _, err := st.Save("s", "media", name, strings.NewReader("x"))
		assert.Error(t, err, name)
	}
}

func TestDeleteRejectsTraversal(t *testing.T) {
	st := New(t.TempDir())
	err := st.Delete("../outside.txt")
	assert.Error(t, err)
}
