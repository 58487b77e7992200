package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `Post ID,Title,Publish time,Post type,Permalink,Reactions,Comments,Shares,Views,Reach,Total clicks
122169709076762707,Morning greetings from Juan365,01/15/2025 08:30,Photos,https://www.facebook.com/p/1,120,15,8,5000,4200,77
122169709076762708,New video drop,01/16/2025 19:05,Videos,https://www.facebook.com/p/2,300,42,30,25000,18000,410
122169709076762709,,,Links,https://www.facebook.com/p/3,-,,"1,024",0,,
`

func writeExport(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testLoader(dir string) *Loader {
	return &Loader{Dir: dir, MergedFile: "Juan365_MERGED_ALL.csv", HourOffset: 16}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeExport(t, dir, "export.csv", sampleExport)

	posts, err := testLoader(dir).LoadFile(path)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	first := posts[0]
	assert.Equal(t, "122169709076762707", first.ID)
	assert.Equal(t, "Morning greetings from Juan365", first.Message)
	assert.Equal(t, "Photos", first.Type)
	assert.Equal(t, 120, first.Reactions)
	assert.Equal(t, 15, first.Comments)
	assert.Equal(t, 8, first.Shares)
	assert.Equal(t, 5000, first.Views)
	assert.Equal(t, 4200, first.Reach)
	assert.Equal(t, 77, first.TotalClicks)
	assert.Equal(t, 143, first.Engagement)

	// 08:30 + 16h offset lands on the next day
	assert.Equal(t, time.Date(2025, 1, 16, 0, 30, 0, 0, time.UTC), first.PublishedAt)
}

func TestLoadFile_NumericCoercion(t *testing.T) {
	dir := t.TempDir()
	path := writeExport(t, dir, "export.csv", sampleExport)

	posts, err := testLoader(dir).LoadFile(path)
	require.NoError(t, err)

	// Dashes, blanks and grouped numbers
	third := posts[2]
	assert.Equal(t, 0, third.Reactions)
	assert.Equal(t, 0, third.Comments)
	assert.Equal(t, 1024, third.Shares)
	assert.Equal(t, 0, third.Reach)
	assert.Equal(t, "Links", third.Type)
	assert.False(t, third.HasTime())
}

func TestLoadFile_MissingPostIDColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeExport(t, dir, "bad.csv", "Title,Reactions\nhello,5\n")

	_, err := testLoader(dir).LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_NotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := testLoader(dir).LoadFile(filepath.Join(dir, "nope.csv"))
	assert.Error(t, err)
}

func TestPickFile_PrefersMerged(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "older.csv", sampleExport)
	merged := writeExport(t, dir, "Juan365_MERGED_ALL.csv", sampleExport)

	path, err := testLoader(dir).PickFile()
	require.NoError(t, err)
	assert.Equal(t, merged, path)
}

func TestPickFile_EmptyDir(t *testing.T) {
	dir := t.TempDir()
	_, err := testLoader(dir).PickFile()
	assert.Error(t, err)
}

func TestMerge_DeduplicatesByPostID(t *testing.T) {
	dir := t.TempDir()

	older := `Post ID,Title,Publish time,Post type,Permalink,Reactions,Comments,Shares,Views,Reach
post-1,Old title,01/10/2025 10:00,Photos,https://fb.com/1,10,1,0,100,90
post-2,Second,01/11/2025 11:00,Videos,https://fb.com/2,20,2,1,200,180
`
	newer := `Post ID,Title,Publish time,Post type,Permalink,Reactions,Comments,Shares,Views,Reach
post-1,Updated title,01/10/2025 10:00,Photos,https://fb.com/1,15,3,1,150,120
`
	oldPath := writeExport(t, dir, "a.csv", older)
	newPath := writeExport(t, dir, "b.csv", newer)

	// Force a later mtime on the newer file
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))
	now := time.Now()
	require.NoError(t, os.Chtimes(newPath, now, now))

	l := testLoader(dir)
	n, err := l.Merge()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	posts, err := l.LoadFile(filepath.Join(dir, l.MergedFile))
	require.NoError(t, err)
	require.Len(t, posts, 2)

	byID := map[string]Post{}
	for _, p := range posts {
		byID[p.ID] = p
	}
	assert.Equal(t, "Updated title", byID["post-1"].Message)
	assert.Equal(t, 15, byID["post-1"].Reactions)
	assert.Equal(t, "Second", byID["post-2"].Message)
}

func TestMerge_RoundTripsPublishTime(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "a.csv", sampleExport)

	l := testLoader(dir)
	_, err := l.Merge()
	require.NoError(t, err)

	posts, err := l.LoadFile(filepath.Join(dir, l.MergedFile))
	require.NoError(t, err)

	byID := map[string]Post{}
	for _, p := range posts {
		byID[p.ID] = p
	}
	assert.Equal(t,
		time.Date(2025, 1, 16, 0, 30, 0, 0, time.UTC),
		byID["122169709076762707"].PublishedAt)
}
