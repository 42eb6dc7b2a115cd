package model_test

import (
	"encoding/base64"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/refacto/pkg/domain/model"
)

func TestParseChangedBlocks(t *testing.T) {
	testCases := []struct {
		name   string
		patch  string
		blocks []string
	}{
		{
			name:   "two hunks",
			patch:  "@@ -1,2 +1,3 @@\n+a\n+b\n@@ -5,1 +6,1 @@\n+c\n",
			blocks: []string{"a\nb", "c"},
		},
		{
			name:   "context and removed lines are skipped",
			patch:  "@@ -1,3 +1,3 @@\n context\n-old\n+new\n context",
			blocks: []string{"new"},
		},
		{
			name:   "hunk without additions contributes no block",
			patch:  "@@ -1,2 +1,1 @@\n-gone\n@@ -9,1 +8,2 @@\n+x\n+y",
			blocks: []string{"x\ny"},
		},
		{
			name:   "additions before any hunk header",
			patch:  "+first\n@@ -1 +2 @@\n+second",
			blocks: []string{"first", "second"},
		},
		{
			name:   "empty patch",
			patch:  "",
			blocks: nil,
		},
		{
			name:   "added blank line is kept",
			patch:  "@@ -1 +1,3 @@\n+a\n+\n+b",
			blocks: []string{"a\n\nb"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, model.ParseChangedBlocks(tc.patch)).Equal(tc.blocks)
		})
	}
}

func TestCommitFileIsCandidate(t *testing.T) {
	testCases := []struct {
		name      string
		file      model.CommitFile
		candidate bool
	}{
		{"modified above threshold", model.CommitFile{Status: model.FileModified, Additions: 11}, true},
		{"added above threshold", model.CommitFile{Status: model.FileAdded, Additions: 20}, true},
		{"equal to threshold", model.CommitFile{Status: model.FileModified, Additions: 10}, false},
		{"removed", model.CommitFile{Status: model.FileRemoved, Additions: 100}, false},
		{"renamed", model.CommitFile{Status: model.FileRenamed, Additions: 100}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, tc.file.IsCandidate(10)).Equal(tc.candidate)
		})
	}
}

func TestFileContentDecode(t *testing.T) {
	t.Run("base64 content with line breaks", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte("package main\n\nfunc main() {}\n"))
		content := &model.FileContent{
			Content:  encoded[:10] + "\n" + encoded[10:],
			Encoding: "base64",
		}
		gt.V(t, gt.R1(content.Decode()).NoError(t)).Equal("package main\n\nfunc main() {}\n")
	})

	t.Run("plain content", func(t *testing.T) {
		content := &model.FileContent{Content: "raw"}
		gt.V(t, gt.R1(content.Decode()).NoError(t)).Equal("raw")
	})

	t.Run("broken base64", func(t *testing.T) {
		content := &model.FileContent{Content: "!!!", Encoding: "base64"}
		_, err := content.Decode()
		gt.Error(t, err)
	})
}

func TestFileRecordSnippets(t *testing.T) {
	rec := &model.FileRecord{Filename: "foo.py", Content: "full", Blocks: []string{"a", "b"}}
	gt.V(t, rec.Snippets()).Equal([]string{"full", "a", "b"})
	gt.True(t, rec.HasBlocks())

	empty := &model.FileRecord{Filename: "bar.py", Content: "full"}
	gt.V(t, empty.Snippets()).Equal([]string{"full"})
	gt.False(t, empty.HasBlocks())
}
