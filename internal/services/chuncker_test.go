package services

import (
	"strings"
	"testing"
)

func TestChunkText_Empty(t *testing.T) {
	chunker := NewTextChunker()
	if chunks := chunker.ChunkText("", 1000, 200); len(chunks) != 0 {
		t.Errorf("got %d chunks for empty input", len(chunks))
	}
}

func TestChunkText_SingleParagraph(t *testing.T) {
	chunker := NewTextChunker()
	chunks := chunker.ChunkText("One short paragraph.", 1000, 200)
	if len(chunks) != 1 || chunks[0] != "One short paragraph." {
		t.Errorf("got %v", chunks)
	}
}

func TestChunkText_SplitsOnParagraphs(t *testing.T) {
	chunker := NewTextChunker()
	para := strings.Repeat("word ", 30)
	text := strings.TrimSpace(para) + "\n\n" + strings.TrimSpace(para) + "\n\n" + strings.TrimSpace(para)

	chunks := chunker.ChunkText(text, 200, 0)
	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want a split", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 200 {
			t.Errorf("chunk %d is %d bytes, want <= 200", i, len(chunk))
		}
	}
}

func TestChunkText_Overlap(t *testing.T) {
	chunker := NewTextChunker()
	para := strings.Repeat("alpha ", 30)
	text := strings.TrimSpace(para) + "\n\n" + strings.TrimSpace(para)

	chunks := chunker.ChunkText(text, 160, 20)
	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want at least 2", len(chunks))
	}

	tail := getLastNChars(chunks[0], 20)
	if !strings.HasPrefix(chunks[1], tail) {
		t.Errorf("chunk 2 does not start with the 20-char tail of chunk 1: %q vs %q", chunks[1], tail)
	}
}

func TestGetLastNChars(t *testing.T) {
	if got := getLastNChars("abcdef", 3); got != "def" {
		t.Errorf("got %q, want def", got)
	}
	if got := getLastNChars("ab", 3); got != "ab" {
		t.Errorf("got %q, want ab", got)
	}
	if got := getLastNChars("abcdef", 0); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestSplitIntoSentences(t *testing.T) {
	sentences := splitIntoSentences("First one. Second one! Third one? ")
	if len(sentences) != 3 {
		t.Fatalf("got %d sentences: %v", len(sentences), sentences)
	}
	if sentences[0] != "First one" || sentences[2] != "Third one" {
		t.Errorf("got %v", sentences)
	}
}
