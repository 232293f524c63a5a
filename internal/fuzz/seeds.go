package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addSnippetSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все исходники ассемблера
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".s" && ext != ".asm" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func addSnippetSeeds(f *testing.F) {
	// минимальные примеры на случай пустого testdata
	for _, s := range []string{
		"",
		"nop\n",
		"add r3,r4 , r5\nb loop\n",
		".macro m, a, b\n  LOCAL x\n  .long \\a\n.endm\n",
		".if 1\n.rept 2\nnop\n.endr\n.else\nblr\n.endif\n",
		".ascii \"a;b # c\\\"d\"\n",
		"x/**/y / z // w\n",
		"/* open",
		"\"open",
		"a;;;b;\t;c,,\n",
		".endm\n.endm\n",
		"/*## Header:\n  demo\n*/\n",
	} {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
