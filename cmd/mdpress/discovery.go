package main

import (
	"os"
	"path/filepath"
	"strings"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles enumerates markdown files directly inside inputDir
// (non-recursive) and pairs each with its PDF output path. os.ReadDir
// returns entries sorted by name, keeping batch order deterministic.
func discoverFiles(inputDir, outputDir string) ([]FileToConvert, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	var files []FileToConvert
	for _, entry := range entries {
		if entry.IsDir() || !isMarkdownFile(entry.Name()) {
			continue
		}
		files = append(files, FileToConvert{
			InputPath:  filepath.Join(inputDir, entry.Name()),
			OutputPath: filepath.Join(outputDir, pdfName(entry.Name())),
		})
	}

	return files, nil
}

// isMarkdownFile reports whether the name has a markdown extension.
func isMarkdownFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

// pdfName swaps a markdown extension for .pdf, keeping the basename.
func pdfName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".pdf"
}
