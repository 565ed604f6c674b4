package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const JavaExt = ".java"

type sourceFile struct {
	Path    string
	Content []byte
}

// ReadSourcesInDir reads every java file under a directory
func ReadSourcesInDir(directoryName string) ([]sourceFile, error) {
	sources := []sourceFile{}

	if err := filepath.WalkDir(directoryName, fs.WalkDirFunc(
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			// Only include java files
			if filepath.Ext(path) == JavaExt && !d.IsDir() {
				sourceCode, err := os.ReadFile(path)
				if err != nil {
					return err
				}

				sources = append(sources, sourceFile{
					Path:    path,
					Content: sourceCode,
				})
			}

			return nil
		},
	)); err != nil {
		return nil, err
	}

	return sources, nil
}

// readSources reads every java file named in the arguments, or found in the
// directories in the arguments. Without arguments, it returns the example class
func (a *app) readSources(args []string) ([]sourceFile, error) {
	if len(args) == 0 {
		a.logger.Debug("No files specified, using the example class")
		return []sourceFile{{Path: exampleName, Content: []byte(exampleSource)}}, nil
	}

	var sources []sourceFile
	for _, filePath := range args {
		info, err := os.Stat(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}

		if info.IsDir() {
			found, err := ReadSourcesInDir(filePath)
			if err != nil {
				return nil, fmt.Errorf("failed to read input directory: %w", err)
			}
			sources = append(sources, found...)
			continue
		}

		if filepath.Ext(filePath) != JavaExt {
			a.logger.Debugf("Skipping file %v", filePath)
			continue // Skips all non-java files
		}

		contents, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		sources = append(sources, sourceFile{Path: filePath, Content: contents})
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no %s files in: %s", JavaExt, strings.Join(args, ", "))
	}
	return sources, nil
}
