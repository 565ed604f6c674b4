package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/NickyBoy89/javafront/crosscheck"
	"github.com/NickyBoy89/javafront/parsing"
	"github.com/NickyBoy89/javafront/tokenizer"
)

func (a *app) newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [files...]",
		Short: "Print the tokens of every file",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := a.readSources(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, source := range sources {
				if len(sources) > 1 {
					fmt.Fprintf(out, "==> %s <==\n", source.Path)
				}

				tokens, diagnostics := tokenizer.New(a.logger.WithField("file", source.Path)).Tokenize(string(source.Content))
				for _, tok := range tokens {
					fmt.Fprintln(out, tok)
				}

				a.logger.WithFields(log.Fields{
					"file":         source.Path,
					"tokens":       len(tokens),
					"unrecognized": len(diagnostics),
				}).Debug("Tokenized file")
			}
			return nil
		},
	}
}

// parseSource runs both stages of the front end over a single file
func (a *app) parseSource(source sourceFile) (*parsing.ClassDeclaration, error) {
	fileLog := a.logger.WithField("file", source.Path)
	fileLog.Info("Started parsing file")

	tokens, _ := tokenizer.New(fileLog).Tokenize(string(source.Content))

	parser := parsing.NewParser(tokens)
	class, err := parser.Parse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source.Path, err)
	}

	if parser.Cursor() < len(tokens) {
		fileLog.WithField("token", tokens[parser.Cursor()]).Warn("Ignoring tokens after the end of the class")
	}

	return class, nil
}

func (a *app) newParseCmd() *cobra.Command {
	var format, outputDir string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse every file and print its syntax tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.config.Format
			}
			r, ok := renderers[format]
			if !ok {
				return fmt.Errorf("unknown format %q", format)
			}
			if outputDir == "" {
				outputDir = a.config.OutputDir
			}

			sources, err := a.readSources(args)
			if err != nil {
				return err
			}

			for _, source := range sources {
				class, err := a.parseSource(source)
				if err != nil {
					return err
				}

				if dryRun {
					continue
				}

				if outputDir == "" {
					if err := r.render(cmd.OutOrStdout(), class); err != nil {
						return err
					}
				} else if err := writeOutput(outputDir, source.Path, r, class); err != nil {
					return err
				}

				a.logger.WithField("file", source.Path).Info("Parsed file")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json, yaml, dot or dump (default from config, else text)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory to put the rendered trees into, defaults to standard output")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Don't output anything (check if parsing succeeds)")
	return cmd
}

func writeOutput(outputDir, sourcePath string, r renderer, class *parsing.ClassDeclaration) error {
	if err := os.MkdirAll(outputDir, 0775); err != nil {
		return err
	}

	outputFile, err := os.Create(filepath.Join(outputDir, ChangeFileExtension(filepath.Base(sourcePath), r.extension)))
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer outputFile.Close()

	if err := r.render(outputFile, class); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Compare the syntax tree of every file against the tree-sitter Java grammar",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := a.readSources(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var failed int
			for _, source := range sources {
				class, err := a.parseSource(source)
				if err != nil {
					return err
				}

				mismatches, err := crosscheck.Check(cmd.Context(), source.Content, class)
				if err != nil {
					return fmt.Errorf("%s: %w", source.Path, err)
				}

				reportMismatches(out, source.Path, mismatches)
				if len(mismatches) > 0 {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files disagree with tree-sitter", failed, len(sources))
			}
			return nil
		},
	}
}

func reportMismatches(out io.Writer, path string, mismatches []crosscheck.Mismatch) {
	if len(mismatches) == 0 {
		fmt.Fprintf(out, "%s: ok\n", path)
		return
	}
	for _, mismatch := range mismatches {
		fmt.Fprintf(out, "%s: %s\n", path, mismatch)
	}
}
